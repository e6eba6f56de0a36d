//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/spf13/pflag"

	"github.com/ezrec/bbtdecrypt"
	"github.com/ezrec/bbtdecrypt/keyring"
)

type InfoCommand struct {
	*pflag.FlagSet

	KeySummary    bool
	HeaderSummary bool
	DigestSummary bool
}

func NewInfoCommand() (info *InfoCommand) {
	flagSet := pflag.NewFlagSet("info", pflag.ContinueOnError)

	info = &InfoCommand{
		FlagSet: flagSet,
	}

	info.SetInterspersed(false)
	info.BoolVarP(&info.KeySummary, "key", "k", true, "Show the track name and file key")
	info.BoolVarP(&info.HeaderSummary, "header", "H", true, "Show the header checksum and block count")
	info.BoolVarP(&info.DigestSummary, "digest", "d", true, "Show the BLAKE2b digest of the plaintext")

	return
}

func (info *InfoCommand) decrypt(env *Environment, input string) (result bbtdecrypt.Result, err error) {
	reader, size, err := openInput(input)
	if err != nil {
		return
	}
	defer func() { reader.Close() }()

	result, err = decryptFile(env, input, reader, size, ioutil.Discard)

	return
}

func (info *InfoCommand) Run(env *Environment) (err error) {
	inputs, err := Inputs(info.Args())
	if err != nil {
		return
	}

	if len(inputs) == 0 {
		err = errors.New("no input files")
		return
	}

	for _, input := range inputs {
		var kr *keyring.Keyring
		kr, err = keyring.FromFilename(input, env.Encoding)
		if err != nil {
			return
		}

		fmt.Printf("%s:\n", input)

		if info.KeySummary {
			fmt.Printf("  track %s, seed %#08x\n", kr.Name, kr.Seed)
			fmt.Printf("  file key: %08x\n", kr.Key)
		}

		if !info.HeaderSummary && !info.DigestSummary {
			continue
		}

		var result bbtdecrypt.Result
		result, err = info.decrypt(env, input)
		if err != nil {
			return
		}

		if info.HeaderSummary {
			fmt.Printf("  checksum: %08x\n", result.Header.Checksum)
			fmt.Printf("  blocks: %d, %d skipped, %d bytes of plaintext\n", result.Blocks, result.Skipped, result.Written)
		}

		if info.DigestSummary {
			fmt.Printf("  blake2b: %x\n", result.Digest)
		}
	}

	return
}
