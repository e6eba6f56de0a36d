//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/ezrec/bbtdecrypt"
	"github.com/ezrec/bbtdecrypt/keyring"
)

type DecryptCommand struct {
	*pflag.FlagSet
}

func NewDecryptCommand() (cmd *DecryptCommand) {
	cmd = &DecryptCommand{
		FlagSet: pflag.NewFlagSet("decrypt", pflag.ContinueOnError),
	}

	cmd.SetInterspersed(false)

	return
}

// OutputName is the sibling of input with prefix on the file name
func OutputName(input string, prefix string) (output string) {
	dir, file := filepath.Split(input)
	output = filepath.Join(dir, prefix+file)

	return
}

// openInput opens an encrypted file, and checks its size before anything
// else is done with it
func openInput(input string) (reader *os.File, size int64, err error) {
	reader, err = os.Open(input)
	if err != nil {
		return
	}

	size, err = reader.Seek(0, io.SeekEnd)
	if err == nil {
		_, err = reader.Seek(0, io.SeekStart)
	}
	if err == nil {
		err = bbtdecrypt.CheckInputSize(size)
	}
	if err != nil {
		reader.Close()
		reader = nil
		err = fmt.Errorf("%s: %w", input, err)
		return
	}

	return
}

// decryptFile decrypts an input opened by openInput
func decryptFile(env *Environment, input string, reader io.Reader, size int64, writer io.Writer) (result bbtdecrypt.Result, err error) {
	kr, err := keyring.FromFilename(input, env.Encoding)
	if err != nil {
		return
	}

	dec, err := bbtdecrypt.NewDecrypter(env.Keys, kr, env.Options...)
	if err != nil {
		return
	}

	result, err = dec.Decrypt(writer, reader, size)
	if err != nil {
		err = fmt.Errorf("%s: %w", input, err)
		return
	}

	return
}

// writeFile decrypts input to output. A failure part way leaves a partial
// output file behind.
func writeFile(env *Environment, input string, output string) (err error) {
	// Bad inputs are refused before the output is created
	reader, size, err := openInput(input)
	if err != nil {
		return
	}
	defer func() { reader.Close() }()

	writer, err := os.Create(output)
	if err != nil {
		return
	}
	defer func() {
		cerr := writer.Close()
		if err == nil {
			err = cerr
		}
	}()

	_, err = decryptFile(env, input, reader, size, writer)

	return
}

func (cmd *DecryptCommand) Run(env *Environment) (err error) {
	inputs, err := Inputs(cmd.Args())
	if err != nil {
		return
	}

	if len(inputs) == 0 {
		err = errors.New("no input files")
		return
	}

	if len(param.output) > 0 && len(inputs) != 1 {
		err = fmt.Errorf("--output requires a single input, not %d", len(inputs))
		return
	}

	for _, input := range inputs {
		output := param.output
		if len(output) == 0 {
			output = OutputName(input, param.prefix)
		}

		fmt.Printf("Decrypting %s to %s...\n", input, output)

		err = writeFile(env, input, output)
		if err != nil {
			return
		}
	}

	return
}
