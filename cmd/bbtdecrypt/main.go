//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/text/encoding"

	"github.com/ezrec/bbtdecrypt"
	"github.com/ezrec/bbtdecrypt/feistel"
	"github.com/ezrec/bbtdecrypt/keyring"
)

var param struct {
	key1         string
	key2         string
	mix          string
	headerBlocks int
	nameEncoding string
	prefix       string
	output       string
	batch        string
	progress     bool
	debug        bool
}

func init() {
	pflag.StringVar(&param.key1, "key1", "key1", "Round key table file")
	pflag.StringVar(&param.key2, "key2", "key2", "Substitution table file")
	pflag.StringVarP(&param.mix, "mix", "m", "split", "Round function grouping (split or nested)")
	pflag.IntVar(&param.headerBlocks, "header-blocks", bbtdecrypt.DefaultHeaderBlocks, "Decrypted blocks dropped from the output")
	pflag.StringVarP(&param.nameEncoding, "name-encoding", "e", "utf-8",
		"Encoding of the track name ("+strings.Join(keyring.NameEncodings(), ", ")+")")
	pflag.StringVar(&param.prefix, "prefix", "dec_", "Prefix of the decrypted file name")
	pflag.StringVarP(&param.output, "output", "o", "", "Output file, for a single input")
	pflag.StringVarP(&param.batch, "batch", "b", "", "File with a list of inputs")
	pflag.BoolVarP(&param.progress, "progress", "p", false, "Show decryption progress")
	pflag.BoolVar(&param.debug, "debug", false, "Print debugging messages")

	pflag.CommandLine.SetInterspersed(false)
}

// Environment is the key material and options shared by every command
type Environment struct {
	Keys     *bbtdecrypt.Keys
	Encoding encoding.Encoding
	Options  []bbtdecrypt.Option
}

func NewEnvironment() (env *Environment, err error) {
	mix, err := feistel.MixerByName(param.mix)
	if err != nil {
		return
	}

	enc, err := keyring.EncodingByName(param.nameEncoding)
	if err != nil {
		return
	}

	keys, err := bbtdecrypt.LoadKeys(param.key1, param.key2)
	if err != nil {
		return
	}

	env = &Environment{
		Keys:     keys,
		Encoding: enc,
		Options: []bbtdecrypt.Option{
			bbtdecrypt.WithMixer(mix),
			bbtdecrypt.WithHeaderBlocks(param.headerBlocks),
		},
	}

	return
}

type Command interface {
	Parse(args []string) (err error)
	Args() (args []string)
	PrintDefaults()

	Run(env *Environment) (err error)
}

type Verb struct {
	NewCommand  func() (cmd Command)
	Description string
}

var VerbMap = map[string]Verb{
	"decrypt": {
		NewCommand:  func() Command { return NewDecryptCommand() },
		Description: "Decrypt files (the default command)",
	},
	"info": {
		NewCommand:  func() Command { return NewInfoCommand() },
		Description: "Show the file key and header of files",
	},
	"dump": {
		NewCommand:  func() Command { return NewDumpCommand() },
		Description: "Export the key tables as source code",
	},
}

func usage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage:\n\n")
	fmt.Fprintf(os.Stderr, "  %s [options] FILE...\n", name)
	fmt.Fprintf(os.Stderr, "  %s [options] COMMAND [command options] ARGS...\n\n", name)
	pflag.PrintDefaults()

	verbs := []string{}
	for key := range VerbMap {
		verbs = append(verbs, key)
	}
	sort.Strings(verbs)

	for _, key := range verbs {
		verb := VerbMap[key]
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "  %s: %s\n", key, verb.Description)
		verb.NewCommand().PrintDefaults()
	}

	bbtdecrypt.ExporterUsage()
}

func evaluate(verb Verb, args []string) (err error) {
	cmd := verb.NewCommand()
	err = cmd.Parse(args)
	if err != nil {
		return
	}

	env, err := NewEnvironment()
	if err != nil {
		return
	}

	err = cmd.Run(env)

	return
}

func main() {
	pflag.Usage = usage
	pflag.Parse()

	log.SetPrefix("bbtdecrypt: ")
	log.SetFlags(0)
	if !param.debug {
		log.SetOutput(ioutil.Discard)
	}

	if param.progress {
		bbtdecrypt.SetProgress(NewTextProgress())
	}

	args := pflag.Args()
	if len(args) == 0 && len(param.batch) == 0 {
		pflag.Usage()
		os.Exit(1)
	}

	verb := VerbMap["decrypt"]
	if len(args) > 0 {
		if named, ok := VerbMap[args[0]]; ok {
			verb = named
			args = args[1:]
		}
	}

	err := evaluate(verb, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bbtdecrypt: %v\n", err)
		os.Exit(1)
	}
}
