//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ezrec/bbtdecrypt"
)

type DumpCommand struct {
	*pflag.FlagSet
}

func NewDumpCommand() (cmd *DumpCommand) {
	cmd = &DumpCommand{
		FlagSet: pflag.NewFlagSet("dump", pflag.ContinueOnError),
	}

	cmd.SetInterspersed(false)

	return
}

// Run writes the key tables; arguments after the output file go to the
// exporter
func (cmd *DumpCommand) Run(env *Environment) (err error) {
	args := cmd.Args()
	if len(args) == 0 {
		err = errors.New("dump: output file required")
		return
	}

	export, err := bbtdecrypt.NewExport(args[0], args[1:])
	if err != nil {
		return
	}

	err = export.SetKeys(env.Keys)
	if err != nil {
		return
	}

	fmt.Printf("%s: %d + %d words\n", export.Filename, len(env.Keys.Key1), len(env.Keys.Key2))

	return
}
