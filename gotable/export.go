//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package gotable

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ezrec/bbtdecrypt"
)

type GotableExporter struct {
	*pflag.FlagSet

	Package string
}

func NewGotableExporter(suffix string) (ge *GotableExporter) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	ge = &GotableExporter{
		FlagSet: flagSet,
	}

	ge.StringVarP(&ge.Package, "package", "p", "main", "Package name of the generated file")

	return
}

func (ge *GotableExporter) Export(writer bbtdecrypt.Writer, keys *bbtdecrypt.Keys) (err error) {
	_, err = fmt.Fprintf(writer, "// Code generated by bbtdecrypt dump; DO NOT EDIT.\n\npackage %s\n", ge.Package)
	if err != nil {
		return
	}

	tables := []struct {
		name  string
		words []uint32
	}{
		{name: "key1Data", words: keys.Key1},
		{name: "key2Data", words: keys.Key2},
	}

	for _, table := range tables {
		_, err = fmt.Fprintf(writer, "\nvar %s = []uint32{", table.name)
		if err != nil {
			return
		}

		err = bbtdecrypt.WriteWords(writer, "\t", table.words)
		if err != nil {
			return
		}

		_, err = fmt.Fprint(writer, "\n}\n")
		if err != nil {
			return
		}
	}

	return
}
