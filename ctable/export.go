//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package ctable

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ezrec/bbtdecrypt"
)

type CtableExporter struct {
	*pflag.FlagSet

	Type   string
	Static bool
}

func NewCtableExporter(suffix string) (ce *CtableExporter) {
	flagSet := pflag.NewFlagSet(suffix, pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	ce = &CtableExporter{
		FlagSet: flagSet,
	}

	ce.StringVarP(&ce.Type, "type", "t", "uint32_t", "C type of the table entries")
	ce.BoolVarP(&ce.Static, "static", "s", true, "Declare the tables static")

	return
}

func (ce *CtableExporter) table(writer bbtdecrypt.Writer, name string, words []uint32) (err error) {
	storage := ""
	if ce.Static {
		storage = "static "
	}

	_, err = fmt.Fprintf(writer, "%s%s %s_data[] = {", storage, ce.Type, name)
	if err != nil {
		return
	}

	err = bbtdecrypt.WriteWords(writer, "  ", words)
	if err != nil {
		return
	}

	_, err = fmt.Fprint(writer, "\n};\n\n")

	return
}

func (ce *CtableExporter) Export(writer bbtdecrypt.Writer, keys *bbtdecrypt.Keys) (err error) {
	err = ce.table(writer, "key1", keys.Key1)
	if err != nil {
		return
	}

	err = ce.table(writer, "key2", keys.Key2)

	return
}
