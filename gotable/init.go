//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package gotable exports the key tables as Go source
package gotable

import (
	"github.com/ezrec/bbtdecrypt"
)

func init() {
	newExporter := func(suffix string) (exporter bbtdecrypt.Exporter) { return NewGotableExporter(suffix) }

	bbtdecrypt.RegisterExporter(".go", newExporter)
}
