//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package ctable exports the key tables as C arrays, for keys.inc
package ctable

import (
	"github.com/ezrec/bbtdecrypt"
)

func init() {
	newExporter := func(suffix string) (exporter bbtdecrypt.Exporter) { return NewCtableExporter(suffix) }

	bbtdecrypt.RegisterExporter(".inc", newExporter)
	bbtdecrypt.RegisterExporter(".h", newExporter)
	bbtdecrypt.RegisterExporter(".c", newExporter)
}
