//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package bbtdecrypt

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

type Writer interface {
	io.Writer
}

// Key table source format
type Exporter interface {
	Parse(args []string) (err error)
	Parsed() bool
	Args() (args []string)
	NArg() int
	PrintDefaults()

	Export(writer Writer, keys *Keys) (err error)
}

type NewExporter func(suffix string) (exporter Exporter)

var exporterMap map[string]NewExporter

func RegisterExporter(suffix string, newExporter NewExporter) {
	if exporterMap == nil {
		exporterMap = make(map[string]NewExporter)
	}

	exporterMap[suffix] = newExporter
}

func exporterSuffixes() (list []string) {
	for suffix := range exporterMap {
		list = append(list, suffix)
	}
	sort.Strings(list)

	return
}

func ExporterUsage() {
	for _, suffix := range exporterSuffixes() {
		newExporter := exporterMap[suffix]
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "Options for '%s':\n", suffix)
		fmt.Fprintln(os.Stderr)
		newExporter(suffix).PrintDefaults()
	}
}

type Export struct {
	Exporter
	Suffix   string
	Filename string
}

func NewExport(filename string, args []string) (export *Export, err error) {
	var exporter Exporter
	var suffix string

	for _, suffix = range exporterSuffixes() {
		if strings.HasSuffix(filename, suffix) {
			exporter = exporterMap[suffix](suffix)
			break
		}
	}

	if exporter == nil {
		err = fmt.Errorf("%s: File extension unknown", filename)
		return
	}

	err = exporter.Parse(args)
	if err != nil {
		return
	}

	export = &Export{
		Exporter: exporter,
		Suffix:   suffix,
		Filename: filename,
	}

	return
}

// SetKeys writes the key tables to the export file
func (export *Export) SetKeys(keys *Keys) (err error) {
	writer, err := os.Create(export.Filename)
	if err != nil {
		return
	}
	defer func() {
		cerr := writer.Close()
		if err == nil {
			err = cerr
		}
	}()

	err = export.Export(writer, keys)
	if err != nil {
		return
	}

	return
}

// WriteWords writes the words as hex constants, six to a line, each line
// starting with a newline and the indent
func WriteWords(writer Writer, indent string, words []uint32) (err error) {
	for n, word := range words {
		sep := " "
		if n%6 == 0 {
			sep = "\n" + indent
		}

		_, err = fmt.Fprintf(writer, "%s0x%08x,", sep, word)
		if err != nil {
			return
		}
	}

	return
}
