//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package gotable

import (
	"bytes"
	"go/format"
	"testing"

	"github.com/ezrec/bbtdecrypt"
)

const testKeysGo = `// Code generated by bbtdecrypt dump; DO NOT EDIT.

package keys

var key1Data = []uint32{
	0x00000000, 0x00000001, 0x00000002, 0x00000003, 0x00000004, 0x00000005,
	0x00000006,
}

var key2Data = []uint32{
	0xcafef00d, 0xdeadbeef,
}
`

func TestExport(t *testing.T) {
	keys := &bbtdecrypt.Keys{
		Key1: []uint32{0, 1, 2, 3, 4, 5, 6},
		Key2: []uint32{0xcafef00d, 0xdeadbeef},
	}

	ge := NewGotableExporter(".go")
	err := ge.Parse([]string{"--package", "keys"})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	buff := &bytes.Buffer{}
	err = ge.Export(buff, keys)
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	if buff.String() != testKeysGo {
		t.Fatalf("expected:\n%s\ngot:\n%s", testKeysGo, buff.String())
	}

	// Already gofmt clean
	formatted, err := format.Source(buff.Bytes())
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	if string(formatted) != testKeysGo {
		t.Fatalf("expected gofmt output to match, got:\n%s", formatted)
	}
}
