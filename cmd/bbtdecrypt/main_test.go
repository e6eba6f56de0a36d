//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"bbtdecrypt": func() int { main(); return 0 },
	}))
}

func TestScript(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: filepath.Join("testdata", "script"),
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"genwords": cmdGenwords,
			"filesize": cmdFilesize,
		},
	})
}

func parseWord(ts *testscript.TestScript, arg string) uint32 {
	value, err := strconv.ParseUint(arg, 0, 32)
	ts.Check(err)
	return uint32(value)
}

// genwords FILE COUNT MULTIPLIER [XOR] writes COUNT little-endian words,
// word n being n*MULTIPLIER^XOR
func cmdGenwords(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("unsupported: ! genwords")
	}
	if len(args) != 3 && len(args) != 4 {
		ts.Fatalf("usage: genwords FILE COUNT MULTIPLIER [XOR]")
	}

	count, err := strconv.Atoi(args[1])
	ts.Check(err)

	mult := parseWord(ts, args[2])
	xor := uint32(0)
	if len(args) == 4 {
		xor = parseWord(ts, args[3])
	}

	data := make([]byte, count*4)
	for n := 0; n < count; n++ {
		binary.LittleEndian.PutUint32(data[n*4:], uint32(n)*mult^xor)
	}

	ts.Check(os.WriteFile(ts.MkAbs(args[0]), data, 0o644))
}

// filesize FILE SIZE
func cmdFilesize(ts *testscript.TestScript, neg bool, args []string) {
	if len(args) != 2 {
		ts.Fatalf("usage: filesize FILE SIZE")
	}

	info, err := os.Stat(ts.MkAbs(args[0]))
	ts.Check(err)

	size, err := strconv.ParseInt(args[1], 0, 64)
	ts.Check(err)

	if (info.Size() == size) == neg {
		ts.Fatalf("%s: size is %d, expected %s%d", args[0], info.Size(), map[bool]string{true: "not ", false: ""}[neg], size)
	}
}
