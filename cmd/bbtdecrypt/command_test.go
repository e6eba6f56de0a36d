//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"bytes"
	"os"
	"testing"
)

func TestExpandPaths(t *testing.T) {
	table := map[string]struct {
		In    string
		Out   []string
		Error bool
	}{
		"hello":   {`hello.dat world.dat`, []string{"hello.dat", "world.dat"}, false},
		"setenv":  {`${SOUNDS}/menu.wma`, []string{"sounds/menu.wma"}, false},
		"escape":  {`level\ one.dat tab\tbed`, []string{"level one.dat", "tab\tbed"}, false},
		"quotes":  {`"level one.dat" 'and "two".dat'`, []string{"level one.dat", "and \"two\".dat"}, false},
		"quoted":  {`"it's.dat" 'back\slash'`, []string{"it's.dat", `back\slash`}, false},
		"comment": {"# assets\nmenu.wma # title music\n  #\nend.wma", []string{"menu.wma", "end.wma"}, false},
		"hash":    {`track#1.wma "#2.wma"`, []string{"track#1.wma", "#2.wma"}, false},
		"empty":   {"\n\n  \t\n", nil, false},
		"unterminated": {`"level one.dat`, nil, true},
		"multi": {`LEVEL1.DAT
sounds/secret_music_01.wma
  sounds/menu.wma
`, []string{"LEVEL1.DAT", "sounds/secret_music_01.wma", "sounds/menu.wma"}, false},
	}

	os.Setenv("SOUNDS", "sounds")

	for key, item := range table {
		reader := bytes.NewReader([]byte(item.In))
		paths, err := ExpandPaths(reader)
		if (err != nil) != item.Error {
			t.Errorf("%v: expected error %v, got %v", key, item.Error, err)
			continue
		}

		if err != nil {
			continue
		}

		if len(paths) != len(item.Out) {
			t.Errorf("%v: expected len() %v, got %v (%#v)", key, len(item.Out), len(paths), paths)
			continue
		}

		for n, path := range paths {
			if path != item.Out[n] {
				t.Errorf("%v: expected [%v] %#v, got %#v", key, n, item.Out[n], path)
				break
			}
		}
	}
}

func TestOutputName(t *testing.T) {
	table := map[string]struct {
		Input  string
		Prefix string
		Output string
	}{
		"plain":  {"LEVEL1.DAT", "dec_", "dec_LEVEL1.DAT"},
		"subdir": {"sounds/menu.wma", "dec_", "sounds/dec_menu.wma"},
		"prefix": {"sounds/menu.wma", "plain-", "sounds/plain-menu.wma"},
	}

	for key, item := range table {
		got := OutputName(item.Input, item.Prefix)
		if got != item.Output {
			t.Errorf("%v: expected %#v, got %#v", key, item.Output, got)
		}
	}
}
