//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package keyring

import (
	"testing"

	"github.com/go-quicktest/qt"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

func TestTrackName(t *testing.T) {
	table := map[string]struct {
		In  string
		Out string
	}{
		"plain":     {"level1.dat", "LEVEL1"},
		"path":      {"Sounds/secret_music_01.wma", "SECRET_MUSIC_01"},
		"windows":   {`C:\Game\Sounds\menu.wma`, "MENU"},
		"no-ext":    {"Sounds/readme", "README"},
		"two-dots":  {"a.b.c", "A.B"},
		"dot-dir":   {"v1.2/theme", "THEME"},
		"non-ascii": {"caf\u00e9.wma", "CAF\u00e9"},
	}

	for key, item := range table {
		got := TrackName(item.In)
		if got != item.Out {
			t.Errorf("%v: expected %#v, got %#v", key, item.Out, got)
		}
	}
}

func TestSeed(t *testing.T) {
	table := map[string]uint32{
		"":                0x19570320,
		"FOO":             0x4c2bfe8a,
		"FOP":             0x86135cc4,
		"LEVEL1":          0xb578f1f1,
		"SECRET_MUSIC_01": 0x9f6b08f1,
	}

	for name, expected := range table {
		got := Seed([]byte(name))
		if got != expected {
			t.Errorf("%#v: expected %#v, got %#v", name, expected, got)
		}
	}
}

func TestFileKey(t *testing.T) {
	table := map[string][KeyWords]uint32{
		"":                {0xc78e498a, 0xa4ca0fd5, 0xd92f4f98, 0x18e2ca24},
		"FOO":             {0x93eeefeb, 0xa0b6e937, 0xc5ca7849, 0xe760f55d},
		"FOP":             {0x65a305de, 0x392b28cc, 0x1cefdfaa, 0x61dfb205},
		"LEVEL1":          {0xfc25df07, 0x67c3f286, 0x8cf47c82, 0xd16f2ff5},
		"SECRET_MUSIC_01": {0x635884a6, 0x446803b7, 0x037edea7, 0x78804559},
	}

	for name, expected := range table {
		got := FileKey([]byte(name))
		if got != expected {
			t.Errorf("%#v: expected %#v, got %#v", name, expected, got)
		}

		// Same name, same key
		qt.Check(t, qt.Equals(FileKey([]byte(name)), got))
	}
}

func TestFromFilename(t *testing.T) {
	kr, err := FromFilename("data/level1.dat", nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(kr.Name, "LEVEL1"))
	qt.Assert(t, qt.Equals(kr.Seed, uint32(0xb578f1f1)))
	qt.Assert(t, qt.Equals(kr.Key, [KeyWords]uint32{0xfc25df07, 0x67c3f286, 0x8cf47c82, 0xd16f2ff5}))

	// ASCII names are unchanged by a legacy code page
	legacy, err := FromFilename("data/level1.dat", charmap.Windows1252)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(*legacy, *kr))

	// A single byte 0xe9 in Windows-1252, two bytes in UTF-8
	utf8, err := FromFilename("caf\u00e9.wma", nil)
	qt.Assert(t, qt.IsNil(err))
	cp, err := FromFilename("caf\u00e9.wma", charmap.Windows1252)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cp.Name, "CAF\xe9"))
	qt.Assert(t, qt.Not(qt.Equals(cp.Seed, utf8.Seed)))
}

func TestFromFilenameUnencodable(t *testing.T) {
	_, err := FromFilename("\u65e5\u672c.wma", charmap.Windows1252)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestEncodingByName(t *testing.T) {
	enc, err := EncodingByName("Windows-1252")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(enc, encoding.Encoding(charmap.Windows1252)))

	enc, err = EncodingByName("utf-8")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(enc))

	_, err = EncodingByName("ebcdic")
	qt.Assert(t, qt.ErrorMatches(err, `unknown track name encoding 'ebcdic'.*`))
}
