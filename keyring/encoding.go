//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package keyring

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// A nil encoding leaves the name as UTF-8
var nameEncodings = map[string]encoding.Encoding{
	"utf-8":        nil,
	"shift-jis":    japanese.ShiftJIS,
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
}

// NameEncodings lists the names accepted by EncodingByName
func NameEncodings() (names []string) {
	for name := range nameEncodings {
		names = append(names, name)
	}
	sort.Strings(names)

	return
}

func EncodingByName(name string) (enc encoding.Encoding, err error) {
	enc, ok := nameEncodings[strings.ToLower(name)]
	if !ok {
		err = fmt.Errorf("unknown track name encoding '%s' (one of %s)", name, strings.Join(NameEncodings(), ", "))
	}

	return
}
