//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package keyring derives the per-file key from the asset's track name
package keyring

import (
	"bytes"
	"fmt"
	"math/bits"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/ezrec/bbtdecrypt/mt"
)

const (
	defaultSeed = uint32(0x19570320)

	// KeyWords is the size of a file key
	KeyWords = 4
)

type Keyring struct {
	Name string
	Seed uint32
	Key  [KeyWords]uint32
}

// TrackName gets the track name for a file path; Sounds/secret_music_01.wma
// is "SECRET_MUSIC_01"
func TrackName(filename string) (name string) {
	base := filename
	if n := strings.LastIndexAny(base, `/\`); n >= 0 {
		base = base[n+1:]
	}

	if n := strings.LastIndexByte(base, '.'); n >= 0 {
		base = base[:n]
	}

	// ASCII only, like toupper() in the C locale
	upper := []byte(base)
	for n, c := range upper {
		if c >= 'a' && c <= 'z' {
			upper[n] = c - ('a' - 'A')
		}
	}

	name = string(upper)

	return
}

// Seed computes the generator seed over the bytes of a track name
func Seed(name []byte) (seed uint32) {
	seed = defaultSeed
	for i, c := range name {
		m := uint32(c) >> (i & 3)
		seed = seed*m + uint32(c)
	}

	return
}

func FileKey(name []byte) (key [KeyWords]uint32) {
	tw := mt.NewTwister(Seed(name))
	for n := range key {
		key[n] = bits.ReverseBytes32(tw.Next())
	}

	return
}

func NewKeyring(name []byte) (kr *Keyring) {
	kr = &Keyring{
		Name: string(name),
		Seed: Seed(name),
		Key:  FileKey(name),
	}

	return
}

// FromFilename builds the keyring for a file path. The track name is
// transcoded with enc first, when enc is not nil.
func FromFilename(filename string, enc encoding.Encoding) (kr *Keyring, err error) {
	name := []byte(TrackName(filename))

	if enc != nil {
		var buff bytes.Buffer
		writer := transform.NewWriter(&buff, enc.NewEncoder())
		_, err = writer.Write(name)
		if err == nil {
			err = writer.Close()
		}
		if err != nil {
			err = fmt.Errorf("%s: track name can not be encoded: %w", filename, err)
			return
		}
		name = buff.Bytes()
	}

	kr = NewKeyring(name)

	return
}
