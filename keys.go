//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package bbtdecrypt decrypts the packaged audio assets of BattleBlock Theater
package bbtdecrypt

import (
	"encoding/binary"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/ezrec/bbtdecrypt/feistel"
)

const (
	// Key1Words is the minimum size of the key1 round key table
	Key1Words = feistel.PWords

	// Key2Words is the minimum size of the key2 substitution tables
	Key2Words = feistel.SWords
)

// Keys is the static key material. It is never modified; every Decrypter
// works on its own copy.
type Keys struct {
	Key1 []uint32
	Key2 []uint32
}

// ReadKey reads a key table of little-endian words
func ReadKey(name string, reader io.Reader) (key []uint32, err error) {
	data, err := ioutil.ReadAll(reader)
	if err != nil {
		err = &ConfigurationError{Key: name, Reason: "can not be read", Err: err}
		return
	}

	if len(data)%4 != 0 {
		err = &ConfigurationError{Key: name, Reason: "size is not a multiple of 4 bytes"}
		return
	}

	key = make([]uint32, len(data)/4)
	for n := range key {
		key[n] = binary.LittleEndian.Uint32(data[n*4:])
	}

	return
}

func LoadKey(filename string) (key []uint32, err error) {
	reader, err := os.Open(filename)
	if err != nil {
		err = &ConfigurationError{Key: filename, Reason: "can not be opened", Err: err}
		return
	}
	defer func() { reader.Close() }()

	key, err = ReadKey(filename, reader)
	if err != nil {
		return
	}

	log.Printf("%s: %d words", filename, len(key))

	return
}

// NewKeys checks that the tables cover the cipher's access pattern
func NewKeys(key1, key2 []uint32) (keys *Keys, err error) {
	_, err = feistel.NewCipher(key1, key2, nil)
	if err != nil {
		err = configurationError("key1", "key2", err)
		return
	}

	keys = &Keys{
		Key1: key1,
		Key2: key2,
	}

	return
}

func LoadKeys(key1File, key2File string) (keys *Keys, err error) {
	key1, err := LoadKey(key1File)
	if err != nil {
		return
	}

	key2, err := LoadKey(key2File)
	if err != nil {
		return
	}

	_, err = feistel.NewCipher(key1, key2, nil)
	if err != nil {
		err = configurationError(key1File, key2File, err)
		return
	}

	keys = &Keys{
		Key1: key1,
		Key2: key2,
	}

	return
}

func (keys *Keys) clone() (key1, key2 []uint32) {
	key1 = append([]uint32(nil), keys.Key1...)
	key2 = append([]uint32(nil), keys.Key2...)

	return
}
