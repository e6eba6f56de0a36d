//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package bbtdecrypt

import (
	"encoding/binary"

	"github.com/go-restruct/restruct"

	"github.com/ezrec/bbtdecrypt/feistel"
)

// DefaultHeaderBlocks is the number of decrypted blocks that are dropped
// from the output
const DefaultHeaderBlocks = 3

// Header is the first three decrypted blocks of an asset
type Header struct {
	Checksum [6]uint32 // 00: Never verified
}

// unpackHeader reads the header from the start of the plaintext, zero
// filled when the file is shorter than a header
func unpackHeader(plain []byte) (header Header, err error) {
	size, err := restruct.SizeOf(&header)
	if err != nil {
		return
	}

	data := make([]byte, size)
	copy(data, plain)

	err = restruct.Unpack(data, binary.LittleEndian, &header)
	if err != nil {
		return
	}

	return
}

// headerSize is the plaintext needed for unpackHeader
func headerSize() int {
	size, _ := restruct.SizeOf(&Header{})
	return (size + feistel.BlockSize - 1) / feistel.BlockSize * feistel.BlockSize
}
