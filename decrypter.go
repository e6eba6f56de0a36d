//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package bbtdecrypt

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log"

	"golang.org/x/crypto/blake2b"

	"github.com/ezrec/bbtdecrypt/feistel"
	"github.com/ezrec/bbtdecrypt/keyring"
)

// Decrypter holds the descrambled key for a single file
type Decrypter struct {
	Keyring *keyring.Keyring

	cipher       *feistel.Cipher
	mix          feistel.Mixer
	headerBlocks int
	progress     Progressor
}

type Option func(dec *Decrypter)

func WithMixer(mix feistel.Mixer) Option {
	return func(dec *Decrypter) { dec.mix = mix }
}

// WithHeaderBlocks sets how many leading blocks are dropped from the output
func WithHeaderBlocks(blocks int) Option {
	return func(dec *Decrypter) { dec.headerBlocks = blocks }
}

func WithProgress(prog Progressor) Option {
	return func(dec *Decrypter) { dec.progress = prog }
}

// Result of decrypting a file
type Result struct {
	Header  Header
	Blocks  int      // Blocks decrypted, header included
	Skipped int      // Blocks dropped from the output
	Written int64    // Bytes written
	Digest  [32]byte // BLAKE2b-256 of the bytes written
}

// NewDecrypter copies the keys and descrambles them with the file key
func NewDecrypter(keys *Keys, kr *keyring.Keyring, options ...Option) (dec *Decrypter, err error) {
	dec = &Decrypter{
		Keyring:      kr,
		mix:          feistel.MixSplit,
		headerBlocks: DefaultHeaderBlocks,
	}

	for _, option := range options {
		option(dec)
	}

	if dec.headerBlocks < 0 {
		err = fmt.Errorf("header blocks: %d is negative", dec.headerBlocks)
		dec = nil
		return
	}

	key1, key2 := keys.clone()
	dec.cipher, err = feistel.NewCipher(key1, key2, dec.mix)
	if err != nil {
		err = configurationError("key1", "key2", err)
		dec = nil
		return
	}

	dec.cipher.Descramble(kr.Key)

	log.Printf("%s: seed %#08x, file key %08x", kr.Name, kr.Seed, kr.Key)

	return
}

// CheckInputSize rejects files that are not a whole number of blocks
func CheckInputSize(size int64) (err error) {
	switch {
	case size < 0:
		err = &InputSizeError{Size: size, Reason: "negative size"}
	case size%4 != 0:
		err = &InputSizeError{Size: size, Reason: "not a multiple of 4 bytes"}
	case (size/4)%2 != 0:
		err = &InputSizeError{Size: size, Reason: "odd number of words"}
	}

	return
}

// Block decrypts a single block
func (dec *Decrypter) Block(in feistel.Block) (out feistel.Block) {
	out = dec.cipher.Decrypt(in)

	return
}

// Decrypt reads size bytes of ciphertext and writes the plaintext, less
// the header blocks. Nothing is written when size is invalid.
func (dec *Decrypter) Decrypt(writer io.Writer, reader io.Reader, size int64) (result Result, err error) {
	err = CheckInputSize(size)
	if err != nil {
		return
	}

	data := make([]byte, size)
	_, err = io.ReadFull(reader, data)
	if err != nil {
		err = fmt.Errorf("read: %w", err)
		return
	}

	digest, err := blake2b.New256(nil)
	if err != nil {
		return
	}

	buffered := bufio.NewWriter(writer)
	output := io.MultiWriter(buffered, digest)

	blocks := len(data) / feistel.BlockSize
	prog := NewProgress(dec.progress, blocks)
	defer prog.Close()

	head := make([]byte, 0, headerSize())
	plain := make([]byte, feistel.BlockSize)
	for n := 0; n < blocks; n++ {
		crypt := data[n*feistel.BlockSize:]
		block := dec.Block(feistel.Block{
			A: binary.LittleEndian.Uint32(crypt[0:]),
			B: binary.LittleEndian.Uint32(crypt[4:]),
		})

		binary.LittleEndian.PutUint32(plain[0:], block.A)
		binary.LittleEndian.PutUint32(plain[4:], block.B)

		if len(head) < cap(head) {
			head = append(head, plain...)
		}

		prog.Indicate()

		if n < dec.headerBlocks {
			result.Skipped++
			continue
		}

		_, err = output.Write(plain)
		if err != nil {
			err = fmt.Errorf("write: %w", err)
			return
		}
		result.Written += int64(len(plain))
	}

	err = buffered.Flush()
	if err != nil {
		err = fmt.Errorf("write: %w", err)
		return
	}

	result.Blocks = blocks
	copy(result.Digest[:], digest.Sum(nil))

	result.Header, err = unpackHeader(head)
	if err != nil {
		return
	}

	log.Printf("%s: %d blocks, %d skipped, %d bytes written", dec.Keyring.Name, result.Blocks, result.Skipped, result.Written)

	return
}
