//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package feistel is the 16 round Feistel network used both to descramble
// the key tables and to decrypt the file body
package feistel

import (
	"fmt"
)

const (
	// Rounds of the network
	Rounds = 16

	// PWords are the round keys consulted in P
	PWords = Rounds + 2

	// SWords are the four 256 entry substitution tables in S
	SWords = 4 * 0x100

	// BlockSize in bytes
	BlockSize = 8
)

// Block is a pair of words, in file order
type Block struct {
	A uint32
	B uint32
}

type KeySizeError struct {
	Table   string
	Words   int
	Minimum int
}

func (k *KeySizeError) Error() string {
	if k.Words < k.Minimum {
		return fmt.Sprintf("feistel: %s table has %d words, at least %d required", k.Table, k.Words, k.Minimum)
	}

	return fmt.Sprintf("feistel: %s table has %d words, not a whole number of blocks", k.Table, k.Words)
}

// Cipher works on P and S in place: it never copies them
type Cipher struct {
	P   []uint32
	S   []uint32
	Mix Mixer
}

func checkTable(table string, words []uint32, minimum int) (err error) {
	if len(words) < minimum || len(words)%2 != 0 {
		err = &KeySizeError{Table: table, Words: len(words), Minimum: minimum}
	}

	return
}

// NewCipher creates a cipher over the P round keys and the S tables. A nil
// mix selects MixSplit.
func NewCipher(p, s []uint32, mix Mixer) (c *Cipher, err error) {
	err = checkTable("P", p, PWords)
	if err != nil {
		return
	}

	err = checkTable("S", s, SWords)
	if err != nil {
		return
	}

	if mix == nil {
		mix = MixSplit
	}

	c = &Cipher{
		P:   p,
		S:   s,
		Mix: mix,
	}

	return
}

// Encrypt is the forward network, P[0] first
func (c *Cipher) Encrypt(in Block) (out Block) {
	p, s, f := c.P, c.S, c.Mix

	v5, v4 := in.A, in.B
	for i := 0; i < Rounds; i += 4 {
		v1 := v5 ^ p[i+0]
		v2 := v4 ^ p[i+1] ^ f(s, v1)
		v3 := v1 ^ p[i+2] ^ f(s, v2)
		v4 = v2 ^ p[i+3] ^ f(s, v3)
		v5 = v3 ^ f(s, v4)
	}

	out = Block{A: v4 ^ p[17], B: v5 ^ p[16]}

	return
}

// Decrypt is the reverse network, P[17] first
func (c *Cipher) Decrypt(in Block) (out Block) {
	p, s, f := c.P, c.S, c.Mix

	var v1 uint32
	v2, v3 := in.A, in.B
	for i := 0; i < Rounds; i++ {
		v1 = v2 ^ p[17-i]
		v2 = v3 ^ f(s, v1)
		v3 = v1
	}

	out = Block{A: v1 ^ p[0], B: v2 ^ p[1]}

	return
}

// advance is one step of the descrambling chain
func (c *Cipher) advance(state Block, table []uint32, n int) (next Block) {
	next = c.Encrypt(state)
	table[n+0] = next.A
	table[n+1] = next.B

	return
}

// Descramble mixes the file key into P, then overwrites all of P and then
// all of S with the forward network chained from a zero block. This is a
// one way, one time setup.
func (c *Cipher) Descramble(fileKey [4]uint32) {
	for n := range c.P {
		c.P[n] ^= fileKey[n%len(fileKey)]
	}

	var state Block
	for n := 0; n < len(c.P); n += 2 {
		state = c.advance(state, c.P, n)
	}

	for n := 0; n < len(c.S); n += 2 {
		state = c.advance(state, c.S, n)
	}
}
