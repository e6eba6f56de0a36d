//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package mt is the 32-bit Mersenne Twister used to generate file keys
package mt

const (
	stateSize  = 624
	shiftSize  = 397
	matrixA    = uint32(0x9908b0df)
	upperMask  = uint32(0x80000000)
	lowerMask  = uint32(0x7fffffff)
	initFactor = uint32(0x6c078965)
)

// Twister is a value type; copying it forks the stream
type Twister struct {
	state [stateSize]uint32
	index int
}

func NewTwister(seed uint32) (tw *Twister) {
	tw = &Twister{}
	tw.Seed(seed)

	return
}

// Seed resets the generator, the next draw twists the whole state
func (tw *Twister) Seed(seed uint32) {
	tw.index = 0
	tw.state[0] = seed
	for i := 1; i < stateSize; i++ {
		prev := tw.state[i-1]
		tw.state[i] = uint32(i) + initFactor*(prev^(prev>>30))
	}
}

func (tw *Twister) twist() {
	for i := 0; i < stateSize; i++ {
		y := (tw.state[i] & upperMask) + (tw.state[(i+1)%stateSize] & lowerMask)
		tw.state[i] = tw.state[(i+shiftSize)%stateSize] ^ (y >> 1)
		if y&1 != 0 {
			tw.state[i] ^= matrixA
		}
	}
}

func (tw *Twister) Next() (y uint32) {
	if tw.index == 0 {
		tw.twist()
	}

	y = tw.state[tw.index]
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18

	tw.index = (tw.index + 1) % stateSize

	return
}

// Read fills buff with little-endian words, a partial word at the end
// consumes a whole draw
func (tw *Twister) Read(buff []byte) (size int, err error) {
	var word uint32
	for n := range buff {
		if n&3 == 0 {
			word = tw.Next()
		}
		buff[n] = byte(word >> (8 * (n & 3)))
	}

	size = len(buff)

	return
}
