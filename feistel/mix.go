//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package feistel

import (
	"fmt"
)

// Mixer is the round function, a lookup of x through the four
// substitution tables at offsets 0x000, 0x100, 0x200 and 0x300 of s
type Mixer func(s []uint32, x uint32) uint32

// MixSplit is the asset tool grouping: d + (c ^ b) + a
func MixSplit(s []uint32, x uint32) uint32 {
	return s[0x300+int(x&0xff)] + (s[0x200+int((x>>8)&0xff)] ^ s[0x100+int((x>>16)&0xff)]) + s[int(x>>24)]
}

// MixNested is the standard Blowfish grouping: d + (c ^ (b + a))
func MixNested(s []uint32, x uint32) uint32 {
	return s[0x300+int(x&0xff)] + (s[0x200+int((x>>8)&0xff)] ^ (s[0x100+int((x>>16)&0xff)] + s[int(x>>24)]))
}

var mixerMap = map[string]Mixer{
	"split":  MixSplit,
	"nested": MixNested,
}

func MixerByName(name string) (mix Mixer, err error) {
	mix, ok := mixerMap[name]
	if !ok {
		err = fmt.Errorf("unknown mixer '%s' (split or nested)", name)
	}

	return
}
