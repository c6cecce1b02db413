package hashtron

import "github.com/neurlang/digitview/hash"

// Forward runs the hashtron program on command. Output bit j is the parity of
// the program evaluated on command with j in the upper half word; all bits
// are evaluated together through hash.HashVectorized.
func (h Hashtron) Forward(command uint32, negate bool) (out uint16) {
	if h.Len() == 0 {
		return
	}
	var lanes, salts [MaxBits]uint32
	var n = lanes[:h.Bits()]
	var s = salts[:h.Bits()]
	for j := range n {
		n[j] = command | (uint32(j) << 16)
	}
	var ss, maxx = h.Get(0)
	fill(s, ss)
	hash.HashVectorized(n, n, s, maxx)
	for i := 1; i < h.Len(); i++ {
		var salt, max = h.Get(i)
		maxx -= max
		fill(s, salt)
		hash.HashVectorized(n, n, s, maxx)
	}
	for j, v := range n {
		v &= 1
		if negate {
			v ^= 1
		}
		if v != 0 {
			out |= 1 << j
		}
	}
	return
}

func fill(s []uint32, v uint32) {
	for i := range s {
		s[i] = v
	}
}
