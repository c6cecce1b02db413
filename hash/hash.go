// Package hash implements the fast modular hash evaluated by hashtron programs.
package hash

// Hash mixes n with salt s and reduces the result into [0, max).
// Hash(n, s, 0) is always 0.
func Hash(n uint32, s uint32, max uint32) uint32 {
	// mix input with salt
	var m = n - s

	// xor shift with prime shift amounts
	m ^= m << 2
	m ^= m << 3
	m ^= m >> 5
	m ^= m >> 7
	m ^= m << 11
	m ^= m << 13
	m ^= m >> 17
	m ^= m << 19

	m += s

	// multiply shift reduction instead of modulo, see
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
	return uint32((uint64(m) * uint64(max)) >> 32)
}
