package hash

// HashVectorized computes out[i] = Hash(n[i], s[i], max) for every lane.
// All slices must have the same length.
var HashVectorized func(out []uint32, n []uint32, s []uint32, max uint32) = hashNotVectorized

func hashNotVectorized(out []uint32, n []uint32, s []uint32, max uint32) {
	for i := range out {
		out[i] = Hash(n[i], s[i], max)
	}
}
