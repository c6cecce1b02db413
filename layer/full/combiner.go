package full

// Put inserts a boolean at position n.
func (f *Full) Put(n int, v bool) {
	f.vec[n] = v
}

// Feature returns the n-th feature from the combiner, most significant bit first.
// Features reaching past the end of the layer are 0.
func (f *Full) Feature(n int) (o uint32) {
	n *= int(f.bits)
	if n+int(f.maxbits) > len(f.vec) {
		return 0
	}
	for pos := n; pos < n+int(f.maxbits); pos++ {
		o <<= 1
		if f.vec[pos] {
			o |= 1
		}
	}
	return
}
