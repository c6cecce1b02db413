package majpool2d

// Put sets the n-th bool directly.
func (s *MajPool2D) Put(n int, v bool) {
	s.vec[n] = v
}

// Feature returns the m-th cell. The low bits carry the cell's block as put,
// bit subwidth*subheight carries the strict majority vote of the block.
func (s *MajPool2D) Feature(m int) (o uint32) {
	submatrix := s.subwidth * s.subheight
	if m < 0 || (m+1)*submatrix > len(s.vec) {
		return 0
	}
	base := m * submatrix
	var w int
	for n := 0; n < submatrix; n++ {
		if s.vec[base+n] {
			o |= 1 << n
			w++
		} else {
			w--
		}
	}
	if w > 0 {
		o |= 1 << submatrix
	}
	return
}
