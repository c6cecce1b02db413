package hashtron

import "math/rand"

import "github.com/pkg/errors"

// ErrBits is returned when a hashtron would produce more than MaxBits bits.
var ErrBits = errors.New("hashtron bits out of range")

// New creates a hashtron running program and producing bits output bits.
// A nil program gets a random single command, which is what an untrained
// hashtron looks like.
func New(program [][2]uint32, bits byte) (h *Hashtron, err error) {
	if bits > MaxBits {
		return nil, errors.Wrapf(ErrBits, "%d", bits)
	}
	if bits == 0 {
		bits = 1
	}
	h = new(Hashtron)
	if program == nil {
		h.program = [][2]uint32{{rand.Uint32() >> 1, 2}}
	} else {
		h.program = program
	}
	h.bits = bits
	return
}
