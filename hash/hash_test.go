package hash

import (
	"testing"
)

func BenchmarkHash(b *testing.B) {
	n := uint32(0)
	for i := 0; i < b.N; i++ {
		n = Hash(n, uint32(i), 1<<16)
	}
}

// cycle length check over small power of two ranges
func TestHashCycles(t *testing.T) {
	const bound1 = 16
	const bound2 = 20000
	var count uint64
	for max := uint32(2); max <= 1<<bound1; max <<= 1 {
		var visited = make([]bool, max)
		var current uint32
		for s := uint32(0); s < bound2; s++ {
			current = Hash(current, s, max)
			if current >= max {
				t.Fatalf("Hash(_, %d, %d) == %d out of range", s, max, current)
			}
			if current == 0 || visited[current] {
				visited = make([]bool, max)
				continue
			}
			visited[current] = true
			count++
		}
	}
	if count == 0 {
		t.Fatal("hash never left zero")
	}
}

func TestHashDeterministic(t *testing.T) {
	for _, tc := range []struct{ n, s, max uint32 }{
		{0, 0, 10},
		{784, 3, 1 << 12},
		{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF},
	} {
		if a, b := Hash(tc.n, tc.s, tc.max), Hash(tc.n, tc.s, tc.max); a != b {
			t.Errorf("Hash(%d, %d, %d) not deterministic: %d != %d", tc.n, tc.s, tc.max, a, b)
		}
	}
}

func FuzzHash(f *testing.F) {
	f.Add(uint32(0), uint32(0), uint32(0))
	f.Add(uint32(255), uint32(7), uint32(10))
	f.Fuzz(func(t *testing.T, n, s, max uint32) {
		out := Hash(n, s, max)
		if max == 0 && out != 0 {
			t.Errorf("Hash(%d, %d, 0) == %d (max=0 should be 0)", n, s, out)
		}
		if max > 0 && out >= max {
			t.Errorf("Hash(%d, %d, %d) == %d (output bigger or equal than max)", n, s, max, out)
		}
	})
}

func TestHashVectorized(t *testing.T) {
	for _, size := range []int{1, 8, 17, 31, 64} {
		n := make([]uint32, size)
		s := make([]uint32, size)
		out := make([]uint32, size)
		for i := 0; i < size; i++ {
			n[i] = uint32(i*123 + 456)
			s[i] = uint32(i*789 + 101112)
		}
		HashVectorized(out, n, s, 1000000)
		for i := 0; i < size; i++ {
			if want := Hash(n[i], s[i], 1000000); out[i] != want {
				t.Errorf("size %d: HashVectorized[%d] = %d, want %d", size, i, out[i], want)
			}
		}
	}
}
