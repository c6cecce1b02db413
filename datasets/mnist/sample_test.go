package mnist

import "testing"

func TestNormalize(t *testing.T) {
	var s Sample
	s[0], s[1], s[783] = 0, 255, 51
	n := s.Normalize()
	if len(n) != SampleSize {
		t.Fatalf("len = %d", len(n))
	}
	if n[0] != 0 || n[1] != 1 || n[783] != 0.2 {
		t.Fatalf("got %v %v %v", n[0], n[1], n[783])
	}
	for _, v := range n {
		if v < 0 || v > 1 {
			t.Fatalf("value %v out of range", v)
		}
	}
}

func TestGridAndAt(t *testing.T) {
	s := sample(9)
	g := s.Grid()
	if len(g) != ImgSize {
		t.Fatalf("rows = %d", len(g))
	}
	for y := 0; y < ImgSize; y++ {
		if len(g[y]) != ImgSize {
			t.Fatalf("row %d has %d columns", y, len(g[y]))
		}
		for x := 0; x < ImgSize; x++ {
			if g[y][x] != s.At(x, y) || g[y][x] != s[y*ImgSize+x] {
				t.Fatalf("pixel %d,%d mismatch", x, y)
			}
		}
	}
	g[0][0]++
	if g[0][0] == s[0] {
		t.Fatal("grid aliases the sample")
	}
}

func TestFeature(t *testing.T) {
	var s Sample
	s[0], s[1], s[ImgSize], s[ImgSize+1] = 1, 2, 3, 4
	if got := s.Feature(0); got != 0x04030201 {
		t.Fatalf("Feature(0) = %#x", got)
	}
	// patch 27 starts on the second row
	s[ImgSize] = 9
	if got := s.Feature(ImgSize - 1); got&0xFF != 9 {
		t.Fatalf("Feature(27) = %#x", got)
	}
	if s.Feature(0) != s.Feature((ImgSize-1)*(ImgSize-1)) {
		t.Fatal("feature index does not wrap")
	}
	var full Sample
	for i := range full {
		full[i] = 255
	}
	for n := 0; n < 1000; n++ {
		if full.Feature(n) != 0xFFFFFFFF {
			t.Fatalf("Feature(%d) reads outside the image", n)
		}
	}
}

func TestDownscale(t *testing.T) {
	var s Sample
	s.setPixel(2, 2, 200)
	s.setPixel(26, 26, 77)
	small := s.Downscale()
	if small[0] != 200 {
		t.Fatalf("small[0] = %d", small[0])
	}
	if small[len(small)-1] != 77 {
		t.Fatalf("small[last] = %d", small[len(small)-1])
	}
	if small.Feature(0)&0xFF != 200 {
		t.Fatalf("small feature = %#x", small.Feature(0))
	}
}

func (s *Sample) setPixel(x, y int, v byte) {
	s[y*ImgSize+x] = v
}
