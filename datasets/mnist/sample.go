// Package mnist decodes MNIST digit samples from CSV text and IDX files.
package mnist

// ImgSize is the side of an MNIST image in pixels
const ImgSize = 28

// SampleSize is the number of pixels in one sample
const SampleSize = ImgSize * ImgSize

// SmallImgSize is the side of a downscaled sample
const SmallImgSize = 13

// Sample is one grayscale 28x28 image in row-major order
type Sample [SampleSize]byte

// Dataset is a sequence of samples in file order
type Dataset []Sample

// At returns the intensity at column x, row y
func (s *Sample) At(x, y int) byte {
	return s[y*ImgSize+x]
}

// Feature packs the 2x2 patch whose top left pixel is n (modulo the patch
// count) into one word. The hashtron network reads samples through it.
func (s *Sample) Feature(n int) uint32 {
	n %= (ImgSize - 1) * (ImgSize - 1)
	n += n / (ImgSize - 1)
	return uint32(s[n]) | uint32(s[n+1])<<8 | uint32(s[n+ImgSize])<<16 | uint32(s[n+1+ImgSize])<<24
}

// Normalize maps intensities to [0, 1] by dividing by 255
func (s *Sample) Normalize() []float32 {
	var out = make([]float32, SampleSize)
	for i, p := range s {
		out[i] = float32(p) / 255.0
	}
	return out
}

// Grid returns the sample as ImgSize rows of ImgSize intensities
func (s *Sample) Grid() [][]byte {
	var out = make([][]byte, ImgSize)
	for y := range out {
		out[y] = append([]byte(nil), s[y*ImgSize:(y+1)*ImgSize]...)
	}
	return out
}

// SmallSample is a 13x13 max pooled sample
type SmallSample [SmallImgSize * SmallImgSize]byte

// Feature packs the 2x2 patch whose top left pixel is n (modulo the patch count)
func (i *SmallSample) Feature(n int) uint32 {
	n %= (SmallImgSize - 1) * (SmallImgSize - 1)
	n += n / (SmallImgSize - 1)
	return uint32(i[n]) | uint32(i[n+1])<<8 | uint32(i[n+SmallImgSize])<<16 | uint32(i[n+1+SmallImgSize])<<24
}

// Downscale max pools 2x2 blocks, skipping the outer one pixel border
func (s *Sample) Downscale() (small SmallSample) {
	const base = 1 + ImgSize
	for y := 0; y < SmallImgSize; y++ {
		for x := 0; x < SmallImgSize; x++ {
			var p = base + 2*x + 2*y*ImgSize
			small[y*SmallImgSize+x] = max4(s[p], s[p+1], s[p+ImgSize], s[p+ImgSize+1])
		}
	}
	return
}

func max4(a, b, c, d byte) (o byte) {
	o = a
	if b > o {
		o = b
	}
	if c > o {
		o = c
	}
	if d > o {
		o = d
	}
	return o
}
