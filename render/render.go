// Package render turns samples into images for display.
package render

import "image"
import "image/color"

import "github.com/neurlang/digitview/datasets/mnist"

// Renderer displays one sample
type Renderer interface {
	Render(s mnist.Sample) error
}

// RendererFunc adapts a function to a Renderer
type RendererFunc func(s mnist.Sample) error

// Render calls f(s)
func (f RendererFunc) Render(s mnist.Sample) error {
	return f(s)
}

// Multi renders to every renderer in order, stopping at the first error
type Multi []Renderer

// Render renders s to each renderer
func (m Multi) Render(s mnist.Sample) error {
	for _, r := range m {
		if err := r.Render(s); err != nil {
			return err
		}
	}
	return nil
}

// Gray returns the sample as a single channel image
func Gray(s mnist.Sample) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, mnist.ImgSize, mnist.ImgSize))
	copy(img.Pix, s[:])
	return img
}

// RGB returns the sample with the intensity copied into all three channels
func RGB(s mnist.Sample) *image.RGBA {
	return Scale(s, 1)
}

// Scale returns the RGB image enlarged factor times with nearest neighbour
// sampling. Factors below 1 are treated as 1.
func Scale(s mnist.Sample, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	side := mnist.ImgSize * factor
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			p := s.At(x/factor, y/factor)
			img.SetRGBA(x, y, color.RGBA{R: p, G: p, B: p, A: 0xFF})
		}
	}
	return img
}
