package render

import "bufio"
import "io"

import "github.com/neurlang/digitview/datasets/mnist"

const ramp = " .:-=+*#%@"

// ASCII draws samples as text, two characters per pixel so the digit keeps
// its aspect ratio in a terminal.
type ASCII struct {
	W io.Writer
}

// Render writes ImgSize lines to W
func (a ASCII) Render(s mnist.Sample) error {
	w := bufio.NewWriter(a.W)
	for _, row := range s.Grid() {
		for _, p := range row {
			c := ramp[int(p)*len(ramp)/256]
			w.WriteByte(c)
			w.WriteByte(c)
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}
