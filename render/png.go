package render

import "fmt"
import "image/png"
import "os"
import "regexp"

import "github.com/pkg/errors"

import "github.com/neurlang/digitview/datasets/mnist"

var frameVerb = regexp.MustCompile(`%0?[0-9]*d`)

// PNG writes every rendered sample to Path as a png scaled by Scale. Each %d
// verb in Path (%03d and the like too) is replaced by the frame number,
// otherwise the file is overwritten. Any other % is kept as is.
type PNG struct {
	Path  string
	Scale int

	frame int
}

// Render encodes s
func (p *PNG) Render(s mnist.Sample) error {
	var name = p.Path
	name = frameVerb.ReplaceAllStringFunc(name, func(verb string) string {
		return fmt.Sprintf(verb, p.frame)
	})
	p.frame++

	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "render png")
	}
	err = png.Encode(f, Scale(s, p.Scale))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return errors.Wrapf(err, "render png %s", name)
}
