// Package majpool2d implements a 2D majority pooling layer and combiner
package majpool2d

import "github.com/pkg/errors"

import "github.com/neurlang/digitview/layer"

type MajPool2DLayer struct {
	width, height, subwidth, subheight, repeat int
}

type MajPool2D struct {
	vec                                        []bool
	width, height, subwidth, subheight, repeat int
}

// New creates a new MajPool2D layer. The layer has width*height cells, each
// pooling a subwidth*subheight block of inputs, repeated repeat times.
func New(width, height, subwidth, subheight, repeat int) (o *MajPool2DLayer, err error) {
	if width <= 0 || height <= 0 || subwidth <= 0 || subheight <= 0 || repeat <= 0 {
		return nil, errors.Errorf("majpool2d dimensions %dx%d/%dx%d*%d", width, height, subwidth, subheight, repeat)
	}
	if subwidth*subheight > 31 {
		return nil, errors.Errorf("majpool2d block of %d inputs does not fit a feature", subwidth*subheight)
	}
	o = new(MajPool2DLayer)
	o.width = width
	o.height = height
	o.subwidth = subwidth
	o.subheight = subheight
	o.repeat = repeat
	return
}

// MustNew creates a new MajPool2D layer or panics
func MustNew(width, height, subwidth, subheight, repeat int) (o *MajPool2DLayer) {
	o, err := New(width, height, subwidth, subheight, repeat)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// Inputs reports the number of inputs
func (i *MajPool2DLayer) Inputs() int {
	return i.width * i.height * i.subwidth * i.subheight * i.repeat
}

// Lay turns MajPool2D layer into a combiner
func (i *MajPool2DLayer) Lay() layer.Combiner {
	var o MajPool2D
	o.vec = make([]bool, i.Inputs())
	o.width = i.width
	o.height = i.height
	o.subwidth = i.subwidth
	o.subheight = i.subheight
	o.repeat = i.repeat
	return &o
}
