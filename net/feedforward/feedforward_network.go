// Package feedforward implements a feedforward network of hashtrons
package feedforward

import "github.com/pkg/errors"

import "github.com/neurlang/digitview/hash"
import "github.com/neurlang/digitview/hashtron"
import "github.com/neurlang/digitview/layer"
import "github.com/neurlang/digitview/parallel"

// FeedforwardNetworkInput is one individual input to the feedforward network
type FeedforwardNetworkInput interface {
	Feature(n int) uint32
}

// SingleValue is a single value returned by a final hashtron layer
type SingleValue uint32

// Feature extracts the feature from SingleValue
func (v SingleValue) Feature(n int) uint32 {
	return uint32(v)
}

// FeedforwardNetwork is the feedforward network. Layers alternate between
// hashtron layers and combiners; the slot after a hashtron layer holds its
// combiner or nil.
type FeedforwardNetwork struct {
	layers    [][]hashtron.Hashtron
	mapping   []byte
	combiners []layer.Layer
	premodulo []uint32
}

// Len returns the number of hashtrons inside the network.
func (f FeedforwardNetwork) Len() (o int) {
	for _, v := range f.layers {
		o += len(v)
	}
	return
}

// LenLayers returns the number of layers. Each Layer and Combiner counts as a layer here.
func (f FeedforwardNetwork) LenLayers() int {
	return len(f.layers)
}

// GetHashtron gets n-th hashtron pointer in the network.
func (f FeedforwardNetwork) GetHashtron(n int) *hashtron.Hashtron {
	for _, v := range f.layers {
		if n < len(v) {
			return &v[n]
		}
		n -= len(v)
	}
	return nil
}

// NewLayerP adds a hashtron layer with n hashtrons, each recognizing bits bits,
// whose input features are first hashed into [0, premodulo). Zero premodulo
// passes features through.
func (f *FeedforwardNetwork) NewLayerP(n int, bits byte, premodulo uint32) {
	var layer = make([]hashtron.Hashtron, n)
	for i := range layer {
		h, _ := hashtron.New(nil, bits)
		layer[i] = *h
	}
	f.layers = append(f.layers, layer)
	f.mapping = append(f.mapping, bits)
	f.combiners = append(f.combiners, nil)
	f.premodulo = append(f.premodulo, premodulo)
}

// NewCombiner adds a combiner layer to the end of network
func (f *FeedforwardNetwork) NewCombiner(layer layer.Layer) {
	f.layers = append(f.layers, nil)
	f.mapping = append(f.mapping, 0)
	f.combiners = append(f.combiners, layer)
	f.premodulo = append(f.premodulo, 0)
}

// Validate checks that every combiner can take the outputs of the hashtron layer before it.
func (f FeedforwardNetwork) Validate() error {
	if len(f.layers) == 0 {
		return errors.New("network has no layers")
	}
	for l := 0; l < len(f.layers); l += 2 {
		if len(f.layers[l]) == 0 {
			return errors.Errorf("layer %d has no hashtrons", l)
		}
		if l+1 < len(f.combiners) {
			if f.combiners[l+1] == nil {
				return errors.Errorf("layer %d is not a combiner", l+1)
			}
			if f.combiners[l+1].Inputs() < len(f.layers[l]) {
				return errors.Errorf("combiner %d takes %d inputs, layer %d has %d hashtrons",
					l+1, f.combiners[l+1].Inputs(), l, len(f.layers[l]))
			}
		}
	}
	return nil
}

// Infer infers the network output based on input, reading up to 16 output
// bits from the last layer. The output is xored with parity.
func (f FeedforwardNetwork) Infer(input FeedforwardNetworkInput, parity uint16) (val uint16) {
	var out = input
	for l := 0; l < f.LenLayers(); l += 2 {
		out = f.Forward(out, l)
	}
	if _, ok := out.(SingleValue); ok {
		return uint16(out.Feature(0)) ^ parity
	}
	for j := byte(0); j < 16 && j < f.GetLastCells(); j++ {
		val |= uint16(out.Feature(int(j))&1) << uint16(j)
	}
	return val ^ parity
}

// Forward computes the output of hashtron layer l (and its combiner, if any) on in.
func (f FeedforwardNetwork) Forward(in FeedforwardNetworkInput, l int) FeedforwardNetworkInput {
	if len(f.combiners) > l+1 && f.combiners[l+1] != nil {
		var combiner = f.combiners[l+1].Lay()
		parallel.ForEach(len(f.layers[l]), parallel.DefaultLimit(), func(i int) {
			var feat = in.Feature(i)
			if f.premodulo[l] != 0 {
				feat = hash.Hash(feat, uint32(i), f.premodulo[l])
			}
			var bit = f.layers[l][i].Forward(feat, false)
			combiner.Put(i, bit&1 != 0)
		})
		return combiner
	}

	var feat = in.Feature(0)
	if f.premodulo[l] != 0 {
		feat = hash.Hash(feat, 0, f.premodulo[l])
	}
	return SingleValue(f.layers[l][0].Forward(feat, false))
}

// GetBits reports the number of bits predicted by the final hashtron layer
func (f *FeedforwardNetwork) GetBits() (ret byte) {
	if len(f.mapping) == 0 {
		return 1
	}
	ret = f.mapping[len(f.mapping)-1]
	if ret == 0 {
		ret = 1
	}
	return
}

// GetLastCells gets the number of hashtrons feeding the network output
func (f *FeedforwardNetwork) GetLastCells() (ret byte) {
	if len(f.layers) == 0 {
		return 0
	}
	ret = byte(len(f.layers[len(f.layers)-1]))
	if ret == 0 && len(f.layers) >= 2 {
		ret = byte(len(f.layers[len(f.layers)-2]))
	}
	return
}

// GetClasses reports the number of distinct outputs of this network
func (f *FeedforwardNetwork) GetClasses() (ret uint16) {
	ret = uint16(1 << f.GetBits())
	ret2 := uint16(1 << f.GetLastCells())
	if ret2 > ret {
		return ret2
	}
	return
}
