package inference

import "math"

import "github.com/pkg/errors"

import "github.com/neurlang/digitview/datasets/mnist"
import "github.com/neurlang/digitview/layer/full"
import "github.com/neurlang/digitview/layer/majpool2d"
import "github.com/neurlang/digitview/net/feedforward"

const patches = (mnist.SmallImgSize - 1) * (mnist.SmallImgSize - 1)
const pool1 = 4
const pool2 = 6
const outputs = patches / pool1 / pool2

// NewMNISTNetwork builds the untrained hashtron network layout whose
// weights OpenNetwork reads. The first layer has one hashtron per 2x2 patch
// of the downscaled sample, its outputs are majority pooled in runs of pool1
// and pool2, and the last outputs hashtrons give one output bit each.
func NewMNISTNetwork() *feedforward.FeedforwardNetwork {
	var net feedforward.FeedforwardNetwork
	net.NewLayerP(patches, 0, 1<<12)
	net.NewCombiner(majpool2d.MustNew(patches/pool1, 1, pool1, 1, 1))
	net.NewLayerP(patches/pool1, 0, 1<<(pool1+1))
	net.NewCombiner(majpool2d.MustNew(outputs, 1, pool2, 1, 1))
	net.NewLayerP(outputs, 0, 1<<(pool2+1))
	net.NewCombiner(full.MustNew(outputs, 1, 1))
	return &net
}

// networkInput is what the first hashtron layer reads: the 2x2 patches of
// the downscaled sample, which together cover the whole image.
func networkInput(s *mnist.Sample) feedforward.FeedforwardNetworkInput {
	small := s.Downscale()
	return &small
}

// Network runs a hashtron feedforward network. The network predicts a single
// class, so the score vector is one-hot.
type Network struct {
	net     *feedforward.FeedforwardNetwork
	classes int
}

// OpenNetwork reads lzw compressed hashtron weights into NewMNISTNetwork
func OpenNetwork(path string, opts Options) (*Network, error) {
	net := NewMNISTNetwork()
	if err := net.ReadCompressedWeightsFromFile(path); err != nil {
		return nil, &ModelLoadError{Path: path, Err: err}
	}
	return NewNetwork(net, opts)
}

// NewNetwork wraps an already loaded network
func NewNetwork(net *feedforward.FeedforwardNetwork, opts Options) (*Network, error) {
	if net == nil {
		return nil, ErrEmptyModel
	}
	if err := net.Validate(); err != nil {
		return nil, errors.Wrap(err, "hashtron network")
	}
	var classes = opts.classes()
	if classes > int(net.GetClasses()) {
		return nil, errors.Wrapf(ErrClasses, "%d classes, network has %d outputs", classes, net.GetClasses())
	}
	return &Network{net: net, classes: classes}, nil
}

// Forward quantizes input back to bytes and runs the network
func (n *Network) Forward(input []float32) (ScoreVector, error) {
	if err := checkInput(input, mnist.SampleSize); err != nil {
		return nil, err
	}
	var s mnist.Sample
	for i, v := range input {
		s[i] = quantize(v)
	}
	var predicted = int(n.net.Infer(networkInput(&s), 0)) % n.classes
	var scores = make(ScoreVector, n.classes)
	scores[predicted] = 1
	return scores, nil
}

// Classes reports the number of classes
func (n *Network) Classes() int {
	return n.classes
}

// Close does nothing, the network lives in memory
func (n *Network) Close() error {
	return nil
}

func quantize(v float32) byte {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(math.Round(float64(v) * 255))
}
