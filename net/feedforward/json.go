package feedforward

import "compress/lzw"
import "encoding/json"
import "io"
import "os"

import "github.com/pkg/errors"

import "github.com/neurlang/digitview/hashtron"

// ErrWeightCount is returned when a weights file holds a different number of hashtrons than the network.
var ErrWeightCount = errors.New("weights do not match network")

// WriteCompressedWeightsToFile writes model weights to a lzw file
func (f FeedforwardNetwork) WriteCompressedWeightsToFile(name string) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	err = f.WriteCompressedWeights(file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteCompressedWeights writes model weights to a writer as a lzw compressed json array
func (f FeedforwardNetwork) WriteCompressedWeights(w io.Writer) error {
	lw := lzw.NewWriter(w, lzw.LSB, 8)
	var all = make([]hashtron.Hashtron, 0, f.Len())
	for i := 0; i < f.Len(); i++ {
		all = append(all, *f.GetHashtron(i))
	}
	if err := json.NewEncoder(lw).Encode(all); err != nil {
		lw.Close()
		return errors.Wrap(err, "encode weights")
	}
	return lw.Close()
}

// ReadCompressedWeightsFromFile reads model weights from a lzw file
func (f *FeedforwardNetwork) ReadCompressedWeightsFromFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return f.ReadCompressedWeights(file)
}

// ReadCompressedWeights reads model weights from a reader. The network
// keeps its previous weights when reading fails.
func (f *FeedforwardNetwork) ReadCompressedWeights(r io.Reader) error {
	lr := lzw.NewReader(r, lzw.LSB, 8)
	defer lr.Close()

	var all []hashtron.Hashtron
	if err := json.NewDecoder(lr).Decode(&all); err != nil {
		return errors.Wrap(err, "decode weights")
	}
	if len(all) != f.Len() {
		return errors.Wrapf(ErrWeightCount, "file has %d hashtrons, network has %d", len(all), f.Len())
	}
	for i := range all {
		*f.GetHashtron(i) = all[i]
	}
	return nil
}
