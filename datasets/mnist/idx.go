package mnist

import "bytes"
import "compress/gzip"
import "crypto/sha256"
import "encoding/binary"
import "encoding/hex"
import "io"
import "os"
import "path/filepath"

import "github.com/pkg/errors"

const inferSetImg = "t10k-images-idx3-ubyte.gz"
const inferSetVal = "t10k-labels-idx1-ubyte.gz"
const trainSetImg = "train-images-idx3-ubyte.gz"
const trainSetVal = "train-labels-idx1-ubyte.gz"

// KnownDigests maps the canonical MNIST file names to their SHA-256
var KnownDigests = map[string]string{
	inferSetImg: "8d422c7b0a1c1c79245a5bcf07fe86e33eeafee792b84584aec276f5a2dbc4e6",
	inferSetVal: "f7ae60f92e00ec6debd23a6088c31dbd2371eca3ffa0defaefb259924204aec6",
	trainSetImg: "440fcabf73cc546fa21475e81ea370265605f56be210a4024d2ca8f203523609",
	trainSetVal: "3552534a0a558bbed6aed32b30c495cca23d567ec52cac8be1a0730e8010255c",
}

const idxImagesMagic = 0x00000803
const idxLabelsMagic = 0x00000801

// LoadIDX reads a gzip IDX image file. The file is checked against digest,
// or against KnownDigests when digest is empty; unknown files are not checked.
func LoadIDX(path, digest string) (Dataset, error) {
	raw, err := readGzipChecked(path, digest)
	if err != nil {
		return nil, err
	}
	return DecodeIDX(raw)
}

// DecodeIDX decodes an uncompressed IDX image file of 28x28 images
func DecodeIDX(raw []byte) (Dataset, error) {
	if len(raw) < 16 {
		return nil, errors.Wrap(ErrFormat, "idx header truncated")
	}
	if magic := binary.BigEndian.Uint32(raw[0:]); magic != idxImagesMagic {
		return nil, errors.Wrapf(ErrFormat, "idx images magic %#08x", magic)
	}
	var count = int(binary.BigEndian.Uint32(raw[4:]))
	var rows = binary.BigEndian.Uint32(raw[8:])
	var cols = binary.BigEndian.Uint32(raw[12:])
	if rows != ImgSize || cols != ImgSize {
		return nil, errors.Wrapf(ErrFormat, "idx images are %dx%d", cols, rows)
	}
	raw = raw[16:]
	if len(raw) != count*SampleSize {
		return nil, errors.Wrapf(ErrFormat, "idx declares %d images, holds %d bytes", count, len(raw))
	}
	var set = make(Dataset, count)
	for i := range set {
		copy(set[i][:], raw[i*SampleSize:])
	}
	return set, nil
}

// LoadIDXLabels reads a gzip IDX label file, verified like LoadIDX
func LoadIDXLabels(path, digest string) ([]byte, error) {
	raw, err := readGzipChecked(path, digest)
	if err != nil {
		return nil, err
	}
	if len(raw) < 8 {
		return nil, errors.Wrap(ErrFormat, "idx header truncated")
	}
	if magic := binary.BigEndian.Uint32(raw[0:]); magic != idxLabelsMagic {
		return nil, errors.Wrapf(ErrFormat, "idx labels magic %#08x", magic)
	}
	var count = int(binary.BigEndian.Uint32(raw[4:]))
	if len(raw)-8 != count {
		return nil, errors.Wrapf(ErrFormat, "idx declares %d labels, holds %d", count, len(raw)-8)
	}
	return raw[8:], nil
}

func readGzipChecked(path, digest string) ([]byte, error) {
	compressed, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "mnist: read idx")
	}
	if digest == "" {
		digest = KnownDigests[filepath.Base(path)]
	}
	if digest != "" {
		sum := sha256.Sum256(compressed)
		if hex.EncodeToString(sum[:]) != digest {
			return nil, errors.Wrapf(ErrDigest, "%s", path)
		}
	}
	gzipReader, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, errors.Wrapf(err, "mnist: gunzip %s", path)
	}
	defer gzipReader.Close()
	var uncompressed bytes.Buffer
	if _, err := io.Copy(&uncompressed, gzipReader); err != nil {
		return nil, errors.Wrapf(err, "mnist: gunzip %s", path)
	}
	return uncompressed.Bytes(), nil
}
