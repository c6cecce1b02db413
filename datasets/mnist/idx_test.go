package mnist

import "bytes"
import "compress/gzip"
import "crypto/sha256"
import "encoding/binary"
import "encoding/hex"
import "os"
import "path/filepath"
import "testing"

import "github.com/pkg/errors"

func idxImages(samples ...Sample) []byte {
	var buf bytes.Buffer
	var hdr [16]byte
	binary.BigEndian.PutUint32(hdr[0:], idxImagesMagic)
	binary.BigEndian.PutUint32(hdr[4:], uint32(len(samples)))
	binary.BigEndian.PutUint32(hdr[8:], ImgSize)
	binary.BigEndian.PutUint32(hdr[12:], ImgSize)
	buf.Write(hdr[:])
	for _, s := range samples {
		buf.Write(s[:])
	}
	return buf.Bytes()
}

func writeGzip(t *testing.T, path string, data []byte) []byte {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeIDX(t *testing.T) {
	ds, err := DecodeIDX(idxImages(sample(1), sample(2)))
	if err != nil {
		t.Fatal(err)
	}
	if len(ds) != 2 || ds[0] != sample(1) || ds[1] != sample(2) {
		t.Fatal("unexpected samples")
	}

	bad := idxImages(sample(1))
	binary.BigEndian.PutUint32(bad[0:], idxLabelsMagic)
	if _, err := DecodeIDX(bad); !errors.Is(err, ErrFormat) {
		t.Fatalf("bad magic: got %v", err)
	}
	short := idxImages(sample(1), sample(2))
	if _, err := DecodeIDX(short[:len(short)-1]); !errors.Is(err, ErrFormat) {
		t.Fatalf("truncated: got %v", err)
	}
	if _, err := DecodeIDX([]byte{0, 0, 8}); !errors.Is(err, ErrFormat) {
		t.Fatalf("header: got %v", err)
	}
}

func TestLoadIDXDigest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "digits-idx3-ubyte.gz")
	compressed := writeGzip(t, path, idxImages(sample(4)))
	sum := sha256.Sum256(compressed)

	ds, err := LoadIDX(path, hex.EncodeToString(sum[:]))
	if err != nil {
		t.Fatal(err)
	}
	if len(ds) != 1 || ds[0] != sample(4) {
		t.Fatal("unexpected samples")
	}
	if _, err := LoadIDX(path, "00"); !errors.Is(err, ErrDigest) {
		t.Fatalf("got %v, want ErrDigest", err)
	}
	viaLoad, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(viaLoad) != 1 {
		t.Fatalf("Load returned %d samples", len(viaLoad))
	}
}

func TestLoadIDXKnownName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, inferSetImg)
	writeGzip(t, path, idxImages(sample(0)))
	if _, err := LoadIDX(path, ""); !errors.Is(err, ErrDigest) {
		t.Fatalf("canonical name with foreign content: got %v, want ErrDigest", err)
	}
}

func TestLoadIDXLabels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "digits-idx1-ubyte.gz")
	var raw = []byte{0, 0, 8, 1, 0, 0, 0, 3, 7, 2, 1}
	writeGzip(t, path, raw)
	labels, err := LoadIDXLabels(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(labels, []byte{7, 2, 1}) {
		t.Fatalf("labels = %v", labels)
	}
	writeGzip(t, path, raw[:len(raw)-1])
	if _, err := LoadIDXLabels(path, ""); !errors.Is(err, ErrFormat) {
		t.Fatalf("got %v, want ErrFormat", err)
	}
}
