package mnist

import "bufio"
import "compress/gzip"
import "io"
import "os"
import "strconv"
import "strings"

import "github.com/pkg/errors"

// Decode reads one sample per non-empty line of comma separated bytes.
// Lines may end in \n or \r\n.
// Any malformed line fails the whole decode with a *ParseError.
func Decode(r io.Reader) (Dataset, error) {
	var data Dataset
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		sample, err := decodeLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		data = append(data, sample)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Line: lineNo + 1, Err: err}
	}
	return data, nil
}

// DecodeString decodes a CSV dataset held in memory
func DecodeString(s string) (Dataset, error) {
	return Decode(strings.NewReader(s))
}

func decodeLine(line string, lineNo int) (s Sample, err error) {
	fields := strings.Split(line, ",")
	if len(fields) != SampleSize {
		return s, &ParseError{Line: lineNo, Err: errors.Wrapf(ErrFieldCount, "got %d, want %d", len(fields), SampleSize)}
	}
	for i, tok := range fields {
		v, perr := strconv.ParseUint(tok, 10, 8)
		if perr != nil {
			return s, &ParseError{Line: lineNo, Field: i + 1, Token: tok, Err: ErrToken}
		}
		s[i] = byte(v)
	}
	return s, nil
}

// LoadCSV decodes a CSV dataset file, gunzipping it when the name ends in .gz
func LoadCSV(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "mnist: open dataset")
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "mnist: gunzip %s", path)
		}
		defer gz.Close()
		r = gz
	}
	data, err := Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return data, nil
}
