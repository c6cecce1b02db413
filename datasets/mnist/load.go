package mnist

import "strings"

// Load reads a dataset file. Names containing "-idx3-ubyte" are gzip IDX
// image files; everything else is CSV, optionally gzipped.
func Load(path string) (Dataset, error) {
	if strings.Contains(path, "-idx3-ubyte") {
		return LoadIDX(path, "")
	}
	return LoadCSV(path)
}
