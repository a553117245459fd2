package minigrep

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ReadSource reads the whole file, decompressing when the name ends in
// .gz. klauspost's gzip is wire-compatible with compress/gzip and faster,
// which matters for nothing in this repo and was adopted anyway to see a
// drop-in stdlib replacement in action.
func ReadSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("reading gzip header of %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// Run executes the search described by config, printing matches to out.
func Run(config Config, out io.Writer) error {
	contents, err := ReadSource(config.FilePath)
	if err != nil {
		return err
	}

	var results []string
	if config.IgnoreCase {
		results = SearchInsensitive(config.Query, contents)
	} else {
		results = Search(config.Query, contents)
	}

	for _, line := range results {
		fmt.Fprintln(out, line)
	}
	return nil
}
