package corenlp

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoInputs is returned when the input directory contains no regular files.
var ErrNoInputs = errors.New("no input files")

// ListInputs returns the regular files directly inside dir, in lexical
// order. It does not recurse; subdirectories are skipped.
func ListInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoInputs, dir)
	}
	return files, nil
}

// writeFileList persists the newline-delimited batch manifest to a unique
// temporary file and returns its path. The caller owns removal.
func writeFileList(files []string) (string, error) {
	tmp, err := os.CreateTemp("", "corenlp-filelist-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create file list: %w", err)
	}
	for _, f := range files {
		if _, err := fmt.Fprintln(tmp, f); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return "", fmt.Errorf("failed to write file list: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write file list: %w", err)
	}
	return tmp.Name(), nil
}
