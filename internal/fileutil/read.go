package fileutil

import (
	"fmt"
	"os"
)

// ReadFileToString reads the whole file at path into memory and returns its
// contents as a string. Missing or unreadable files surface as a wrapped
// error; the caller owns how that is reported.
func ReadFileToString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return string(data), nil
}
