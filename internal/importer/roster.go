package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFile is returned for roster files without a .txt or .csv
// extension.
var ErrUnsupportedFile = errors.New("unsupported roster file")

// AcceptedExtensions lists the roster file extensions LoadRoster reads.
var AcceptedExtensions = []string{".txt", ".csv"}

// ParseNames splits raw roster text on commas and newlines, trims each
// segment and drops empty ones. Order is preserved and duplicates are kept.
func ParseNames(text string) []string {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	names := make([]string, 0, len(segments))
	for _, seg := range segments {
		if n := strings.TrimSpace(seg); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// LoadRoster reads a roster file and returns the student names it lists.
func LoadRoster(path string) ([]string, error) {
	if err := checkExtension(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}
	return ParseNames(string(data)), nil
}

func checkExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	for _, ok := range AcceptedExtensions {
		if ext == ok {
			return nil
		}
	}
	return fmt.Errorf("%w %q: expected one of %s", ErrUnsupportedFile, filepath.Base(path), strings.Join(AcceptedExtensions, ", "))
}
