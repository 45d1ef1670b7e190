package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNames(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"newline separated", "Alice\nBob\nCara", []string{"Alice", "Bob", "Cara"}},
		{"comma separated", "Alice, Bob ,Cara", []string{"Alice", "Bob", "Cara"}},
		{"mixed with blanks", "Alice,,\n\n  Bob  \n,Cara,", []string{"Alice", "Bob", "Cara"}},
		{"windows line endings", "Alice\r\nBob\r\n", []string{"Alice", "Bob"}},
		{"duplicates kept", "Bob\nBob", []string{"Bob", "Bob"}},
		{"inner spaces kept", "Mary Ann Lee", []string{"Mary Ann Lee"}},
		{"empty", "", []string{}},
		{"whitespace only", " \n , \t", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseNames(tc.in))
		})
	}
}

func TestLoadRoster(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "period3.csv")
	require.NoError(t, os.WriteFile(path, []byte("Alice,Bob\nCara\n"), 0644))

	names, err := LoadRoster(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Cara"}, names)
}

func TestLoadRoster_UppercaseExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ROSTER.TXT")
	require.NoError(t, os.WriteFile(path, []byte("Alice"), 0644))

	names, err := LoadRoster(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, names)
}

func TestLoadRoster_RejectsOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("Alice"), 0644))

	_, err := LoadRoster(path)
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestLoadRoster_MissingFile(t *testing.T) {
	_, err := LoadRoster(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading roster file")
}
