package reader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o600))

	content, err := readFile(path, unicode.UTF8)

	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", content)
}

func TestReadFile_DirectoryIsNotExist(t *testing.T) {
	dir := t.TempDir()

	_, err := readFile(dir, unicode.UTF8)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIsDirectory)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, "open "+dir+": is a directory", err.Error())
}

func TestReadFile_Missing(t *testing.T) {
	_, err := readFile(filepath.Join(t.TempDir(), "absent.yml"), unicode.UTF8)

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrIsDirectory)
}
