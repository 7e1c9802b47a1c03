package reader

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-config-reader/models"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

func (r *ValidatingFileReader) readLocal(path models.Path) (string, *models.Problem) {
	content, err := readFile(path.Value, r.charset)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", r.newProblem("Cannot find provided path: "+err.Error()+".", err)
		}
		return "", r.newProblem("Failed to read path "+quote(path.Value)+".", err)
	}

	return content, nil
}

// readFile reads the whole file and decodes it from charset into UTF-8.
// A directory is reported as a missing file.
func readFile(name string, charset encoding.Encoding) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", &fs.PathError{Op: "open", Path: name, Err: ErrIsDirectory}
	}

	data, err := io.ReadAll(transform.NewReader(f, charset.NewDecoder()))
	if err != nil {
		return "", err
	}

	return string(data), nil
}
