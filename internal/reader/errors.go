package reader

import (
	"errors"
	"io/fs"
)

var (
	ErrUnsupportedCharset  = errors.New("unsupported charset")
	ErrUnsupportedPathKind = errors.New("unsupported path kind")
	ErrNilRepository       = errors.New("repository is nil")
)

// ErrIsDirectory is returned when a local path names a directory. It matches
// fs.ErrNotExist, so such a path is reported like a missing file.
var ErrIsDirectory error = notExistError("is a directory")

type notExistError string

func (e notExistError) Error() string { return string(e) }

func (e notExistError) Is(target error) bool { return target == fs.ErrNotExist }
