package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"
)

type ErrorKind int

const (
	NotFound ErrorKind = iota + 1
	DecodeError
	IoError
)

var (
	ErrNotFound = errors.New("file not found")
	ErrDecode   = errors.New("file is not valid UTF-8 text")
	ErrIo       = errors.New("file could not be read")

	errNotRegular = errors.New("not a regular file")
)

// ReadError tells the caller which of the three read failures happened.
type ReadError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func newReadError(kind ErrorKind, path string, err error) *ReadError {
	return &ReadError{Kind: kind, Path: path, Err: err}
}

func (it ErrorKind) String() string {
	switch it {
	case NotFound:
		return "NotFound"
	case DecodeError:
		return "DecodeError"
	case IoError:
		return "IoError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(it))
	}
}

func (it ErrorKind) sentinel() error {
	switch it {
	case NotFound:
		return ErrNotFound
	case DecodeError:
		return ErrDecode
	default:
		return ErrIo
	}
}

func (it *ReadError) Error() string {
	if it.Err == nil {
		return fmt.Sprintf("%v: %s", it.Kind.sentinel(), it.Path)
	}
	return fmt.Sprintf("%v: %s: %v", it.Kind.sentinel(), it.Path, it.Err)
}

func (it *ReadError) Unwrap() error {
	return it.Err
}

func (it *ReadError) Is(target error) bool {
	return target == it.Kind.sentinel()
}

// ReadText returns the whole content of a regular file as UTF-8 text.
func ReadText(path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", newReadError(NotFound, path, nil)
	}
	if err != nil {
		return "", newReadError(IoError, path, err)
	}
	if !info.Mode().IsRegular() {
		return "", newReadError(NotFound, path, errNotRegular)
	}
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", newReadError(NotFound, path, nil)
	}
	if err != nil {
		return "", newReadError(IoError, path, err)
	}
	if !utf8.Valid(content) {
		return "", newReadError(DecodeError, path, nil)
	}
	return string(content), nil
}
