package ports

import (
	"io"
)

// PictureStore accepts a byte stream with its declared original name and
// returns the unique name the picture is retrievable under. Remove undoes a
// Save whose contact never persisted.
type PictureStore interface {
	Save(originalName string, size int64, r io.Reader) (string, error)
	Remove(name string) error
}
