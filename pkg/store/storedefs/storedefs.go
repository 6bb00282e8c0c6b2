// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// does not need to depend on the concrete implementation.
package storedefs

import (
	"errors"

	"github.com/styledstring/styledstring/pkg/styled"
)

// ErrNotFound is returned when there is no text with the requested name.
var ErrNotFound = errors.New("no such text")

// Store is an interface satisfied by the storage service.
type Store interface {
	// Put stores t under name, replacing any text already stored under it,
	// and returns the digest of its content.
	Put(name string, t styled.Text) (string, error)
	Get(name string) (styled.Text, error)
	Digest(name string) (string, error)
	Delete(name string) error
	Names() ([]string, error)
}
