package dictionary

import (
	"github.com/cockroachdb/errors"
)

// Errors
var (
	// ErrKeyNotFound is returned by Get and Remove when the key is absent.
	// Returned errors wrap it with the offending key; match with errors.Is.
	ErrKeyNotFound = errors.New("key not found")
	// ErrConcurrentModification is returned by Iterator.Next once the
	// dictionary has been structurally modified since the iterator was made.
	ErrConcurrentModification = errors.New("dictionary modified during iteration")
	// ErrUnsupportedOperation is returned by Iterator.Remove.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrExhausted is returned by Iterator.Next after the last entry.
	ErrExhausted = errors.New("iteration exhausted")
)

func keyNotFound[K any](op string, key K) error {
	return errors.Wrapf(ErrKeyNotFound, "%s %v", op, key)
}
