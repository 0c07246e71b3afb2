package dictionary

import (
	"cmp"
)

// CompareFunc returns a negative number when a orders before b, zero when
// they are equal and a positive number when a orders after b. It must define
// a total order over every key stored in one dictionary.
type CompareFunc[K any] func(a, b K) int

// Comparable is implemented by key types that carry their own ordering.
type Comparable[K any] interface {
	Compare(other K) int
}

// Natural returns the ordering of cmp.Compare for builtin ordered types.
func Natural[K cmp.Ordered]() CompareFunc[K] {
	return cmp.Compare[K]
}

// Method returns a CompareFunc that delegates to the key's Compare method.
func Method[K Comparable[K]]() CompareFunc[K] {
	return func(a, b K) int {
		return a.Compare(b)
	}
}

// Entry is a key/value pair produced by iteration.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Iterator is a forward-only, one-shot view over a dictionary in ascending
// key order. Iterators are fail-fast: once the dictionary they were created
// from is structurally modified, every further call to Next returns
// ErrConcurrentModification.
type Iterator[K, V any] interface {
	// HasNext reports whether the traversal has entries left. It never
	// checks for concurrent modification.
	HasNext() bool
	// Next returns the next entry. It returns ErrExhausted when the
	// iteration is complete.
	Next() (Entry[K, V], error)
	// Remove always fails with ErrUnsupportedOperation. Entries are removed
	// through the dictionary only.
	Remove() error
}

// Dictionary is an ordered map with unique keys. Tree and List implement it
// with identical observable behavior.
type Dictionary[K, V any] interface {
	// Len returns the number of entries.
	Len() int
	// IsEmpty reports whether Len is zero.
	IsEmpty() bool
	// Get returns the value stored under key, or an error matching
	// ErrKeyNotFound.
	Get(key K) (V, error)
	// Contains reports whether key is present.
	Contains(key K) bool
	// Put stores value under key, replacing any previous value.
	Put(key K, value V)
	// Remove deletes key, or returns an error matching ErrKeyNotFound
	// without modifying the dictionary.
	Remove(key K) error
	// Clear removes every entry.
	Clear()
	// Iterator returns a fail-fast iterator positioned before the smallest key.
	Iterator() Iterator[K, V]
	// Ascend calls visit for each entry in ascending key order until visit
	// returns false.
	Ascend(visit func(key K, value V) bool) error
}

// New returns an empty dictionary ordered by cmp. The backing structure and
// any wrappers are chosen by opts; the default is an unsynchronized Tree.
func New[K, V any](cmp CompareFunc[K], opts ...Option) Dictionary[K, V] {
	cfg := NewConfig(opts...)

	var d Dictionary[K, V]
	switch cfg.backing {
	case ListBacking:
		d = NewList[K, V](cmp)
	default:
		d = NewTree[K, V](cmp)
	}

	if cfg.metrics != nil || cfg.loggerSet {
		d = NewInstrumented(d, cfg.backing.String(), cfg.metrics, cfg.logger)
	}
	if cfg.synchronized {
		d = NewSynchronized(d)
	}
	return d
}

// ascend drives visit from a fresh iterator. It is shared by both backings.
func ascend[K, V any](it Iterator[K, V], visit func(key K, value V) bool) error {
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return err
		}
		if !visit(e.Key, e.Value) {
			return nil
		}
	}
	return nil
}
