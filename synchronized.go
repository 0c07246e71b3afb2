package dictionary

import "sync"

// Synchronized serializes access to another Dictionary with a read/write
// mutex. Its iterators take the read lock on every call, so interleaved
// writers are still reported as ErrConcurrentModification rather than
// corrupting the traversal.
type Synchronized[K, V any] struct {
	mu sync.RWMutex
	d  Dictionary[K, V]
}

var _ Dictionary[int, int] = (*Synchronized[int, int])(nil)

// NewSynchronized wraps d. d must not be used directly afterwards.
func NewSynchronized[K, V any](d Dictionary[K, V]) *Synchronized[K, V] {
	return &Synchronized[K, V]{d: d}
}

// Unwrap returns the wrapped dictionary.
func (s *Synchronized[K, V]) Unwrap() Dictionary[K, V] { return s.d }

func (s *Synchronized[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.d.Len()
}

func (s *Synchronized[K, V]) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.d.IsEmpty()
}

func (s *Synchronized[K, V]) Get(key K) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.d.Get(key)
}

func (s *Synchronized[K, V]) Contains(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.d.Contains(key)
}

func (s *Synchronized[K, V]) Put(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.Put(key, value)
}

func (s *Synchronized[K, V]) Remove(key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Remove(key)
}

func (s *Synchronized[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.Clear()
}

func (s *Synchronized[K, V]) Iterator() Iterator[K, V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &syncIterator[K, V]{mu: &s.mu, it: s.d.Iterator()}
}

// Ascend takes the read lock per step, so visit may call back into s.
func (s *Synchronized[K, V]) Ascend(visit func(key K, value V) bool) error {
	return ascend(s.Iterator(), visit)
}

type syncIterator[K, V any] struct {
	mu *sync.RWMutex
	it Iterator[K, V]
}

func (it *syncIterator[K, V]) HasNext() bool {
	it.mu.RLock()
	defer it.mu.RUnlock()
	return it.it.HasNext()
}

func (it *syncIterator[K, V]) Next() (Entry[K, V], error) {
	it.mu.RLock()
	defer it.mu.RUnlock()
	return it.it.Next()
}

func (it *syncIterator[K, V]) Remove() error {
	return it.it.Remove()
}
