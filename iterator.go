package dictionary

// treeIterator walks a Tree in order with an explicit stack. It borrows the
// tree's nodes and never modifies them.
type treeIterator[K, V any] struct {
	t        *Tree[K, V]
	pending  []*treeEntry[K, V]
	cursor   *treeEntry[K, V]
	snapshot uint64
	emitted  int
}

func newTreeIterator[K, V any](t *Tree[K, V]) *treeIterator[K, V] {
	return &treeIterator[K, V]{
		t:        t,
		cursor:   t.root,
		snapshot: t.version,
	}
}

// HasNext reports whether the traversal has nodes left to visit.
func (it *treeIterator[K, V]) HasNext() bool {
	return it.cursor != nil || len(it.pending) > 0
}

// Next returns the entry with the next larger key.
func (it *treeIterator[K, V]) Next() (Entry[K, V], error) {
	if it.snapshot != it.t.version {
		return Entry[K, V]{}, ErrConcurrentModification
	}

	for it.cursor != nil {
		it.pending = append(it.pending, it.cursor)
		it.cursor = it.cursor.left
	}
	if len(it.pending) == 0 {
		return Entry[K, V]{}, ErrExhausted
	}

	top := len(it.pending) - 1
	n := it.pending[top]
	it.pending[top] = nil
	it.pending = it.pending[:top]
	it.cursor = n.right
	it.emitted++
	return n.entry(), nil
}

// Remove is not supported; use Tree.Remove.
func (it *treeIterator[K, V]) Remove() error {
	return ErrUnsupportedOperation
}

// listIterator follows next links from the head of a List.
type listIterator[K, V any] struct {
	l        *List[K, V]
	cursor   *listEntry[K, V]
	snapshot uint64
}

func newListIterator[K, V any](l *List[K, V]) *listIterator[K, V] {
	return &listIterator[K, V]{
		l:        l,
		cursor:   l.head,
		snapshot: l.version,
	}
}

// HasNext reports whether an entry remains.
func (it *listIterator[K, V]) HasNext() bool {
	return it.cursor != nil
}

// Next returns the next entry in list order.
func (it *listIterator[K, V]) Next() (Entry[K, V], error) {
	if it.snapshot != it.l.version {
		return Entry[K, V]{}, ErrConcurrentModification
	}
	if it.cursor == nil {
		return Entry[K, V]{}, ErrExhausted
	}
	n := it.cursor
	it.cursor = n.next
	return n.entry(), nil
}

// Remove is not supported; use List.Remove.
func (it *listIterator[K, V]) Remove() error {
	return ErrUnsupportedOperation
}
