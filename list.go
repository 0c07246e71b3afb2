package dictionary

// List is a singly linked list kept in ascending key order. Every operation
// is a linear scan. List is not safe for concurrent use.
type List[K, V any] struct {
	cmp     CompareFunc[K]
	head    *listEntry[K, V]
	count   int
	version uint64
}

var _ Dictionary[int, int] = (*List[int, int])(nil)

// NewList returns an empty List ordered by cmp.
func NewList[K, V any](cmp CompareFunc[K]) *List[K, V] {
	if cmp == nil {
		panic("dictionary: nil CompareFunc")
	}
	return &List[K, V]{cmp: cmp}
}

// Len returns the number of entries in the list.
func (l *List[K, V]) Len() int {
	return l.count
}

// IsEmpty reports whether the list holds no entries.
func (l *List[K, V]) IsEmpty() bool {
	return l.count == 0
}

// Get returns the value for a key.
func (l *List[K, V]) Get(key K) (V, error) {
	_, n := l.find(key)
	if n == nil {
		var zero V
		return zero, keyNotFound("get", key)
	}
	return n.value, nil
}

// Contains returns true if the key exists in the list.
func (l *List[K, V]) Contains(key K) bool {
	_, n := l.find(key)
	return n != nil
}

// Put inserts or updates the value for the given key.
func (l *List[K, V]) Put(key K, value V) {
	prev, n := l.find(key)
	if n != nil {
		n.value = value
		return
	}

	if prev == nil {
		l.head = newListEntry(key, value, l.head)
	} else {
		prev.next = newListEntry(key, value, prev.next)
	}
	l.count++
	l.version++
}

// Remove deletes the entry for key. The list is left untouched when the key
// is absent.
func (l *List[K, V]) Remove(key K) error {
	prev, n := l.find(key)
	if n == nil {
		return keyNotFound("remove", key)
	}
	if prev == nil {
		l.head = n.next
	} else {
		prev.next = n.next
	}
	n.next = nil
	l.count--
	l.version++
	return nil
}

// Clear drops every entry.
func (l *List[K, V]) Clear() {
	l.head = nil
	l.count = 0
	l.version++
}

// Iterator returns a fail-fast iterator over the list.
func (l *List[K, V]) Iterator() Iterator[K, V] {
	return newListIterator(l)
}

// Ascend calls visit for each entry in ascending key order until visit
// returns false.
func (l *List[K, V]) Ascend(visit func(key K, value V) bool) error {
	return ascend(l.Iterator(), visit)
}
