package dictionary

// treeEntry is a tree node. Each node is owned by exactly one slot: the
// tree's root or a left/right field of its parent.
type treeEntry[K, V any] struct {
	key   K
	value V
	left  *treeEntry[K, V]
	right *treeEntry[K, V]
}

func newTreeEntry[K, V any](key K, value V) *treeEntry[K, V] {
	return &treeEntry[K, V]{key: key, value: value}
}

func (n *treeEntry[K, V]) entry() Entry[K, V] {
	return Entry[K, V]{Key: n.key, Value: n.value}
}

// leftmost returns the slot holding the smallest node of the subtree rooted
// at *slot. *slot must not be nil.
func leftmost[K, V any](slot **treeEntry[K, V]) **treeEntry[K, V] {
	for (*slot).left != nil {
		slot = &(*slot).left
	}
	return slot
}

// listEntry is a list node; keys strictly increase along next.
type listEntry[K, V any] struct {
	key   K
	value V
	next  *listEntry[K, V]
}

func newListEntry[K, V any](key K, value V, next *listEntry[K, V]) *listEntry[K, V] {
	return &listEntry[K, V]{key: key, value: value, next: next}
}

func (n *listEntry[K, V]) entry() Entry[K, V] {
	return Entry[K, V]{Key: n.key, Value: n.value}
}
