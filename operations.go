package dictionary

// Put inserts or updates the value for the given key. Overwriting the value
// of an existing key is not a structural change and leaves live iterators
// valid.
func (t *Tree[K, V]) Put(key K, value V) {
	slot := t.locate(key)
	if n := *slot; n != nil {
		n.value = value
		return
	}
	*slot = newTreeEntry(key, value)
	t.count++
	t.version++
}

// Remove deletes the entry for key. The tree is left untouched when the key
// is absent.
func (t *Tree[K, V]) Remove(key K) error {
	slot := t.locate(key)
	if *slot == nil {
		return keyNotFound("remove", key)
	}
	*slot = unlink(*slot)
	t.count--
	t.version++
	return nil
}

// unlink detaches n from its subtree and returns the node that must take
// n's place in the parent slot.
func unlink[K, V any](n *treeEntry[K, V]) *treeEntry[K, V] {
	switch {
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	}

	// The in-order successor has no left child; its right subtree moves up
	// into the slot it vacates, which may be n.right itself.
	slot := leftmost(&n.right)
	succ := *slot
	*slot = succ.right

	succ.left = n.left
	succ.right = n.right
	n.left, n.right = nil, nil
	return succ
}
