package dictionary

// Tree is an unbalanced binary search tree. Its shape depends only on the
// order of insertion, so inserting keys in sorted order degrades it to a
// chain. Tree is not safe for concurrent use.
type Tree[K, V any] struct {
	cmp     CompareFunc[K]
	root    *treeEntry[K, V]
	count   int
	version uint64
}

var _ Dictionary[int, int] = (*Tree[int, int])(nil)

// NewTree returns an empty Tree ordered by cmp.
func NewTree[K, V any](cmp CompareFunc[K]) *Tree[K, V] {
	if cmp == nil {
		panic("dictionary: nil CompareFunc")
	}
	return &Tree[K, V]{cmp: cmp}
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	return t.count
}

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.count == 0
}

// locate returns the slot that holds key, or the empty slot where key would
// be attached. The returned slot is never nil.
func (t *Tree[K, V]) locate(key K) **treeEntry[K, V] {
	slot := &t.root
	for *slot != nil {
		c := t.cmp(key, (*slot).key)
		switch {
		case c == 0:
			return slot
		case c < 0:
			slot = &(*slot).left
		default:
			slot = &(*slot).right
		}
	}
	return slot
}

// Get returns the value for a key.
func (t *Tree[K, V]) Get(key K) (V, error) {
	n := *t.locate(key)
	if n == nil {
		var zero V
		return zero, keyNotFound("get", key)
	}
	return n.value, nil
}

// Contains returns true if the key exists in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return *t.locate(key) != nil
}

// Clear drops every entry. Iterators created before the call fail on their
// next advance.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.count = 0
	t.version++
}

// Root returns the entry at the root of the tree.
func (t *Tree[K, V]) Root() (Entry[K, V], bool) {
	if t.root == nil {
		return Entry[K, V]{}, false
	}
	return t.root.entry(), true
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[K, V]) Height() int {
	if t.root == nil {
		return 0
	}

	type frame struct {
		n     *treeEntry[K, V]
		depth int
	}
	height := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > height {
			height = f.depth
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}
	return height
}

// Iterator returns a fail-fast in-order iterator over the tree.
func (t *Tree[K, V]) Iterator() Iterator[K, V] {
	return newTreeIterator(t)
}

// Ascend calls visit for each entry in ascending key order until visit
// returns false. It returns ErrConcurrentModification if visit modifies the
// tree structurally and more entries remain.
func (t *Tree[K, V]) Ascend(visit func(key K, value V) bool) error {
	return ascend(t.Iterator(), visit)
}
