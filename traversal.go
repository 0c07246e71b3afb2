package dictionary

// findPrev returns the last node whose key orders before key, or nil when
// key belongs at the head.
func (l *List[K, V]) findPrev(key K) *listEntry[K, V] {
	var prev *listEntry[K, V]
	for curr := l.head; curr != nil && l.cmp(curr.key, key) < 0; curr = curr.next {
		prev = curr
	}
	return prev
}

// find returns the node holding key together with its predecessor. The scan
// stops at the first larger key since the list is sorted.
func (l *List[K, V]) find(key K) (prev, n *listEntry[K, V]) {
	prev = l.findPrev(key)
	if prev == nil {
		n = l.head
	} else {
		n = prev.next
	}
	if n == nil || l.cmp(n.key, key) != 0 {
		return prev, nil
	}
	return prev, n
}
