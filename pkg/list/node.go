package list

type node[T any] struct {
	value      T
	next, prev *node[T]
}

func newNode[T any](v T, prev, next *node[T]) *node[T] {
	return &node[T]{value: v, prev: prev, next: next}
}

// release drops everything n points to. n must already be unlinked.
func (n *node[T]) release() T {
	v := n.value
	var zero T
	n.value = zero
	n.next = nil
	n.prev = nil
	return v
}
