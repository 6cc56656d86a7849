// Package list implements a generic doubly linked list that is traversed and
// edited through cursors.
//
// A List is not safe for concurrent use. Any number of read cursors may be
// used at the same time, but only while nothing modifies the list. A mutating
// cursor must be the only handle that changes the list while it is in use.
// Breaking this rule is detected: a cursor used after someone else changed
// the list structure panics with ErrStaleCursor.
package list

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	// ErrCorrupted is wrapped by every error returned from List.Verify.
	ErrCorrupted = errors.New("list is corrupted")

	// ErrStaleCursor is the panic value of a cursor used after the list
	// was structurally modified by another handle.
	ErrStaleCursor = errors.New("cursor used after the list was modified")
)

// List is a doubly linked list. The zero value is an empty list ready to use.
// A List must not be copied after first use, use Clone instead.
type List[T any] struct {
	front, back *node[T]
	length      int

	// gen is bumped on every structural change.
	gen uint64
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	return l.length
}

// PushFront inserts v at the front of l.
func (l *List[T]) PushFront(v T) {
	e := newNode(v, nil, l.front)
	if l.front == nil {
		l.back = e
	} else {
		l.front.prev = e
	}
	l.front = e
	l.length++
	l.gen++
}

// PushBack inserts v at the back of l.
func (l *List[T]) PushBack(v T) {
	e := newNode(v, l.back, nil)
	if l.back == nil {
		l.front = e
	} else {
		l.back.next = e
	}
	l.back = e
	l.length++
	l.gen++
}

// PopFront removes the first element and returns it.
// ok is false if the list is empty.
func (l *List[T]) PopFront() (v T, ok bool) {
	e := l.front
	if e == nil {
		return
	}

	if n := e.next; n != nil {
		n.prev = nil
		l.front = n
	} else {
		l.front = nil
		l.back = nil
	}
	l.length--
	l.gen++
	return e.release(), true
}

// PopBack removes the last element and returns it.
// ok is false if the list is empty.
func (l *List[T]) PopBack() (v T, ok bool) {
	e := l.back
	if e == nil {
		return
	}

	if p := e.prev; p != nil {
		p.next = nil
		l.back = p
	} else {
		l.front = nil
		l.back = nil
	}
	l.length--
	l.gen++
	return e.release(), true
}

// insertAfter links a new node holding v right after mark.
func (l *List[T]) insertAfter(mark *node[T], v T) {
	e := newNode(v, mark, mark.next)
	if mark.next != nil {
		mark.next.prev = e
	} else {
		l.back = e
	}
	mark.next = e
	l.length++
	l.gen++
}

// insertBefore links a new node holding v right before mark.
func (l *List[T]) insertBefore(mark *node[T], v T) {
	e := newNode(v, mark.prev, mark)
	if mark.prev != nil {
		mark.prev.next = e
	} else {
		l.front = e
	}
	mark.prev = e
	l.length++
	l.gen++
}

// unlink detaches e from the list and releases it.
func (l *List[T]) unlink(e *node[T]) T {
	p, n := e.prev, e.next

	if p != nil {
		p.next = n
	} else {
		l.front = n
	}

	if n != nil {
		n.prev = p
	} else {
		l.back = p
	}

	l.length--
	l.gen++
	return e.release()
}

// Clear removes every element, popping from the back one at a time.
func (l *List[T]) Clear() {
	for {
		if _, ok := l.PopBack(); !ok {
			return
		}
	}
}

// CursorFront returns a read cursor at the first element,
// or at Start if the list is empty.
func (l *List[T]) CursorFront() *Cursor[T] {
	return &Cursor[T]{pos: l.positionAt(l.front, Start)}
}

// CursorBack returns a read cursor at the last element,
// or at End if the list is empty.
func (l *List[T]) CursorBack() *Cursor[T] {
	return &Cursor[T]{pos: l.positionAt(l.back, End)}
}

// CursorFrontMut is like CursorFront but the cursor can modify the list.
func (l *List[T]) CursorFrontMut() *CursorMut[T] {
	return &CursorMut[T]{pos: l.positionAt(l.front, Start)}
}

// CursorBackMut is like CursorBack but the cursor can modify the list.
func (l *List[T]) CursorBackMut() *CursorMut[T] {
	return &CursorMut[T]{pos: l.positionAt(l.back, End)}
}

// Iter returns a read cursor at Start. Each call to Next on it yields
// the following element, front to back.
func (l *List[T]) Iter() *Cursor[T] {
	return &Cursor[T]{pos: l.positionAt(nil, Start)}
}

// All returns an iterator over the values from front to back.
// The list must not be modified while iterating.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := l.Iter()
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values from back to front.
// The list must not be modified while iterating.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := l.CursorBack(); ; c.MovePrev() {
			v, ok := c.Current()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of l. Values are copied by assignment.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for e := l.front; e != nil; e = e.next {
		c.PushBack(e.value)
	}
	return c
}

// Verify walks l in both directions and reports the first broken link
// or length mismatch it finds.
func (l *List[T]) Verify() error {
	if (l.front == nil) != (l.back == nil) {
		return fmt.Errorf("%w: front and back disagree on emptiness", ErrCorrupted)
	}
	if l.front == nil {
		if l.length != 0 {
			return fmt.Errorf("%w: no nodes but length is %d", ErrCorrupted, l.length)
		}
		return nil
	}
	if l.front.prev != nil {
		return fmt.Errorf("%w: front has a previous node", ErrCorrupted)
	}
	if l.back.next != nil {
		return fmt.Errorf("%w: back has a next node", ErrCorrupted)
	}

	n := 0
	var last *node[T]
	for e := l.front; e != nil; e = e.next {
		if e.prev != last {
			return fmt.Errorf("%w: node #%d does not link back to its predecessor", ErrCorrupted, n)
		}
		last = e
		n++
		if n > l.length {
			return fmt.Errorf("%w: forward walk exceeds length %d", ErrCorrupted, l.length)
		}
	}
	if n != l.length {
		return fmt.Errorf("%w: forward walk visits %d nodes, length is %d", ErrCorrupted, n, l.length)
	}
	if last != l.back {
		return fmt.Errorf("%w: forward walk does not end at back", ErrCorrupted)
	}

	n = 0
	for e := l.back; e != nil; e = e.prev {
		n++
		if n > l.length {
			return fmt.Errorf("%w: backward walk exceeds length %d", ErrCorrupted, l.length)
		}
		last = e
	}
	if n != l.length || last != l.front {
		return fmt.Errorf("%w: backward walk visits %d nodes, length is %d", ErrCorrupted, n, l.length)
	}
	return nil
}

func (l *List[T]) String() string {
	sb := new(strings.Builder)
	sb.WriteByte('[')
	for e := l.front; e != nil; e = e.next {
		if e != l.front {
			sb.WriteByte(' ')
		}
		fmt.Fprint(sb, e.value)
	}
	sb.WriteByte(']')
	return sb.String()
}
