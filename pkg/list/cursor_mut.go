package list

// CursorMut is a position in a List that can also change it.
// While a CursorMut is in use it must be the only handle modifying the list.
type CursorMut[T any] struct {
	pos position[T]
}

func (c *CursorMut[T]) MoveNext() {
	c.pos.moveNext()
}

func (c *CursorMut[T]) MovePrev() {
	c.pos.movePrev()
}

// Current returns a pointer to the value under the cursor, or nil if the
// cursor is at Start or End. The pointer is valid until the element is removed.
func (c *CursorMut[T]) Current() *T {
	c.pos.check()
	if c.pos.kind != At {
		return nil
	}
	return &c.pos.e.value
}

// Position reports where the cursor stands.
func (c *CursorMut[T]) Position() Position {
	return c.pos.kind
}

// Remove removes the element under the cursor and returns it. The cursor
// moves to the following element, or to End if there is none.
// ok is false, and nothing happens, if the cursor is at Start or End.
func (c *CursorMut[T]) Remove() (v T, ok bool) {
	c.pos.check()
	if c.pos.kind != At {
		return
	}

	e := c.pos.e
	c.pos.set(e.next, End)
	v = c.pos.l.unlink(e)
	c.pos.sync()
	return v, true
}

// InsertAfter inserts v after the element under the cursor. At Start it
// pushes v to the front, at End to the back. The cursor does not move.
func (c *CursorMut[T]) InsertAfter(v T) {
	c.pos.check()
	l := c.pos.l
	switch c.pos.kind {
	case Start:
		l.PushFront(v)
	case End:
		l.PushBack(v)
	default:
		l.insertAfter(c.pos.e, v)
	}
	c.pos.sync()
}

// InsertBefore inserts v before the element under the cursor. At Start it
// pushes v to the front, at End to the back. The cursor does not move.
func (c *CursorMut[T]) InsertBefore(v T) {
	c.pos.check()
	l := c.pos.l
	switch c.pos.kind {
	case Start:
		l.PushFront(v)
	case End:
		l.PushBack(v)
	default:
		l.insertBefore(c.pos.e, v)
	}
	c.pos.sync()
}

// AsCursor returns a read cursor at the same position. It becomes stale
// as soon as c modifies the list.
func (c *CursorMut[T]) AsCursor() *Cursor[T] {
	c.pos.check()
	return &Cursor[T]{pos: c.pos}
}
