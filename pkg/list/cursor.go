package list

// Position is where a cursor stands.
type Position int8

const (
	// Start is the virtual slot before the first element.
	Start Position = iota
	// End is the virtual slot after the last element.
	End
	// At means the cursor is on an element.
	At
)

func (p Position) String() string {
	switch p {
	case Start:
		return "start"
	case End:
		return "end"
	case At:
		return "at"
	default:
		return "invalid"
	}
}

// position is the state machine shared by Cursor and CursorMut.
// e is non-nil iff kind is At.
type position[T any] struct {
	l    *List[T]
	kind Position
	e    *node[T]
	gen  uint64
}

// positionAt returns a position on e, or on the sentinel if e is nil.
func (l *List[T]) positionAt(e *node[T], sentinel Position) position[T] {
	p := position[T]{l: l, gen: l.gen}
	p.set(e, sentinel)
	return p
}

func (p *position[T]) set(e *node[T], sentinel Position) {
	if e == nil {
		p.kind = sentinel
		p.e = nil
		return
	}
	p.kind = At
	p.e = e
}

func (p *position[T]) check() {
	if p.gen != p.l.gen {
		panic(ErrStaleCursor)
	}
}

// sync adopts the list's current generation after the owner of p
// changed the list itself.
func (p *position[T]) sync() {
	p.gen = p.l.gen
}

func (p *position[T]) moveNext() {
	p.check()
	switch p.kind {
	case Start:
		p.set(p.l.front, End)
	case At:
		p.set(p.e.next, End)
	}
}

func (p *position[T]) movePrev() {
	p.check()
	switch p.kind {
	case End:
		p.set(p.l.back, Start)
	case At:
		p.set(p.e.prev, Start)
	}
}

// Cursor is a read-only position in a List.
type Cursor[T any] struct {
	pos position[T]
}

// MoveNext steps towards the back. From Start it enters the first element,
// from the last element it goes to End. End stays End.
func (c *Cursor[T]) MoveNext() {
	c.pos.moveNext()
}

// MovePrev steps towards the front. From End it enters the last element,
// from the first element it goes to Start. Start stays Start.
func (c *Cursor[T]) MovePrev() {
	c.pos.movePrev()
}

// Current returns the value under the cursor.
// ok is false if the cursor is at Start or End.
func (c *Cursor[T]) Current() (v T, ok bool) {
	c.pos.check()
	if c.pos.kind != At {
		return
	}
	return c.pos.e.value, true
}

// Next advances the cursor and returns the value it lands on. Once the
// cursor reaches End, Next keeps returning false.
func (c *Cursor[T]) Next() (v T, ok bool) {
	c.MoveNext()
	return c.Current()
}

// Position reports where the cursor stands.
func (c *Cursor[T]) Position() Position {
	return c.pos.kind
}
