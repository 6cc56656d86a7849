package list

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// MarshalLogArray implements zapcore.ArrayMarshaler, so a list can be
// logged with zap.Array.
func (l *List[T]) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	i := 0
	for e := l.front; e != nil; e = e.next {
		if err := enc.AppendReflected(e.value); err != nil {
			return fmt.Errorf("failed to encode element #%d, %w", i, err)
		}
		i++
	}
	return nil
}

func (c *Cursor[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return c.pos.marshalLogObject(enc)
}

func (c *CursorMut[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return c.pos.marshalLogObject(enc)
}

func (p *position[T]) marshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("position", p.kind.String())
	enc.AddInt("len", p.l.length)
	enc.AddBool("stale", p.gen != p.l.gen)
	if p.kind == At && p.gen == p.l.gen {
		if err := enc.AddReflected("value", p.e.value); err != nil {
			return fmt.Errorf("failed to encode value, %w", err)
		}
	}
	return nil
}
