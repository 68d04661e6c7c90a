package json

import (
	"bytes"
	"strconv"
	"sync"
)

// bufPool pools the scratch buffers Serialize and Render build into
// before copying out a final result, mirroring the teacher corpus's
// getBuffer/putBuffer convention (see marshal.go's bufferPool in the
// reference corpus): a render always happens into an owned, growable
// buffer first, so a caller-supplied destination is either filled
// completely or not touched at all — never left holding a partial
// token.
var bufPool = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, 256)) },
}

func getBuf() *bytes.Buffer {
	b := bufPool.Get().(*bytes.Buffer)
	b.Reset()
	return b
}

func putBuf(b *bytes.Buffer) {
	if b.Cap() <= 64*1024 {
		bufPool.Put(b)
	}
}

// Serialize renders v as compact JSON into dst and returns the number
// of bytes written. It fails with ErrOverflow (and writes nothing) if
// the rendered result does not fit in dst; the specification forbids
// ever truncating a render mid-token, so Serialize renders to an
// internal scratch buffer first and only copies out a result that
// fits whole.
func Serialize(v *Value, dst []byte) (int, error) {
	buf := getBuf()
	defer putBuf(buf)

	if err := renderValue(v, buf); err != nil {
		return 0, err
	}
	if buf.Len() > len(dst) {
		return 0, ErrOverflow
	}
	return copy(dst, buf.Bytes()), nil
}

// Render renders v as compact JSON and returns a freshly allocated
// byte slice holding the result.
func Render(v *Value) ([]byte, error) {
	buf := getBuf()
	defer putBuf(buf)

	if err := renderValue(v, buf); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

func renderValue(v *Value, buf *bytes.Buffer) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.boolVal {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		renderNumber(v.num, buf)
	case KindString:
		renderString(v.str, buf)
	case KindArray:
		buf.WriteByte('[')
		first := true
		var err error
		v.ForEachElement(func(_ int, el *Value) bool {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			err = renderValue(el, buf)
			return err == nil
		})
		if err != nil {
			return err
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		first := true
		var err error
		v.ForEachMember(func(key string, val *Value) bool {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			renderString([]byte(key), buf)
			buf.WriteByte(':')
			err = renderValue(val, buf)
			return err == nil
		})
		if err != nil {
			return err
		}
		buf.WriteByte('}')
	default:
		return wrapf(ErrType, "unknown value kind %v", v.kind)
	}
	return nil
}

func renderString(s []byte, buf *bytes.Buffer) {
	buf.WriteByte('"')
	buf.Write(appendEscapedString(make([]byte, 0, len(s)), string(s)))
	buf.WriteByte('"')
}

// renderNumber writes the split integer/fraction representation back
// to its compact decimal form. For an integer Number, the sign comes
// solely from Int's own value — the Neg flag is informational only and
// is never consulted, closing the "double negation" hazard called out
// in the specification's design notes. For a non-integer Number, Neg
// is consulted only to cover the one case Int cannot represent on its
// own: a value whose integer part is exactly zero but was lexed with a
// leading '-' (e.g. "-0.5").
func renderNumber(n Number, buf *bytes.Buffer) {
	if n.IsInt {
		buf.Write(strconv.AppendInt(nil, n.Int, 10))
		return
	}

	neg := n.Int < 0 || (n.Int == 0 && n.Neg)
	mag := n.Int
	if mag < 0 {
		mag = -mag
	}
	if neg {
		buf.WriteByte('-')
	}
	buf.Write(strconv.AppendInt(nil, mag, 10))
	buf.WriteByte('.')

	frac := strconv.FormatUint(uint64(n.Frac), 10)
	for i := len(frac); i < int(n.FracDigits); i++ {
		buf.WriteByte('0')
	}
	buf.WriteString(frac)
}
