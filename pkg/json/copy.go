package json

// maxCopyDepth bounds deep-copy recursion independently of any parse's
// Limits, since a copy may be requested on a tree assembled
// programmatically (no associated budget or depth history).
const maxCopyDepth = 32

// DeepCopy produces an independent tree with the same shape and leaf
// content as v. The copy's root has refcount 1; every descendant is
// freshly allocated rather than shared via a refcount bump, so
// mutating the copy never affects v and vice versa.
//
// Grounded in the recursive-traversal idiom of the reference corpus's
// NodeToInterface/InterfaceToNode (see convert.go in the teacher
// repository), but resolving the specification's third open question:
// on any allocation failure mid-traversal the partial copy is released
// and DeepCopy returns (nil, ErrMemory) rather than handing back a
// partially built tree.
func DeepCopy(v *Value) (*Value, error) {
	return deepCopy(v, 0)
}

func deepCopy(v *Value, depth int) (*Value, error) {
	if v == nil {
		return nil, nil
	}
	if depth > maxCopyDepth {
		return nil, wrapf(ErrDepth, "deep copy depth exceeds limit %d", maxCopyDepth)
	}

	switch v.kind {
	case KindNull:
		return NewNull(), nil
	case KindBool:
		return NewBool(v.boolVal), nil
	case KindNumber:
		out := NewInt(0)
		out.num = v.num
		return out, nil
	case KindString:
		return NewString(string(v.str)), nil
	case KindArray:
		out := NewArray()
		var err error
		v.ForEachElement(func(_ int, el *Value) bool {
			var copied *Value
			copied, err = deepCopy(el, depth+1)
			if err != nil {
				return false
			}
			err = out.Append(copied)
			return err == nil
		})
		if err != nil {
			out.Release()
			return nil, err
		}
		return out, nil
	case KindObject:
		out := NewObject()
		var err error
		v.ForEachMember(func(key string, val *Value) bool {
			var copied *Value
			copied, err = deepCopy(val, depth+1)
			if err != nil {
				return false
			}
			err = out.Set(key, copied)
			return err == nil
		})
		if err != nil {
			out.Release()
			return nil, err
		}
		return out, nil
	default:
		return nil, wrapf(ErrType, "unknown value kind %v", v.kind)
	}
}
