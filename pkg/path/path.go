// Package path implements dot-separated key descent over Object trees:
// Get for read-only lookup, Set for mutation with intermediate-object
// creation. Paths are ASCII, dot-separated component sequences (e.g.
// "user.profile.name"); there is no array indexing and no escape for a
// literal '.' within a component — a component may not contain '.'.
//
// This is a deliberately reduced sibling of a full JSONPath query
// engine: it is grounded in the public Expr/ParseString/Get shape of
// the reference corpus's pkg/jsonpath (an RFC 9535 engine supporting
// wildcards, slices, and recursive descent), but scoped down to the
// dot-child-only subset the specification calls for, operating
// directly on *json.Value object trees rather than generic
// interface{} data.
package path

import (
	"errors"
	"strings"

	"github.com/shapestone/kjson/pkg/json"
)

// ErrInvalidPath is returned for a malformed path: empty, too long, or
// containing an empty component (a leading, trailing, or doubled '.').
var ErrInvalidPath = errors.New("path: invalid path")

// maxPathLen mirrors the specification's "max path buffer" configuration
// constant (json.DefaultLimits.MaxPathBuffer): a dot-path longer than
// this many bytes is rejected outright rather than walked.
var maxPathLen = json.DefaultLimits.MaxPathBuffer

// Get descends from root (which must be an Object) along path's
// dot-separated components. It fails (returns nil, false) if any
// non-terminal hop is absent or is not an Object, or if the terminal
// component is absent. The terminal value, of any Kind, is returned on
// success without transferring a new strong reference.
func Get(root *json.Value, p string) (*json.Value, bool) {
	components, ok := split(p)
	if !ok {
		return nil, false
	}

	cur := root
	for i, comp := range components {
		if cur.Kind() != json.KindObject {
			return nil, false
		}
		val, found := cur.Find(comp)
		if !found {
			return nil, false
		}
		if i == len(components)-1 {
			return val, true
		}
		cur = val
	}
	return nil, false
}

// Set descends from root (which must be an Object) along path's
// dot-separated components, creating empty intermediate Objects for
// missing non-terminal components. If an existing non-terminal member
// is not an Object, it is replaced with a fresh empty Object (its
// previous value released). At the terminal component, an existing
// member's value is replaced (previous released); otherwise a new
// member is appended. The value written is a deep copy of value, so
// the caller retains an independent reference to its own argument.
func Set(root *json.Value, p string, value *json.Value) error {
	components, ok := split(p)
	if !ok {
		return ErrInvalidPath
	}
	if root.Kind() != json.KindObject {
		return json.ErrType
	}

	cur := root
	for i, comp := range components {
		last := i == len(components)-1
		if last {
			copied, err := json.DeepCopy(value)
			if err != nil {
				return err
			}
			if err := cur.Set(comp, copied); err != nil {
				copied.Release()
				return err
			}
			return nil
		}

		next, found := cur.Find(comp)
		if !found || next.Kind() != json.KindObject {
			fresh := json.NewObject()
			if err := cur.Set(comp, fresh); err != nil {
				fresh.Release()
				return err
			}
			cur = fresh
			continue
		}
		cur = next
	}
	return nil
}

// split breaks p into its dot-separated components, rejecting an empty
// path or any empty component.
func split(p string) ([]string, bool) {
	if p == "" || len(p) > maxPathLen {
		return nil, false
	}
	parts := strings.Split(p, ".")
	for _, c := range parts {
		if c == "" {
			return nil, false
		}
	}
	return parts, true
}
