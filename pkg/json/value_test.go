package json

import "testing"

func TestNewObjectSetFindRemove(t *testing.T) {
	obj := NewObject()
	defer obj.Release()

	if err := obj.Set("name", NewString("Alice")); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := obj.Set("age", NewInt(30)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if obj.Len() != 2 {
		t.Fatalf("expected 2 members, got %d", obj.Len())
	}

	val, ok := obj.Find("name")
	if !ok {
		t.Fatal("expected to find 'name'")
	}
	s, ok := val.StringValue()
	if !ok || s != "Alice" {
		t.Fatalf("expected 'Alice', got %q (ok=%v)", s, ok)
	}

	if !obj.Remove("age") {
		t.Fatal("expected Remove to report true")
	}
	if obj.Len() != 1 {
		t.Fatalf("expected 1 member after remove, got %d", obj.Len())
	}
	if _, ok := obj.Find("age"); ok {
		t.Fatal("expected 'age' to be gone")
	}
}

func TestSetReplacesExistingMember(t *testing.T) {
	obj := NewObject()
	defer obj.Release()

	_ = obj.Set("k", NewInt(1))
	_ = obj.Set("k", NewInt(2))

	if obj.Len() != 1 {
		t.Fatalf("expected replace not to grow the object, got size %d", obj.Len())
	}
	v, _ := obj.Find("k")
	i, _ := v.Int()
	if i != 2 {
		t.Fatalf("expected replaced value 2, got %d", i)
	}
}

func TestArrayAppendAndAt(t *testing.T) {
	arr := NewArray()
	defer arr.Release()

	for i := int64(0); i < 5; i++ {
		if err := arr.Append(NewInt(i)); err != nil {
			t.Fatalf("Append returned error: %v", err)
		}
	}
	if arr.Len() != 5 {
		t.Fatalf("expected 5 elements, got %d", arr.Len())
	}
	v, ok := arr.At(3)
	if !ok {
		t.Fatal("expected element at index 3")
	}
	i, _ := v.Int()
	if i != 3 {
		t.Fatalf("expected 3, got %d", i)
	}
	if _, ok := arr.At(5); ok {
		t.Fatal("expected out-of-range At to fail")
	}
}

func TestRefcountLifecycle(t *testing.T) {
	v := NewString("x")
	if got := v.refCount(); got != 1 {
		t.Fatalf("expected refcount 1 after construction, got %d", got)
	}
	v.Acquire()
	if got := v.refCount(); got != 2 {
		t.Fatalf("expected refcount 2 after Acquire, got %d", got)
	}
	v.Release()
	if got := v.refCount(); got != 1 {
		t.Fatalf("expected refcount 1 after one Release, got %d", got)
	}
	v.Release()
}

func TestObjectOwnsAndReleasesChildren(t *testing.T) {
	child := NewString("hello")
	obj := NewObject()
	if err := obj.Set("k", child); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	// obj now owns the only strong reference to child.
	obj.Release()
	// No direct way to observe the freed node's memory, but this must
	// not panic or race under the race detector.
}

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		name  string
		value *Value
		empty bool
	}{
		{"null", NewNull(), true},
		{"empty string", NewString(""), true},
		{"non-empty string", NewString("x"), false},
		{"empty object", NewObject(), true},
		{"empty array", NewArray(), true},
		{"zero int is not empty", NewInt(0), false},
		{"false is not empty", NewBool(false), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer tc.value.Release()
			if got := tc.value.isEmpty(); got != tc.empty {
				t.Errorf("isEmpty() = %v, want %v", got, tc.empty)
			}
		})
	}
}

func TestValuesEqual(t *testing.T) {
	a, err := Parse([]byte(`{"x":1,"y":["a","b"]}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	defer a.Release()
	b, err := Parse([]byte(`{"x":1,"y":["a","b"]}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	defer b.Release()
	c, err := Parse([]byte(`{"x":1,"y":["a","c"]}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	defer c.Release()

	if !valuesEqual(a, b) {
		t.Error("expected structurally identical trees to compare equal")
	}
	if valuesEqual(a, c) {
		t.Error("expected structurally different trees to compare unequal")
	}
	null, boolVal := NewNull(), NewBool(false)
	defer null.Release()
	defer boolVal.Release()
	if valuesEqual(null, boolVal) {
		t.Error("expected differing kinds to compare unequal")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindNull:   "null",
		KindBool:   "bool",
		KindNumber: "number",
		KindString: "string",
		KindArray:  "array",
		KindObject: "object",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
	if got := Kind(-1).String(); got != "<unknown>" {
		t.Errorf("unknown Kind.String() = %q", got)
	}
}
