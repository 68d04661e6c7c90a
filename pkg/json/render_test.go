package json

import "testing"

func TestRenderCompact(t *testing.T) {
	obj := NewObject()
	defer obj.Release()
	_ = obj.Set("a", NewInt(1))
	arr := NewArray()
	_ = arr.Append(NewString("x"))
	_ = arr.Append(NewBool(false))
	_ = obj.Set("b", arr)

	out, err := Render(obj)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	want := `{"a":1,"b":["x",false]}`
	if string(out) != want {
		t.Fatalf("Render() = %s, want %s", out, want)
	}
}

func TestSerializeOverflow(t *testing.T) {
	v := NewString("hello")
	defer v.Release()

	dst := make([]byte, 3)
	if _, err := Serialize(v, dst); err != ErrOverflow {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestSerializeExactFit(t *testing.T) {
	v := NewInt(42)
	defer v.Release()

	dst := make([]byte, 2)
	n, err := Serialize(v, dst)
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}
	if string(dst[:n]) != "42" {
		t.Fatalf("Serialize wrote %q, want \"42\"", dst[:n])
	}
}

func TestRenderEscapesControlCharsAndQuotes(t *testing.T) {
	v := NewString("line\nbreak\t\"quoted\"\\backslash")
	defer v.Release()

	out, err := Render(v)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	want := `"line\nbreak\t\"quoted\"\\backslash"`
	if string(out) != want {
		t.Fatalf("Render() = %s, want %s", out, want)
	}
}

func TestRenderDoesNotEscapeSolidus(t *testing.T) {
	v := NewString("a/b/c")
	defer v.Release()

	out, err := Render(v)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if string(out) != `"a/b/c"` {
		t.Fatalf("Render() = %s, want \"a/b/c\"", out)
	}
}

func TestRenderNegativeIntegerSignFromInt(t *testing.T) {
	v := NewInt(-5)
	defer v.Release()
	out, err := Render(v)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if string(out) != "-5" {
		t.Fatalf("Render() = %s, want -5", out)
	}
}

func TestRenderNonIntegerNumber(t *testing.T) {
	cases := []struct {
		intPart    int64
		frac       uint32
		fracDigits uint8
		want       string
	}{
		{1, 70, 3, "1.070"},
		{1, 7, 1, "1.7"},
		{0, 5, 1, "0.5"},
	}
	for _, tc := range cases {
		v := NewNumber(tc.intPart, tc.frac, tc.fracDigits)
		out, err := Render(v)
		v.Release()
		if err != nil {
			t.Fatalf("Render returned error: %v", err)
		}
		if string(out) != tc.want {
			t.Errorf("Render(%d,%d,%d) = %s, want %s", tc.intPart, tc.frac, tc.fracDigits, out, tc.want)
		}
	}
}

func TestRenderNegativeFractionalZeroIntPart(t *testing.T) {
	v, _ := newValue(KindNumber, nil)
	v.num = Number{Int: 0, Frac: 5, FracDigits: 1, Neg: true, IsInt: false}
	defer v.Release()

	out, err := Render(v)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if string(out) != "-0.5" {
		t.Fatalf("Render() = %s, want -0.5", out)
	}
}

func TestRenderNullValue(t *testing.T) {
	v := NewNull()
	defer v.Release()
	out, err := Render(v)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if string(out) != "null" {
		t.Fatalf("Render() = %s, want null", out)
	}
}
