package tokenizer

import "testing"

func TestScannerStructuralTokens(t *testing.T) {
	s := New([]byte(`{ } [ ] : , `))
	want := []Kind{LBrace, RBrace, LBracket, RBracket, Colon, Comma, EOF}
	for i, k := range want {
		tok, err := s.Next()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if tok.Kind != k {
			t.Fatalf("token %d: got %v, want %v", i, tok.Kind, k)
		}
	}
}

func TestScannerLiterals(t *testing.T) {
	s := New([]byte(`true false null`))
	for _, k := range []Kind{True, False, Null} {
		tok, err := s.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind != k {
			t.Fatalf("got %v, want %v", tok.Kind, k)
		}
	}
}

func TestScannerRejectsMalformedLiteral(t *testing.T) {
	s := New([]byte(`tru`))
	if _, err := s.Next(); err == nil {
		t.Fatal("expected error for truncated literal")
	}
}

func TestScannerString(t *testing.T) {
	s := New([]byte(`"hello\nworld"`))
	tok, err := s.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != String {
		t.Fatalf("got %v, want String", tok.Kind)
	}
	if string(tok.Text) != `hello\nworld` {
		t.Fatalf("got %q, want %q (content between quotes, escapes not resolved)", tok.Text, `hello\nworld`)
	}
}

func TestScannerRejectsRawControlByteInString(t *testing.T) {
	s := New([]byte("\"a\tb\""))
	if _, err := s.Next(); err == nil {
		t.Fatal("expected error for raw control byte in string")
	}
}

func TestScannerRejectsUnterminatedString(t *testing.T) {
	s := New([]byte(`"abc`))
	if _, err := s.Next(); err == nil {
		t.Fatal("expected error for unterminated string")
	}
}

func TestScannerRejectsIncompleteUnicodeEscape(t *testing.T) {
	cases := []string{`"\u12"`, `"\u12zz"`, `"\u"`}
	for _, src := range cases {
		s := New([]byte(src))
		if _, err := s.Next(); err == nil {
			t.Errorf("Next() on %q: expected error", src)
		}
	}
}

func TestScannerRejectsInvalidEscape(t *testing.T) {
	s := New([]byte(`"\x"`))
	if _, err := s.Next(); err == nil {
		t.Fatal("expected error for invalid escape sequence")
	}
}

func TestScannerNumbers(t *testing.T) {
	cases := []string{"0", "-0", "42", "-17", "3.14", "1e10", "1.5E-3", "0.0"}
	for _, src := range cases {
		s := New([]byte(src))
		tok, err := s.Next()
		if err != nil {
			t.Errorf("Next() on %q: unexpected error: %v", src, err)
			continue
		}
		if tok.Kind != Number {
			t.Errorf("Next() on %q: got %v, want Number", src, tok.Kind)
		}
		if string(tok.Text) != src {
			t.Errorf("Next() on %q: Text = %q", src, tok.Text)
		}
	}
}

func TestScannerRejectsMalformedNumbers(t *testing.T) {
	cases := []string{"-", "1.", ".5", "1e", "--1"}
	for _, src := range cases {
		s := New([]byte(src))
		if _, err := s.Next(); err == nil {
			t.Errorf("Next() on %q: expected error", src)
		}
	}
}

func TestScannerAtEndSkipsTrailingWhitespace(t *testing.T) {
	s := New([]byte(`1   `))
	if _, err := s.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.AtEnd() {
		t.Fatal("expected AtEnd to report true past trailing whitespace")
	}
}

func TestScannerRejectsUnexpectedByte(t *testing.T) {
	s := New([]byte(`?`))
	if _, err := s.Next(); err == nil {
		t.Fatal("expected error for unexpected byte")
	}
}

func TestKindString(t *testing.T) {
	if LBrace.String() != "{" {
		t.Errorf("LBrace.String() = %q", LBrace.String())
	}
	if Kind(999).String() != "<unknown token>" {
		t.Errorf("unknown Kind.String() = %q", Kind(999).String())
	}
}
