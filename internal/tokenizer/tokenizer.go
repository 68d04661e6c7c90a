// Package tokenizer lexes JSON text into typed tokens, enforcing the
// lexical rules of RFC 8259 byte-by-byte. It performs no allocation
// beyond the Token values it returns and retains slices into the
// caller's input rather than copying, so the recursive parser above it
// is responsible for any unescaping and for accounting allocations
// against a memory budget.
//
// The scanning routines below are grounded in the retrieved reference
// corpus's byte-cursor scanning style (see internal/fastparser's
// parseString/parseNumber/skipWhitespace in the teacher repository),
// adapted to report token boundaries instead of immediately decoding
// values.
package tokenizer

import "fmt"

// Kind identifies a lexical token.
type Kind int

const (
	LBrace Kind = iota
	RBrace
	LBracket
	RBracket
	Colon
	Comma
	String
	Number
	True
	False
	Null
	EOF
)

var kindNames = map[Kind]string{
	LBrace: "{", RBrace: "}", LBracket: "[", RBracket: "]",
	Colon: ":", Comma: ",", String: "string", Number: "number",
	True: "true", False: "false", Null: "null", EOF: "EOF",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "<unknown token>"
}

// Token is a single lexed token. For String and Number, Text holds the
// token's content bounds as described below; for all other kinds Text
// is nil.
//
// For String tokens, Text is the bytes *between* the quotes (still
// containing any escape sequences) — the quotes themselves are
// consumed but not included. For Number tokens, Text is the full
// numeric literal exactly as it appeared in the input.
type Token struct {
	Kind Kind
	Text []byte
	// Pos is the byte offset of the first byte of the token in the
	// original input, used only for error reporting.
	Pos int
}

// Scanner lexes a byte slice into tokens on demand.
type Scanner struct {
	data []byte
	pos  int
}

// New returns a Scanner over data. The Scanner does not copy data.
func New(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Pos reports the scanner's current byte offset.
func (s *Scanner) Pos() int { return s.pos }

// AtEnd reports whether the scanner has consumed all input (ignoring
// any trailing whitespace).
func (s *Scanner) AtEnd() bool {
	s.skipWhitespace()
	return s.pos >= len(s.data)
}

// Next lexes and returns the next token, advancing past it and any
// leading whitespace. Returns a Kind EOF token (not an error) when
// input is exhausted.
func (s *Scanner) Next() (Token, error) {
	s.skipWhitespace()
	if s.pos >= len(s.data) {
		return Token{Kind: EOF, Pos: s.pos}, nil
	}

	start := s.pos
	c := s.data[s.pos]
	switch c {
	case '{':
		s.pos++
		return Token{Kind: LBrace, Pos: start}, nil
	case '}':
		s.pos++
		return Token{Kind: RBrace, Pos: start}, nil
	case '[':
		s.pos++
		return Token{Kind: LBracket, Pos: start}, nil
	case ']':
		s.pos++
		return Token{Kind: RBracket, Pos: start}, nil
	case ':':
		s.pos++
		return Token{Kind: Colon, Pos: start}, nil
	case ',':
		s.pos++
		return Token{Kind: Comma, Pos: start}, nil
	case '"':
		return s.lexString()
	case 't':
		return s.lexLiteral("true", True, start)
	case 'f':
		return s.lexLiteral("false", False, start)
	case 'n':
		return s.lexLiteral("null", Null, start)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return s.lexNumber(start)
	default:
		return Token{}, fmt.Errorf("unexpected byte %q at position %d", c, start)
	}
}

func (s *Scanner) skipWhitespace() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *Scanner) lexLiteral(word string, kind Kind, start int) (Token, error) {
	end := start + len(word)
	if end > len(s.data) || string(s.data[start:end]) != word {
		return Token{}, fmt.Errorf("invalid literal at position %d, expected %q", start, word)
	}
	s.pos = end
	return Token{Kind: kind, Pos: start}, nil
}

// lexString scans a string token. The opening quote must be at the
// current position. It validates escapes and rejects raw control bytes
// but does not unescape; the content bounds (between the quotes) are
// returned verbatim for the parser to unescape under budget.
func (s *Scanner) lexString() (Token, error) {
	start := s.pos
	s.pos++ // consume opening quote
	contentStart := s.pos
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		switch {
		case c == '"':
			text := s.data[contentStart:s.pos]
			s.pos++
			return Token{Kind: String, Text: text, Pos: start}, nil
		case c == '\\':
			s.pos++
			if s.pos >= len(s.data) {
				return Token{}, fmt.Errorf("unterminated escape at position %d", s.pos)
			}
			esc := s.data[s.pos]
			switch esc {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				s.pos++
			case 'u':
				s.pos++
				if s.pos+4 > len(s.data) {
					return Token{}, fmt.Errorf("incomplete \\u escape at position %d", s.pos)
				}
				for i := 0; i < 4; i++ {
					if !isHexDigit(s.data[s.pos+i]) {
						return Token{}, fmt.Errorf("invalid \\u escape at position %d", s.pos)
					}
				}
				s.pos += 4
			default:
				return Token{}, fmt.Errorf("invalid escape '\\%c' at position %d", esc, s.pos)
			}
		case c < 0x20:
			return Token{}, fmt.Errorf("invalid control byte 0x%02x in string at position %d", c, s.pos)
		default:
			s.pos++
		}
	}
	return Token{}, fmt.Errorf("unterminated string starting at position %d", start)
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// lexNumber scans a number token per the strict RFC 8259 grammar:
// optional '-'; integer part ('0' alone, or [1-9] digit*); optional
// '.' digit+; optional [eE] [+-]? digit+.
func (s *Scanner) lexNumber(start int) (Token, error) {
	if s.data[s.pos] == '-' {
		s.pos++
	}
	if s.pos >= len(s.data) || !isDigit(s.data[s.pos]) {
		return Token{}, fmt.Errorf("invalid number at position %d", start)
	}
	if s.data[s.pos] == '0' {
		s.pos++
	} else {
		for s.pos < len(s.data) && isDigit(s.data[s.pos]) {
			s.pos++
		}
	}

	if s.pos < len(s.data) && s.data[s.pos] == '.' {
		s.pos++
		if s.pos >= len(s.data) || !isDigit(s.data[s.pos]) {
			return Token{}, fmt.Errorf("invalid number at position %d: expected digit after '.'", s.pos)
		}
		for s.pos < len(s.data) && isDigit(s.data[s.pos]) {
			s.pos++
		}
	}

	if s.pos < len(s.data) && (s.data[s.pos] == 'e' || s.data[s.pos] == 'E') {
		s.pos++
		if s.pos < len(s.data) && (s.data[s.pos] == '+' || s.data[s.pos] == '-') {
			s.pos++
		}
		if s.pos >= len(s.data) || !isDigit(s.data[s.pos]) {
			return Token{}, fmt.Errorf("invalid number at position %d: expected digit in exponent", s.pos)
		}
		for s.pos < len(s.data) && isDigit(s.data[s.pos]) {
			s.pos++
		}
	}

	return Token{Kind: Number, Text: s.data[start:s.pos], Pos: start}, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
