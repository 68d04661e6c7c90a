package json

import (
	"fmt"
	"strconv"

	"github.com/shapestone/kjson/internal/alloc"
	"github.com/shapestone/kjson/internal/tokenizer"
)

// parser drives the scanner, builds the Value tree, and enforces the
// depth, size, and memory caps named by Limits. It is the Go
// realization of the specification's recursive parser component; it is
// deliberately a method set on an unexported type rather than a public
// API so callers only ever see Parse/ParseWithLimits.
type parser struct {
	scan   *tokenizer.Scanner
	limits Limits
	budget *alloc.Budget
	depth  int
}

// Parse parses a complete JSON value from data using DefaultLimits.
func Parse(data []byte) (*Value, error) {
	return ParseWithLimits(data, DefaultLimits)
}

// ParseWithLimits parses a complete JSON value from data, enforcing the
// given Limits instead of the package defaults.
func ParseWithLimits(data []byte, limits Limits) (*Value, error) {
	p := &parser{
		scan:   tokenizer.New(data),
		limits: limits,
		budget: alloc.NewBudget(limits.MaxTotalBytes),
	}
	tok, err := p.scan.Next()
	if err != nil {
		return nil, wrapf(ErrParse, "%v", err)
	}
	v, err := p.parseValue(tok)
	if err != nil {
		return nil, err
	}
	if !p.scan.AtEnd() {
		v.Release()
		return nil, wrapf(ErrParse, "unexpected trailing data")
	}
	return v, nil
}

func (p *parser) parseValue(tok tokenizer.Token) (*Value, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.limits.MaxDepth {
		return nil, wrapf(ErrDepth, "depth %d exceeds limit %d", p.depth, p.limits.MaxDepth)
	}

	switch tok.Kind {
	case tokenizer.LBrace:
		return p.parseObject()
	case tokenizer.LBracket:
		return p.parseArray()
	case tokenizer.String:
		return p.parseString(tok)
	case tokenizer.Number:
		return p.parseNumber(tok)
	case tokenizer.True:
		v, err := newValue(KindBool, p.budget)
		if err != nil {
			return nil, err
		}
		v.boolVal = true
		return v, nil
	case tokenizer.False:
		v, err := newValue(KindBool, p.budget)
		if err != nil {
			return nil, err
		}
		v.boolVal = false
		return v, nil
	case tokenizer.Null:
		return newValue(KindNull, p.budget)
	case tokenizer.EOF:
		return nil, wrapf(ErrParse, "unexpected end of input")
	default:
		return nil, wrapf(ErrParse, "unexpected token %v at position %d", tok.Kind, tok.Pos)
	}
}

func (p *parser) parseObject() (*Value, error) {
	obj, err := newValue(KindObject, p.budget)
	if err != nil {
		return nil, err
	}

	tok, err := p.scan.Next()
	if err != nil {
		obj.Release()
		return nil, wrapf(ErrParse, "%v", err)
	}
	if tok.Kind == tokenizer.RBrace {
		return obj, nil
	}

	for {
		if tok.Kind != tokenizer.String {
			obj.Release()
			return nil, wrapf(ErrParse, "expected string key at position %d", tok.Pos)
		}
		keyRaw := tok.Text
		if len(keyRaw) > p.limits.MaxKeyLen {
			obj.Release()
			return nil, wrapf(ErrLimit, "key length %d exceeds limit %d", len(keyRaw), p.limits.MaxKeyLen)
		}
		key, err := unescapeString(keyRaw)
		if err != nil {
			obj.Release()
			return nil, wrapf(ErrParse, "%v", err)
		}

		colon, err := p.scan.Next()
		if err != nil {
			obj.Release()
			return nil, wrapf(ErrParse, "%v", err)
		}
		if colon.Kind != tokenizer.Colon {
			obj.Release()
			return nil, wrapf(ErrParse, "expected ':' after key at position %d", colon.Pos)
		}

		valTok, err := p.scan.Next()
		if err != nil {
			obj.Release()
			return nil, wrapf(ErrParse, "%v", err)
		}
		val, err := p.parseValue(valTok)
		if err != nil {
			obj.Release()
			return nil, err
		}

		if obj.objSize >= p.limits.MaxObjectMembers {
			val.Release()
			obj.Release()
			return nil, wrapf(ErrLimit, "object member count exceeds limit %d", p.limits.MaxObjectMembers)
		}
		if !p.budget.Debit(len(key)) {
			val.Release()
			obj.Release()
			return nil, ErrMemory
		}
		if err := obj.Set(key, val); err != nil {
			p.budget.Credit(len(key))
			val.Release()
			obj.Release()
			return nil, err
		}

		next, err := p.scan.Next()
		if err != nil {
			obj.Release()
			return nil, wrapf(ErrParse, "%v", err)
		}
		switch next.Kind {
		case tokenizer.RBrace:
			return obj, nil
		case tokenizer.Comma:
			tok, err = p.scan.Next()
			if err != nil {
				obj.Release()
				return nil, wrapf(ErrParse, "%v", err)
			}
		default:
			obj.Release()
			return nil, wrapf(ErrParse, "expected ',' or '}' at position %d", next.Pos)
		}
	}
}

func (p *parser) parseArray() (*Value, error) {
	arr, err := newValue(KindArray, p.budget)
	if err != nil {
		return nil, err
	}

	tok, err := p.scan.Next()
	if err != nil {
		arr.Release()
		return nil, wrapf(ErrParse, "%v", err)
	}
	if tok.Kind == tokenizer.RBracket {
		return arr, nil
	}

	for {
		val, err := p.parseValue(tok)
		if err != nil {
			arr.Release()
			return nil, err
		}
		if arr.arrSize >= p.limits.MaxArrayElements {
			val.Release()
			arr.Release()
			return nil, wrapf(ErrLimit, "array element count exceeds limit %d", p.limits.MaxArrayElements)
		}
		if err := arr.Append(val); err != nil {
			val.Release()
			arr.Release()
			return nil, err
		}

		next, err := p.scan.Next()
		if err != nil {
			arr.Release()
			return nil, wrapf(ErrParse, "%v", err)
		}
		switch next.Kind {
		case tokenizer.RBracket:
			return arr, nil
		case tokenizer.Comma:
			tok, err = p.scan.Next()
			if err != nil {
				arr.Release()
				return nil, wrapf(ErrParse, "%v", err)
			}
		default:
			arr.Release()
			return nil, wrapf(ErrParse, "expected ',' or ']' at position %d", next.Pos)
		}
	}
}

func (p *parser) parseString(tok tokenizer.Token) (*Value, error) {
	if len(tok.Text) > p.limits.MaxStringLen {
		return nil, wrapf(ErrLimit, "string length %d exceeds limit %d", len(tok.Text), p.limits.MaxStringLen)
	}
	s, err := unescapeString(tok.Text)
	if err != nil {
		return nil, wrapf(ErrParse, "%v", err)
	}
	if !p.budget.Debit(len(s)) {
		return nil, ErrMemory
	}
	v, err := newValue(KindString, p.budget)
	if err != nil {
		p.budget.Credit(len(s))
		return nil, err
	}
	v.str = []byte(s)
	return v, nil
}

func (p *parser) parseNumber(tok tokenizer.Token) (*Value, error) {
	num, err := parseNumberLiteral(tok.Text)
	if err != nil {
		return nil, wrapf(ErrParse, "%v", err)
	}
	v, err := newValue(KindNumber, p.budget)
	if err != nil {
		return nil, err
	}
	v.num = num
	return v, nil
}

// unescapeString resolves the eight single-character JSON escapes and
// copies \uXXXX sequences through literally (six bytes: backslash, u,
// four hex digits), per the specification's deliberate non-decoding of
// unicode escapes. Control bytes below 0x20 are never present here
// (the scanner already rejects them), so this function only needs to
// handle the escape grammar.
func unescapeString(raw []byte) (string, error) {
	hasEscape := false
	for _, c := range raw {
		if c == '\\' {
			hasEscape = true
			break
		}
	}
	if !hasEscape {
		return string(raw), nil
	}

	buf := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			buf = append(buf, c)
			continue
		}
		i++
		if i >= len(raw) {
			return "", fmt.Errorf("truncated escape sequence")
		}
		switch raw[i] {
		case '"':
			buf = append(buf, '"')
		case '\\':
			buf = append(buf, '\\')
		case '/':
			buf = append(buf, '/')
		case 'b':
			buf = append(buf, '\b')
		case 'f':
			buf = append(buf, '\f')
		case 'n':
			buf = append(buf, '\n')
		case 'r':
			buf = append(buf, '\r')
		case 't':
			buf = append(buf, '\t')
		case 'u':
			if i+4 >= len(raw) {
				return "", fmt.Errorf("truncated \\u escape sequence")
			}
			buf = append(buf, '\\', 'u', raw[i+1], raw[i+2], raw[i+3], raw[i+4])
			i += 4
		default:
			return "", fmt.Errorf("invalid escape sequence '\\%c'", raw[i])
		}
	}
	return string(buf), nil
}

// parseNumberLiteral scans a validated numeric literal once, producing
// the split integer/fraction representation of the specification: if
// the literal contains '.' or [eE], IsInt is false, the fraction digits
// (up to nine) populate Frac/FracDigits, and any exponent is discarded
// (a documented deviation). Otherwise the whole literal is parsed as a
// signed 64-bit integer with saturation on overflow.
func parseNumberLiteral(lit []byte) (Number, error) {
	s := string(lit)
	neg := len(s) > 0 && s[0] == '-'

	hasFracOrExp := false
	dotIdx := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			hasFracOrExp = true
			dotIdx = i
		} else if s[i] == 'e' || s[i] == 'E' {
			hasFracOrExp = true
			if dotIdx == -1 {
				dotIdx = i
			}
		}
	}

	if !hasFracOrExp {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
				if neg {
					return Number{Int: -1 << 63, IsInt: true, Neg: true}, nil
				}
				return Number{Int: (1 << 63) - 1, IsInt: true, Neg: false}, nil
			}
			return Number{}, fmt.Errorf("invalid integer literal %q: %w", s, err)
		}
		return Number{Int: i, IsInt: true, Neg: i < 0}, nil
	}

	intPartEnd := dotIdx
	if intPartEnd < 0 {
		intPartEnd = len(s)
	}
	intPart, err := strconv.ParseInt(s[:intPartEnd], 10, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			if neg {
				intPart = -1 << 63
			} else {
				intPart = (1 << 63) - 1
			}
		} else {
			return Number{}, fmt.Errorf("invalid number literal %q: %w", s, err)
		}
	}

	var frac uint32
	var fracDigits uint8
	if dotIdx >= 0 && dotIdx < len(s) && s[dotIdx] == '.' {
		j := dotIdx + 1
		start := j
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		digits := s[start:j]
		if len(digits) > 9 {
			digits = digits[:9]
		}
		fracDigits = uint8(len(digits))
		if fracDigits > 0 {
			v, _ := strconv.ParseUint(digits, 10, 32)
			frac = uint32(v)
		}
	}

	return Number{Int: intPart, Frac: frac, FracDigits: fracDigits, Neg: neg, IsInt: false}, nil
}
