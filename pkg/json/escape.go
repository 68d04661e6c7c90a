package json

// escapeTable maps ASCII bytes to their JSON escape character.
// 0 means no escape needed. Non-zero is the byte to write after backslash.
//
// Unlike a general-purpose encoder, this table does not escape '/':
// the specification calls for escaping exactly '"', '\\', and the five
// named control escapes (\b \f \n \r \t), leaving every other byte —
// including '/' — untouched on output. The backslash of a preserved
// literal \uXXXX sequence is escaped like any other backslash.
var escapeTable [256]byte

const hexDigits = "0123456789abcdef"

func init() {
	escapeTable['"'] = '"'
	escapeTable['\\'] = '\\'
	escapeTable['\b'] = 'b'
	escapeTable['\f'] = 'f'
	escapeTable['\n'] = 'n'
	escapeTable['\r'] = 'r'
	escapeTable['\t'] = 't'
}

// needsEscape reports whether byte c must be escaped on output.
func needsEscape(c byte) bool {
	return c == '"' || c == '\\' || escapeTable[c] != 0
}

// appendEscapedString appends a JSON-escaped string to buf (without
// surrounding quotes). It writes directly to the provided buffer.
func appendEscapedString(buf []byte, s string) []byte {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !needsEscape(c) {
			continue
		}

		// Flush unescaped run
		buf = append(buf, s[start:i]...)

		if esc := escapeTable[c]; esc != 0 {
			buf = append(buf, '\\', esc)
		} else {
			buf = append(buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0x0F])
		}
		start = i + 1
	}
	// Flush remaining
	buf = append(buf, s[start:]...)
	return buf
}
