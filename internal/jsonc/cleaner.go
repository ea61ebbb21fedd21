package jsonc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Clean normalizes comment-free text into strictly quotable JSON tokens.
// Outside string literals it drops formatting noise (BOM, no-break spaces,
// control characters), collapses whitespace, converts stray semicolons to
// commas and wraps bare tokens in double quotes. true, false, null and
// well-formed numbers stay unquoted. Once the root container closes, any
// trailing garbage is dropped.
//
// A bare token that cannot be classified is treated as a string value; if
// that still does not parse, the parser reports it rather than this pass
// guessing further.
func Clean(data string) string {
	var out strings.Builder
	out.Grow(len(data))

	var inString bool
	var escaped bool
	depth := 0
	opened := false

	i := 0
	for i < len(data) {
		r, size := utf8.DecodeRuneInString(data[i:])

		if inString {
			out.WriteRune(r)
			if escaped {
				escaped = false
			} else if r == '\\' {
				escaped = true
			} else if r == '"' {
				inString = false
			}
			i += size
			continue
		}

		switch {
		case r == '"':
			inString = true
			out.WriteRune(r)
			i += size

		case r == '{' || r == '[':
			depth++
			opened = true
			out.WriteRune(r)
			i += size

		case r == '}' || r == ']':
			depth--
			out.WriteRune(r)
			i += size
			if opened && depth == 0 {
				// Root container closed, ignore anything after it.
				return out.String()
			}

		case r == ',' || r == ':':
			out.WriteRune(r)
			i += size

		case r == ';':
			out.WriteRune(',')
			i += size

		case isNoise(r):
			i += size

		default:
			token, consumed := scanBareToken(data[i:])
			i += consumed
			writeBareToken(&out, token)
		}
	}

	return out.String()
}

// isNoise reports whether a rune outside a string literal is formatting
// noise rather than token content.
func isNoise(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	if r < 0x20 || r == 0x7f || r == 0xfeff {
		return true
	}
	return !unicode.IsPrint(r)
}

// scanBareToken consumes an unquoted run up to the next structural
// character or quote and returns its cleaned text. Interior whitespace is
// collapsed to single spaces so values like "my sprite" survive quoting.
func scanBareToken(data string) (string, int) {
	var token strings.Builder
	i := 0
	pendingSpace := false
	for i < len(data) {
		r, size := utf8.DecodeRuneInString(data[i:])
		if r == '{' || r == '[' || r == '}' || r == ']' || r == ',' || r == ':' || r == ';' || r == '"' {
			break
		}
		if isNoise(r) {
			pendingSpace = token.Len() > 0
		} else {
			if pendingSpace {
				token.WriteByte(' ')
				pendingSpace = false
			}
			token.WriteRune(r)
		}
		i += size
	}
	return token.String(), i
}

func writeBareToken(out *strings.Builder, token string) {
	if token == "" {
		return
	}
	if token == "true" || token == "false" || token == "null" || IsNumberLiteral(token) {
		out.WriteString(token)
		return
	}
	out.WriteByte('"')
	for i := 0; i < len(token); i++ {
		if token[i] == '\\' {
			out.WriteByte('\\')
		}
		out.WriteByte(token[i])
	}
	out.WriteByte('"')
}

// IsNumberLiteral reports whether s is a JSON number. Tokens that merely
// look numeric (leading zeros, missing digits) are quoted as strings
// instead, keeping the cleaner's output strictly valid.
func IsNumberLiteral(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	switch {
	case i < len(s) && s[i] == '0':
		i++
	case i < len(s) && s[i] >= '1' && s[i] <= '9':
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	default:
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		if i >= len(s) || s[i] < '0' || s[i] > '9' {
			return false
		}
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= len(s) || s[i] < '0' || s[i] > '9' {
			return false
		}
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	return i == len(s)
}
