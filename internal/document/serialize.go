package document

import "strings"

// Serialize renders a value as minimized JSON: no insignificant whitespace,
// keys in insertion order, string and number text emitted verbatim.
// Serializing a freshly parsed minimized document reproduces its input.
func Serialize(v *Value) string {
	var out strings.Builder
	writeValue(&out, v)
	return out.String()
}

func writeValue(out *strings.Builder, v *Value) {
	switch v.Kind {
	case KindNull:
		out.WriteString("null")
	case KindBool:
		if v.Bool {
			out.WriteString("true")
		} else {
			out.WriteString("false")
		}
	case KindNumber:
		out.WriteString(v.Num)
	case KindString:
		writeString(out, v.Str)
	case KindArray:
		out.WriteByte('[')
		for i, elem := range v.Arr {
			if i > 0 {
				out.WriteByte(',')
			}
			writeValue(out, elem)
		}
		out.WriteByte(']')
	case KindObject:
		out.WriteByte('{')
		for i, key := range v.Obj.Keys() {
			if i > 0 {
				out.WriteByte(',')
			}
			writeString(out, key)
			out.WriteByte(':')
			writeValue(out, v.Obj.Get(key))
		}
		out.WriteByte('}')
	}
}

// writeString emits a raw string body with quotes. The body already carries
// its escape sequences, so escape pairs pass through untouched; only bare
// characters that would break the literal (possible in keys inserted by
// rewrite rules) get escaped here.
func writeString(out *strings.Builder, body string) {
	out.WriteByte('"')
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch c {
		case '\\':
			out.WriteByte(c)
			if i+1 < len(body) {
				i++
				out.WriteByte(body[i])
			}
		case '"':
			out.WriteString(`\"`)
		case '\n':
			out.WriteString(`\n`)
		case '\r':
			out.WriteString(`\r`)
		case '\t':
			out.WriteString(`\t`)
		default:
			out.WriteByte(c)
		}
	}
	out.WriteByte('"')
}
