package document

import (
	"fmt"

	"github.com/svetikas/ttbuild/internal/jsonc"
)

// MalformedDocumentError reports text that cannot be parsed into a
// document. Position is a byte offset into the cleaned text.
type MalformedDocumentError struct {
	Position int
	Reason   string
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed document at offset %d: %s", e.Position, e.Reason)
}

// Parse reads cleaned text into a Value. The input is expected to carry no
// comments and no inter-token whitespace outside string literals, which is
// what jsonc.Clean produces. Duplicate object keys are accepted with
// last-write-wins; a trailing comma directly before a closing brace or
// bracket is tolerated.
func Parse(text string) (*Value, error) {
	p := &parser{text: text}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.text) {
		return nil, p.errorf(p.pos, "unexpected trailing data")
	}
	return v, nil
}

type parser struct {
	text string
	pos  int
}

func (p *parser) errorf(pos int, format string, args ...any) error {
	return &MalformedDocumentError{Position: pos, Reason: fmt.Sprintf(format, args...)}
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.text) {
		return 0, false
	}
	return p.text[p.pos], true
}

func (p *parser) parseValue() (*Value, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.errorf(p.pos, "unexpected end of input")
	}
	switch c {
	case '{':
		return p.parseObject()
	case '[':
		return p.parseArray()
	case '"':
		return p.parseString()
	default:
		return p.parseLiteral()
	}
}

func (p *parser) parseObject() (*Value, error) {
	start := p.pos
	p.pos++ // consume '{'
	obj := NewObject()

	for {
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf(start, "unbalanced braces")
		}
		if c == '}' {
			p.pos++
			return &Value{Kind: KindObject, Obj: obj}, nil
		}
		if obj.Len() > 0 || c == ',' {
			if c != ',' {
				return nil, p.errorf(p.pos, "expected ',' or '}' in object")
			}
			p.pos++
			// Trailing comma before the closing brace is fine.
			if c, ok = p.peek(); ok && c == '}' {
				p.pos++
				return &Value{Kind: KindObject, Obj: obj}, nil
			}
		}

		keyPos := p.pos
		c, ok = p.peek()
		if !ok || c != '"' {
			return nil, p.errorf(keyPos, "expected string key in object")
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}

		c, ok = p.peek()
		if !ok || c != ':' {
			return nil, p.errorf(p.pos, "expected ':' after object key")
		}
		p.pos++

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Set(key.Str, val)
	}
}

func (p *parser) parseArray() (*Value, error) {
	start := p.pos
	p.pos++ // consume '['
	arr := []*Value{}

	for {
		c, ok := p.peek()
		if !ok {
			return nil, p.errorf(start, "unbalanced brackets")
		}
		if c == ']' {
			p.pos++
			return &Value{Kind: KindArray, Arr: arr}, nil
		}
		if len(arr) > 0 {
			if c != ',' {
				return nil, p.errorf(p.pos, "expected ',' or ']' in array")
			}
			p.pos++
			if c, ok = p.peek(); ok && c == ']' {
				p.pos++
				return &Value{Kind: KindArray, Arr: arr}, nil
			}
		}

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
}

// parseString consumes a quoted string and returns its raw body, escape
// sequences untouched. Only the escape-skip matters here; validating the
// sequences would reject content the lenient cleaner chose to keep.
func (p *parser) parseString() (*Value, error) {
	start := p.pos
	p.pos++ // consume opening quote
	bodyStart := p.pos
	for p.pos < len(p.text) {
		switch p.text[p.pos] {
		case '\\':
			p.pos += 2
		case '"':
			body := p.text[bodyStart:p.pos]
			p.pos++
			return String(body), nil
		default:
			p.pos++
		}
	}
	return nil, p.errorf(start, "unterminated string")
}

func (p *parser) parseLiteral() (*Value, error) {
	start := p.pos
	for p.pos < len(p.text) {
		c := p.text[p.pos]
		if c == ',' || c == ':' || c == '}' || c == ']' || c == '{' || c == '[' || c == '"' {
			break
		}
		p.pos++
	}
	lit := p.text[start:p.pos]
	switch {
	case lit == "true":
		return True(), nil
	case lit == "false":
		return False(), nil
	case lit == "null":
		return Null(), nil
	case jsonc.IsNumberLiteral(lit):
		return Number(lit), nil
	default:
		return nil, p.errorf(start, "invalid literal %q", lit)
	}
}
