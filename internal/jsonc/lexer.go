// Package jsonc turns hand-edited, comment-bearing plugin JSON into text
// that the document parser accepts. Plugin authors write files with //
// comments, unquoted values, stray semicolons and invisible characters;
// the lexer and cleaner repair all of that without ever touching the
// content of string literals.
package jsonc

import "strings"

// StripComments removes // line comments from raw text. A // sequence
// inside a string literal is content, not a comment, so the scanner tracks
// string and escape state byte by byte. Newlines that terminate a comment
// are kept so later diagnostics still line up with the source.
func StripComments(data string) string {
	var out strings.Builder
	out.Grow(len(data))

	var inString bool
	var escaped bool
	var inComment bool

	for i := 0; i < len(data); i++ {
		c := data[i]

		if inComment {
			if c == '\n' {
				inComment = false
				out.WriteByte(c)
			}
			continue
		}

		if escaped {
			out.WriteByte(c)
			escaped = false
			continue
		}

		if inString {
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			out.WriteByte(c)
			continue
		}

		if c == '"' {
			inString = true
			out.WriteByte(c)
			continue
		}

		if c == '/' && i+1 < len(data) && data[i+1] == '/' {
			inComment = true
			i++
			continue
		}

		// A lone '/' is not a comment marker.
		out.WriteByte(c)
	}

	return out.String()
}
