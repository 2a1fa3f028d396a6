// Package conventional recognizes Conventional Commits subject lines
// ("type(scope)!: description").
//
// Parse never fails. Input that does not match the grammar, at whatever point
// the mismatch is found, comes back as a plain message holding the original
// text unchanged.
package conventional

import "unicode"

// Parse classifies a raw commit message.
func Parse(input string) Message {
	c := NewCursor(input)

	tag := c.TakeWhile(isAlphabetic)
	if tag == "" {
		return Plain(c.Rest())
	}

	c.Checkpoint()

	r, ok := c.Peek()
	if !ok {
		return Plain(tag)
	}

	switch r {
	case '(':
		c.Advance()
		return parseScope(c, tag)
	case '!':
		c.Advance()
		return parseBreaking(c, tag, "")
	case ':':
		c.Advance()
		if text, ok := parseSeparator(c); ok {
			return Plain(text).WithTag(tag)
		}
	}

	return fallback(c, tag)
}

// parseScope is entered right after the opening parenthesis.
func parseScope(c *Cursor, tag string) Message {
	scope := c.TakeWhile(func(r rune) bool { return r != ')' })
	if r, ok := c.Peek(); !ok || r != ')' {
		return fallback(c, tag)
	}
	c.Advance()

	r, ok := c.Peek()
	switch {
	case ok && r == '!':
		c.Advance()
		return parseBreaking(c, tag, scope)
	case ok && r == ':':
		c.Advance()
		if text, ok := parseSeparator(c); ok {
			return Plain(text).WithTagScope(tag, scope)
		}
	}

	return fallback(c, tag)
}

// parseBreaking is entered right after the '!' marker, which must be followed
// directly by the separator.
func parseBreaking(c *Cursor, tag, scope string) Message {
	if r, ok := c.Peek(); !ok || r != ':' {
		return fallback(c, tag)
	}
	c.Advance()

	text, ok := parseSeparator(c)
	if !ok {
		return fallback(c, tag)
	}
	return Plain(text).WithTagScope(tag, scope).Breaking()
}

// parseSeparator is entered right after ':'. Exactly one whitespace rune must
// follow; the remainder of the input is the description.
func parseSeparator(c *Cursor) (string, bool) {
	r, ok := c.Peek()
	if !ok || !unicode.IsSpace(r) {
		return "", false
	}
	c.Advance()
	return c.Rest(), true
}

// fallback rebuilds the original input from the tag and everything after the
// checkpoint taken right behind it.
func fallback(c *Cursor, tag string) Message {
	c.Rewind()
	return Plain(tag + c.Rest())
}

func isAlphabetic(r rune) bool {
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_Alphabetic)
}
