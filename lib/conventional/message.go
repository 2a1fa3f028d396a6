package conventional

import "strings"

// Message is a commit message classified against the Conventional Commits
// subject grammar. Optional parts that were not matched are empty strings.
type Message struct {
	text     string
	tag      string
	scope    string
	breaking bool
}

// Plain returns a message that carries no conventional metadata.
func Plain(text string) Message {
	return Message{text: text}
}

// WithTag returns a copy of m with its type set to tag. An empty tag clears
// all conventional metadata.
func (m Message) WithTag(tag string) Message {
	if tag == "" {
		return Plain(m.text)
	}
	m.tag = tag
	return m
}

// WithTagScope returns a copy of m with both type and scope set.
func (m Message) WithTagScope(tag, scope string) Message {
	m = m.WithTag(tag)
	if m.tag != "" {
		m.scope = scope
	}
	return m
}

// Breaking returns a copy of m flagged as a breaking change. Plain messages
// cannot be breaking, so they are returned unchanged.
func (m Message) Breaking() Message {
	if m.tag != "" {
		m.breaking = true
	}
	return m
}

// Text is the description after the separator, or the whole input for plain
// messages.
func (m Message) Text() string { return m.text }

// Tag is the commit type, e.g. "feat". Empty for plain messages.
func (m Message) Tag() string { return m.tag }

// Scope is the text between the parentheses. Empty when absent or empty.
func (m Message) Scope() string { return m.scope }

// IsBreaking reports whether the header carried a '!' marker.
func (m Message) IsBreaking() bool { return m.breaking }

// IsConventional reports whether a type was recognized.
func (m Message) IsConventional() bool {
	return m.tag != ""
}

// Header renders the matched prefix, e.g. "feat(api)!", without the colon.
// It is empty for plain messages.
func (m Message) Header() string {
	if m.tag == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.tag)
	if m.scope != "" {
		b.WriteString("(")
		b.WriteString(m.scope)
		b.WriteString(")")
	}
	if m.breaking {
		b.WriteString("!")
	}
	return b.String()
}

// Subject is the first line of the text.
func (m Message) Subject() string {
	if i := strings.IndexByte(m.text, '\n'); i >= 0 {
		return strings.TrimRight(m.text[:i], "\r")
	}
	return m.text
}

// Body is everything after the subject line with surrounding blank lines removed.
func (m Message) Body() string {
	i := strings.IndexByte(m.text, '\n')
	if i < 0 {
		return ""
	}
	return strings.Trim(m.text[i+1:], "\r\n")
}

// String renders the message back as "header: text".
func (m Message) String() string {
	if m.tag == "" {
		return m.text
	}
	return m.Header() + ": " + m.text
}
