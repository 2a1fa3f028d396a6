package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/railwayapp/changelog/entity"
	"github.com/railwayapp/changelog/ui"
)

type Markdown struct {
	out     *errWriter
	opts    Options
	pending []*entity.CommitDescription
	written bool
}

func NewMarkdown(w io.Writer, opts Options) *Markdown {
	return &Markdown{
		out:  &errWriter{w: w},
		opts: opts,
	}
}

func (m *Markdown) Start() error {
	if m.opts.Title != "" {
		m.write("# " + m.opts.Title + "\n")
	}
	return m.out.err
}

func (m *Markdown) Release(name string) error {
	m.flush()
	if m.written {
		m.write("\n")
	}
	m.write("## " + name + "\n\n")
	return m.out.err
}

func (m *Markdown) Commit(c *entity.CommitDescription) error {
	if m.opts.Group {
		m.pending = append(m.pending, c)
		return m.out.err
	}
	m.write(m.entry(c))
	return m.out.err
}

func (m *Markdown) Finish() error {
	m.flush()
	return m.out.err
}

// flush writes the commits buffered for the current release, grouped by type.
func (m *Markdown) flush() {
	if len(m.pending) == 0 {
		return
	}
	commits := m.pending
	m.pending = nil

	sort.SliceStable(commits, func(i, j int) bool {
		ri, ti := groupRank(commits[i].Message())
		rj, tj := groupRank(commits[j].Message())
		if ri != rj {
			return ri < rj
		}
		return ti < tj
	})

	title := ""
	for i, c := range commits {
		if t := GroupTitle(c.Message()); t != title {
			title = t
			if i > 0 {
				m.write("\n")
			}
			m.write("### " + title + "\n\n")
		}
		m.write(m.entry(c))
	}
}

func (m *Markdown) write(s string) {
	m.out.WriteString(s)
	m.written = true
}

func (m *Markdown) entry(c *entity.CommitDescription) string {
	msg := c.Message()

	var b strings.Builder
	b.WriteString("- ")
	if msg.IsBreaking() {
		b.WriteString("**BREAKING** ")
	}
	if msg.IsConventional() {
		b.WriteString("**" + msg.Header() + ":** ")
	}
	b.WriteString(msg.Subject())

	if url := m.opts.Repo.CommitURL(c.ID()); url != "" {
		fmt.Fprintf(&b, " ([%s](%s))", c.ShortID(), url)
	} else {
		fmt.Fprintf(&b, " (%s)", c.ShortID())
	}
	if author, ok := c.Author(); ok {
		b.WriteString(" by " + author)
	}
	b.WriteString("\n")

	if m.opts.Body {
		if body := msg.Body(); body != "" {
			b.WriteString("\n")
			b.WriteString(ui.PrefixLines(body, "  "))
			b.WriteString("\n")
		}
	}
	return b.String()
}
