// Package render writes changelogs. Renderers receive events in history order:
// Start, then Release and Commit in any interleaving, then Finish.
package render

import (
	"io"

	"github.com/railwayapp/changelog/entity"
	"github.com/railwayapp/changelog/errors"
)

const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

type Renderer interface {
	Start() error
	Release(name string) error
	Commit(c *entity.CommitDescription) error
	Finish() error
}

type Options struct {
	Title string
	Group bool
	Body  bool
	// Repo is used to link commits; nil disables links.
	Repo *entity.RepoMetadata
}

func New(format string, w io.Writer, opts Options) (Renderer, error) {
	switch format {
	case FormatMarkdown, "md", "":
		return NewMarkdown(w, opts), nil
	case FormatJSON:
		return NewJSON(w, opts), nil
	default:
		return nil, errors.UnknownFormat
	}
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) WriteString(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}
