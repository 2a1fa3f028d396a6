package render

import (
	"encoding/json"
	"io"

	"github.com/railwayapp/changelog/entity"
)

type jsonCommit struct {
	ID       string `json:"id"`
	Tag      string `json:"tag,omitempty"`
	Scope    string `json:"scope,omitempty"`
	Breaking bool   `json:"breaking"`
	Text     string `json:"text"`
	Author   string `json:"author,omitempty"`
	URL      string `json:"url,omitempty"`
}

type jsonRelease struct {
	Name    string       `json:"name"`
	Commits []jsonCommit `json:"commits"`
}

type jsonChangelog struct {
	Title    string         `json:"title,omitempty"`
	Releases []*jsonRelease `json:"releases"`
}

// JSON collects the whole changelog and encodes it on Finish.
type JSON struct {
	w    io.Writer
	opts Options
	doc  jsonChangelog
}

func NewJSON(w io.Writer, opts Options) *JSON {
	return &JSON{
		w:    w,
		opts: opts,
		doc: jsonChangelog{
			Title:    opts.Title,
			Releases: []*jsonRelease{},
		},
	}
}

func (j *JSON) Start() error {
	return nil
}

func (j *JSON) Release(name string) error {
	j.doc.Releases = append(j.doc.Releases, &jsonRelease{Name: name, Commits: []jsonCommit{}})
	return nil
}

func (j *JSON) Commit(c *entity.CommitDescription) error {
	if len(j.doc.Releases) == 0 {
		j.Release("")
	}
	msg := c.Message()
	author, _ := c.Author()
	release := j.doc.Releases[len(j.doc.Releases)-1]
	release.Commits = append(release.Commits, jsonCommit{
		ID:       c.ID(),
		Tag:      msg.Tag(),
		Scope:    msg.Scope(),
		Breaking: msg.IsBreaking(),
		Text:     msg.Text(),
		Author:   author,
		URL:      j.opts.Repo.CommitURL(c.ID()),
	})
	return nil
}

func (j *JSON) Finish() error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(j.doc)
}
