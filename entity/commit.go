package entity

import "github.com/railwayapp/changelog/lib/conventional"

const ShortIDLength = 7

// CommitDescription pairs a commit id with its parsed message. Values are
// immutable; the With methods return modified copies.
type CommitDescription struct {
	id      string
	message conventional.Message
	author  string
}

func NewCommitDescription(id string, msg conventional.Message) *CommitDescription {
	return &CommitDescription{
		id:      id,
		message: msg,
	}
}

// WithAuthor returns a copy of c attributed to author.
func (c *CommitDescription) WithAuthor(author string) *CommitDescription {
	cp := *c
	cp.author = author
	return &cp
}

// ID is the full hex object name of the commit.
func (c *CommitDescription) ID() string { return c.id }

// Message is the parsed commit message.
func (c *CommitDescription) Message() conventional.Message { return c.message }

// Author returns the author display name and whether one is set.
func (c *CommitDescription) Author() (string, bool) {
	return c.author, c.author != ""
}

// ShortID is the abbreviated id used in changelog entries.
func (c *CommitDescription) ShortID() string {
	if len(c.id) <= ShortIDLength {
		return c.id
	}
	return c.id[:ShortIDLength]
}

// CommitRecord is a commit as read from the repository, before parsing.
type CommitRecord struct {
	ID      string
	Message string
	Author  string
}

// History is the result of walking a reference. IDs lists every commit that
// was walked, newest first. Skipped holds the ids of commits whose message
// could not be decoded as text; they are in IDs but not in Commits.
type History struct {
	IDs     []string
	Commits []*CommitRecord
	Skipped []string
}

type Tag struct {
	Name     string `json:"name"`
	CommitID string `json:"commitId"`
}
