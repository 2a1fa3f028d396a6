package controller

import (
	"context"
	"sort"

	"github.com/railwayapp/changelog/entity"
	"github.com/railwayapp/changelog/lib/conventional"
	"github.com/railwayapp/changelog/render"
	"github.com/railwayapp/changelog/ui"
)

func warn(format string, args ...interface{}) {
	ui.Warn(format, args...)
}

// ParseMessage classifies a single commit message.
func (c *Controller) ParseMessage(text string) conventional.Message {
	return conventional.Parse(text)
}

// CommitDescriptions parses every commit reachable from req.Ref, newest first.
func (c *Controller) CommitDescriptions(ctx context.Context, req *entity.ChangelogRequest) ([]*entity.CommitDescription, error) {
	_, descriptions, err := c.describe(ctx, req)
	return descriptions, err
}

// describe walks req.Ref and returns the raw history along with the commits
// that survive filtering.
func (c *Controller) describe(ctx context.Context, req *entity.ChangelogRequest) (*entity.History, []*entity.CommitDescription, error) {
	repo := c.newRepo(req.RepoPath)

	history, err := repo.CommitHistory(ctx, req.Ref)
	if err != nil {
		return nil, nil, err
	}
	for _, id := range history.Skipped {
		c.warn("skipping commit %s: message is not valid UTF-8", shortID(id))
	}

	descriptions := make([]*entity.CommitDescription, 0, len(history.Commits))
	for _, record := range history.Commits {
		msg := conventional.Parse(record.Message)
		if req.ConventionalOnly && !msg.IsConventional() {
			continue
		}

		desc := entity.NewCommitDescription(record.ID, msg)
		if record.Author != "" {
			desc = desc.WithAuthor(record.Author)
		}
		descriptions = append(descriptions, desc)
	}

	if req.ResolveAuthors {
		descriptions = c.resolveAuthors(ctx, repo, req, descriptions)
	}

	return history, descriptions, nil
}

// WriteChangelog sends the history of req.Ref to r. Tags are matched against
// every walked commit, including ones that were filtered out or skipped; their
// release heading goes before the next commit that is written, or stands on
// its own when no older commit is left. Commits newer than the newest tag go
// under req.Unreleased.
func (c *Controller) WriteChangelog(ctx context.Context, req *entity.ChangelogRequest, r render.Renderer) error {
	tags, err := c.newRepo(req.RepoPath).Tags(ctx)
	if err != nil {
		return err
	}
	tagged := tagsByCommit(tags)

	history, commits, err := c.describe(ctx, req)
	if err != nil {
		return err
	}
	byID := make(map[string]*entity.CommitDescription, len(commits))
	for _, commit := range commits {
		byID[commit.ID()] = commit
	}

	if err := r.Start(); err != nil {
		return err
	}

	unreleased := req.Unreleased != ""
	pending := []string{}
	for _, id := range history.IDs {
		if names, ok := tagged[id]; ok {
			unreleased = false
			pending = append(pending, names...)
		}

		commit, ok := byID[id]
		if !ok {
			continue
		}
		if unreleased {
			pending = append(pending, req.Unreleased)
			unreleased = false
		}
		if err := releases(r, pending); err != nil {
			return err
		}
		pending = pending[:0]
		if err := r.Commit(commit); err != nil {
			return err
		}
	}
	if err := releases(r, pending); err != nil {
		return err
	}
	return r.Finish()
}

func releases(r render.Renderer, names []string) error {
	for _, name := range names {
		if err := r.Release(name); err != nil {
			return err
		}
	}
	return nil
}

// tagsByCommit groups tag names by the commit they point at. Names are sorted
// newest looking first so "v1.1.0" comes before "v1.0.0".
func tagsByCommit(tags []*entity.Tag) map[string][]string {
	res := map[string][]string{}
	for _, tag := range tags {
		res[tag.CommitID] = append(res[tag.CommitID], tag.Name)
	}
	for _, names := range res {
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
	}
	return res
}

func shortID(id string) string {
	if len(id) > entity.ShortIDLength {
		return id[:entity.ShortIDLength]
	}
	return id
}

// RepoMetadata returns the repository's remote details, or nil when they
// cannot be read.
func (c *Controller) RepoMetadata(ctx context.Context, repoPath string) *entity.RepoMetadata {
	meta, err := c.newRepo(repoPath).Metadata(ctx)
	if err != nil {
		return nil
	}
	return meta
}
