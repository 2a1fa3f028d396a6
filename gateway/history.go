package gateway

import (
	"context"
	"unicode/utf8"

	"github.com/railwayapp/changelog/entity"
	"github.com/railwayapp/changelog/errors"
	"github.com/railwayapp/changelog/lib/git"
)

// CommitHistory walks ref newest first. Commits whose message is not valid
// UTF-8 are left out and reported in History.Skipped.
func (g *Gateway) CommitHistory(ctx context.Context, ref string) (*entity.History, error) {
	if err := g.ensureRepo(ctx); err != nil {
		return nil, err
	}
	if _, err := git.ResolveRef(ctx, g.repoPath, ref); err != nil {
		return nil, errors.ReferenceNotFound
	}

	commits, err := git.Log(ctx, g.repoPath, ref)
	if err != nil {
		return nil, errors.HistoryFetchFailed
	}

	return toHistory(commits), nil
}

func toHistory(commits []git.CommitInfo) *entity.History {
	history := &entity.History{
		Commits: make([]*entity.CommitRecord, 0, len(commits)),
	}
	for _, commit := range commits {
		history.IDs = append(history.IDs, commit.Hash)
		if !utf8.ValidString(commit.Message) {
			history.Skipped = append(history.Skipped, commit.Hash)
			continue
		}
		history.Commits = append(history.Commits, &entity.CommitRecord{
			ID:      commit.Hash,
			Message: commit.Message,
			Author:  commit.Author,
		})
	}
	return history
}
