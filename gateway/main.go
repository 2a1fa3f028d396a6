package gateway

import (
	"context"

	"github.com/railwayapp/changelog/errors"
	"github.com/railwayapp/changelog/lib/git"
)

// Gateway reads commits, tags and remotes from a local repository.
type Gateway struct {
	repoPath string
}

func New(repoPath string) *Gateway {
	if repoPath == "" {
		repoPath = "."
	}
	return &Gateway{
		repoPath: repoPath,
	}
}

func (g *Gateway) ensureRepo(ctx context.Context) error {
	if !git.IsRepo(ctx, g.repoPath) {
		return errors.RepositoryNotFound
	}
	return nil
}
