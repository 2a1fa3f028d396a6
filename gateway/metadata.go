package gateway

import (
	"context"

	"github.com/railwayapp/changelog/entity"
	"github.com/railwayapp/changelog/errors"
	"github.com/railwayapp/changelog/lib/git"
)

func (g *Gateway) Metadata(ctx context.Context) (*entity.RepoMetadata, error) {
	meta, err := git.GetAllMetadata(ctx, g.repoPath)
	if err != nil {
		return nil, err
	}
	if !meta.IsRepo {
		return nil, errors.RepositoryNotFound
	}
	return &entity.RepoMetadata{
		Name:        meta.RepoName,
		GitHubOwner: meta.GitHubOwner,
		GitHubRepo:  meta.GitHubRepo,
		Head:        meta.Head,
	}, nil
}
