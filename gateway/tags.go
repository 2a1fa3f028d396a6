package gateway

import (
	"context"

	"github.com/railwayapp/changelog/entity"
	"github.com/railwayapp/changelog/errors"
	"github.com/railwayapp/changelog/lib/git"
)

func (g *Gateway) Tags(ctx context.Context) ([]*entity.Tag, error) {
	if err := g.ensureRepo(ctx); err != nil {
		return nil, err
	}

	tags, err := git.Tags(ctx, g.repoPath)
	if err != nil {
		return nil, errors.TagsFetchFailed
	}

	res := make([]*entity.Tag, 0, len(tags))
	for _, tag := range tags {
		res = append(res, &entity.Tag{
			Name:     tag.Name,
			CommitID: tag.Hash,
		})
	}
	return res, nil
}
