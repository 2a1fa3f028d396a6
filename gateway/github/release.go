package github

import (
	"context"
)

func (g *Gateway) LatestRelease(ctx context.Context, owner string, repo string) (string, error) {
	rep, _, err := g.ghClient.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return "", err
	}
	return rep.GetTagName(), nil
}
