package controller

import (
	"context"

	"github.com/railwayapp/changelog/constants"
)

func (c *Controller) GetLatestVersion(ctx context.Context) (string, error) {
	return c.ghc.LatestRelease(ctx, constants.RepoOwner, constants.RepoName)
}
