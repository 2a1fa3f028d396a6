package controller

import (
	"context"

	"github.com/railwayapp/changelog/entity"
	"github.com/railwayapp/changelog/gateway"
	"github.com/railwayapp/changelog/gateway/github"
)

// Repository is what the controller needs from a local repository.
type Repository interface {
	CommitHistory(ctx context.Context, ref string) (*entity.History, error)
	Tags(ctx context.Context) ([]*entity.Tag, error)
	Metadata(ctx context.Context) (*entity.RepoMetadata, error)
}

// GitHub is what the controller needs from the GitHub API.
type GitHub interface {
	CommitAuthorLogin(ctx context.Context, req *entity.CommitAuthorRequest) (string, error)
	LatestRelease(ctx context.Context, owner string, repo string) (string, error)
}

type Controller struct {
	ghc     GitHub
	newRepo func(path string) Repository
	warn    func(format string, args ...interface{})
	openURL func(repoName string, url string) error
}

func New() *Controller {
	return &Controller{
		ghc: github.New(),
		newRepo: func(path string) Repository {
			return gateway.New(path)
		},
		warn:    warn,
		openURL: openURL,
	}
}
