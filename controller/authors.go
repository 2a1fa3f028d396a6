package controller

import (
	"context"

	"github.com/railwayapp/changelog/entity"
	"github.com/railwayapp/changelog/errors"
)

// resolveAuthors replaces author names with GitHub logins. Each git author name
// is looked up once, through the first of their commits. Lookups stop at the
// first failure and the remaining commits keep their git author names.
func (c *Controller) resolveAuthors(ctx context.Context, repo Repository, req *entity.ChangelogRequest, commits []*entity.CommitDescription) []*entity.CommitDescription {
	meta, err := repo.Metadata(ctx)
	if err != nil {
		c.warn("not resolving GitHub authors: %s", err)
		return commits
	}
	if meta.GitHubOwner == "" {
		c.warn("not resolving GitHub authors: %s", errors.GitHubRepoNotFound)
		return commits
	}

	logins := map[string]string{}
	for i, commit := range commits {
		name, _ := commit.Author()
		login, ok := logins[name]
		if !ok || name == "" {
			login, err = c.ghc.CommitAuthorLogin(ctx, &entity.CommitAuthorRequest{
				Owner:    meta.GitHubOwner,
				Repo:     meta.GitHubRepo,
				CommitID: commit.ID(),
				Token:    req.GitHubToken,
			})
			if err != nil {
				c.warn("not resolving GitHub authors: %s", err)
				return commits
			}
			if name != "" {
				logins[name] = login
			}
		}
		if login != "" {
			commits[i] = commit.WithAuthor("@" + login)
		}
	}
	return commits
}
