package github

import (
	"context"
	"fmt"

	gql "github.com/machinebox/graphql"
	"github.com/railwayapp/changelog/entity"
	"github.com/railwayapp/changelog/errors"
	selection "github.com/railwayapp/changelog/lib/gql"
)

// commitUserGQL selects the fields read from the commit author's account.
type commitUserGQL struct {
	Login bool `json:"login"`
}

// CommitAuthorLogin returns the GitHub login of the author of a commit, or ""
// when the author has no GitHub account.
func (g *Gateway) CommitAuthorLogin(ctx context.Context, req *entity.CommitAuthorRequest) (string, error) {
	if req.Token == "" {
		return "", errors.GitHubTokenNotSet
	}

	fields, err := selection.AsGQL(ctx, &commitUserGQL{Login: true})
	if err != nil {
		return "", err
	}

	gqlReq := gql.NewRequest(fmt.Sprintf(`
		query($owner: String!, $name: String!, $oid: GitObjectID!) {
			repository(owner: $owner, name: $name) {
				object(oid: $oid) {
					... on Commit {
						author {
							user {
								%s
							}
						}
					}
				}
			}
		}
	`, *fields))
	gqlReq.Var("owner", req.Owner)
	gqlReq.Var("name", req.Repo)
	gqlReq.Var("oid", req.CommitID)
	gqlReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", req.Token))

	var resp struct {
		Repository struct {
			Object struct {
				Author struct {
					User *struct {
						Login string `json:"login"`
					} `json:"user"`
				} `json:"author"`
			} `json:"object"`
		} `json:"repository"`
	}
	if err := g.gqlClient.Run(ctx, gqlReq, &resp); err != nil {
		return "", errors.GitHubLookupFailed
	}

	user := resp.Repository.Object.Author.User
	if user == nil {
		return "", nil
	}
	return user.Login, nil
}
