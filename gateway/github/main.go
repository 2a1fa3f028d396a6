package github

import (
	"net/http"
	"net/url"
	"time"

	gh "github.com/google/go-github/github"
	gql "github.com/machinebox/graphql"
	"github.com/railwayapp/changelog/constants"
)

type Gateway struct {
	gqlClient *gql.Client
	ghClient  *gh.Client
}

func New() *Gateway {
	httpClient := &http.Client{
		Timeout: time.Second * 30,
	}
	return &Gateway{
		gqlClient: gql.NewClient(constants.GitHubGraphQLURL, gql.WithHTTPClient(httpClient)),
		ghClient:  gh.NewClient(httpClient),
	}
}

// NewWithURLs points both clients at other endpoints, e.g. GitHub Enterprise.
// restURL must end with a slash.
func NewWithURLs(graphqlURL string, restURL string, httpClient *http.Client) (*Gateway, error) {
	base, err := url.Parse(restURL)
	if err != nil {
		return nil, err
	}
	ghClient := gh.NewClient(httpClient)
	ghClient.BaseURL = base
	return &Gateway{
		gqlClient: gql.NewClient(graphqlURL, gql.WithHTTPClient(httpClient)),
		ghClient:  ghClient,
	}, nil
}
