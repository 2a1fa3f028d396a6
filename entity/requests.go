package entity

type ChangelogRequest struct {
	RepoPath         string
	Ref              string
	Unreleased       string
	ConventionalOnly bool
	ResolveAuthors   bool
	GitHubToken      string
}

type CommitAuthorRequest struct {
	Owner    string
	Repo     string
	CommitID string
	Token    string
}

type PanicRequest struct {
	Command    string
	PanicError string
	Stacktrace string
	Args       []string
}
