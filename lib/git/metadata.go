package git

type CommitInfo struct {
	Hash    string
	Message string
	Author  string
}

type TagInfo struct {
	Name string
	Hash string
}

type GitMetadata struct {
	IsRepo      bool
	RepoName    string
	GitHubOwner string
	GitHubRepo  string
	Head        string
}
