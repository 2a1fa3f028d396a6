package entity

type RepoMetadata struct {
	Name        string
	GitHubOwner string
	GitHubRepo  string
	Head        string
}

// CommitURL links to a commit on GitHub, or returns "" when the repository is
// not hosted there.
func (r *RepoMetadata) CommitURL(id string) string {
	if r == nil || r.GitHubOwner == "" || r.GitHubRepo == "" {
		return ""
	}
	return "https://github.com/" + r.GitHubOwner + "/" + r.GitHubRepo + "/commit/" + id
}
