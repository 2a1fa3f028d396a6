package constants

var DocsURLMap = map[string]string{
	"docs":      "https://www.conventionalcommits.org/en/v1.0.0/",
	"spec":      "https://www.conventionalcommits.org/en/v1.0.0/#specification",
	"faq":       "https://www.conventionalcommits.org/en/v1.0.0/#faq",
	"changelog": "https://keepachangelog.com/en/1.1.0/",
	"semver":    "https://semver.org/",
	"repo":      "https://github.com/%s",
	"releases":  "https://github.com/%s/releases",
	"issues":    "https://github.com/" + RepoOwner + "/" + RepoName + "/issues",
}
