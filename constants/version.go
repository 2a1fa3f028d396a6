package constants

// Version is overridden at build time with -ldflags.
var Version = "source"

const (
	RepoOwner = "railwayapp"
	RepoName  = "changelog"
)
