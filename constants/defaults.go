package constants

const (
	DefaultOutput     = "CHANGELOG.md"
	DefaultRef        = "HEAD"
	DefaultFormat     = "markdown"
	DefaultTitle      = "Changelog"
	DefaultUnreleased = "Unreleased"
	StdoutOutput      = "-"
	EnvPrefix         = "CHANGELOG"
	ConfigName        = ".changelog"
	GitHubGraphQLURL  = "https://api.github.com/graphql"
)
