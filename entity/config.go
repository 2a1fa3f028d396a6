package entity

type ChangelogConfig struct {
	RepoPath         string       `mapstructure:"repo"`
	Ref              string       `mapstructure:"ref"`
	Output           string       `mapstructure:"output"`
	Format           string       `mapstructure:"format"`
	Title            string       `mapstructure:"title"`
	Unreleased       string       `mapstructure:"unreleased"`
	Group            bool         `mapstructure:"group"`
	Body             bool         `mapstructure:"body"`
	ConventionalOnly bool         `mapstructure:"conventional_only"`
	Links            bool         `mapstructure:"links"`
	Force            bool         `mapstructure:"force"`
	GitHub           GitHubConfig `mapstructure:"github"`

	// OutputDefaulted is set when no output path was given anywhere.
	OutputDefaulted bool `mapstructure:"-"`
}

type GitHubConfig struct {
	Token          string `mapstructure:"token"`
	ResolveAuthors bool   `mapstructure:"authors"`
}
