package configs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/railwayapp/changelog/constants"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Configs struct {
	viper       *viper.Viper
	searchPaths []string
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"repo":              "repo",
	"ref":               "ref",
	"format":            "format",
	"title":             "title",
	"unreleased":        "unreleased",
	"group":             "group",
	"body":              "body",
	"conventional-only": "conventional_only",
	"links":             "links",
	"force":             "force",
	"github-authors":    "github.authors",
}

func New() *Configs {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "changelog"))
	}
	return newConfigs(paths...)
}

func newConfigs(searchPaths ...string) *Configs {
	v := viper.New()

	v.SetDefault("repo", ".")
	v.SetDefault("ref", constants.DefaultRef)
	v.SetDefault("format", constants.DefaultFormat)
	v.SetDefault("title", constants.DefaultTitle)
	v.SetDefault("unreleased", constants.DefaultUnreleased)
	v.SetDefault("group", false)
	v.SetDefault("body", false)
	v.SetDefault("conventional_only", false)
	v.SetDefault("links", true)
	v.SetDefault("force", false)
	v.SetDefault("github.authors", false)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// output has no default so an explicit choice can be told apart
	_ = v.BindEnv("output")
	_ = v.BindEnv("github.token", "GITHUB_TOKEN")

	v.SetConfigName(constants.ConfigName)

	return &Configs{
		viper:       v,
		searchPaths: searchPaths,
	}
}

// BindFlags lets command line flags override every other source.
func (c *Configs) BindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := c.viper.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

// SetOutput records an output path given on the command line.
func (c *Configs) SetOutput(output string) {
	c.viper.Set("output", output)
}

func (c *Configs) readInConfig() error {
	repo := c.viper.GetString("repo")
	// a .env next to the repository may carry GITHUB_TOKEN; the real
	// environment wins
	envFile := filepath.Join(repo, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return err
		}
	}

	c.viper.AddConfigPath(repo)
	for _, path := range c.searchPaths {
		c.viper.AddConfigPath(path)
	}

	err := c.viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return nil
	}
	return err
}

// ConfigFileUsed returns the config file that was read, if any.
func (c *Configs) ConfigFileUsed() string {
	return c.viper.ConfigFileUsed()
}
