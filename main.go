package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/railwayapp/changelog/cmd"
	"github.com/railwayapp/changelog/constants"
	"github.com/railwayapp/changelog/entity"
	"github.com/railwayapp/changelog/ui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "changelog [output]",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Args:          cobra.MaximumNArgs(1),
	Short:         "📜 Write a changelog from Conventional Commits",
	Long: "Read the history of a git repository and write a changelog, grouped by release.\n\n" +
		"Pass - as output to write to stdout. Docs: " + constants.DocsURLMap["docs"],
}

/* contextualize converts a HandlerFunction to a cobra function
 */
func contextualize(fn entity.HandlerFunction, panicFn entity.PanicFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx := context.Background()
		defer func() {
			if r := recover(); r != nil {
				panicFn(ctx, &entity.PanicRequest{
					Command:    cmd.Name(),
					PanicError: fmt.Sprint(r),
					Stacktrace: string(debug.Stack()),
					Args:       args,
				})
				err = reportedError{fmt.Errorf("%s panicked", cmd.Name())}
			}
		}()

		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		if err := fn(ctx, req); err != nil {
			ui.Error(err)
			return reportedError{err}
		}
		return nil
	}
}

// reportedError has already been shown to the user.
type reportedError struct {
	error
}

func init() {
	// Initializes all commands
	handler := cmd.New()

	rootCmd.RunE = contextualize(handler.Changelog, handler.Panic)

	flags := rootCmd.Flags()
	flags.String("ref", constants.DefaultRef, "reference to read the history of")
	flags.StringP("format", "f", constants.DefaultFormat, "output format, markdown or json")
	flags.String("title", constants.DefaultTitle, "title of the changelog")
	flags.String("unreleased", constants.DefaultUnreleased, "heading for commits newer than the latest tag, empty to omit")
	flags.Bool("group", false, "group commits of a release by type")
	flags.Bool("body", false, "include commit message bodies")
	flags.Bool("conventional-only", false, "leave out commits that are not Conventional Commits")
	flags.Bool("links", true, "link commits when the repository is on GitHub")
	flags.Bool("github-authors", false, "show GitHub logins instead of git author names (needs GITHUB_TOKEN)")
	flags.Bool("force", false, "overwrite the output file without asking")
	rootCmd.PersistentFlags().StringP("repo", "C", ".", "path to the git repository")

	cfg := handler.Configs()
	if err := cfg.BindFlags(flags); err != nil {
		panic(err)
	}
	if err := cfg.BindFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "parse [message]",
		Short: "Show how a commit message is classified",
		RunE:  contextualize(handler.Parse, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Get version of changelog",
		RunE:  contextualize(handler.Version, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "docs [shortcut]",
		Short: "Open Conventional Commits docs in browser",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Docs, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate completion script",
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.ExactValidArgs(1),
		RunE:      contextualize(handler.Completion, handler.Panic),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if _, ok := err.(reportedError); !ok {
			ui.Error(err)
		}
		os.Exit(1)
	}
}
