package errors

import (
	"fmt"

	"github.com/railwayapp/changelog/ui"
)

type ChangelogError error

var (
	RepositoryNotFound   ChangelogError = fmt.Errorf("%s\nRun %s inside a git repository or pass %s", ui.RedText("Not a git repository."), ui.Bold("changelog"), ui.Bold("--repo <path>"))
	ReferenceNotFound    ChangelogError = fmt.Errorf("%s\nCheck the value passed to %s", ui.RedText("Reference not found."), ui.Bold("--ref"))
	HistoryFetchFailed   ChangelogError = fmt.Errorf("%s", ui.RedText("There was a problem reading the commit history."))
	TagsFetchFailed      ChangelogError = fmt.Errorf("%s", ui.RedText("There was a problem reading the tags of the repository."))
	UnknownFormat        ChangelogError = fmt.Errorf("%s\nSupported formats are %s and %s", ui.RedText("Unknown output format."), ui.Bold("markdown"), ui.Bold("json"))
	OutputExists         ChangelogError = fmt.Errorf("%s\nPass %s to overwrite it", ui.RedText("Output file already exists."), ui.Bold("--force"))
	OutputWriteFailed    ChangelogError = fmt.Errorf("%s", ui.RedText("There was a problem writing the changelog."))
	OverwriteAborted     ChangelogError = fmt.Errorf("%s", ui.RedText("Aborted, the changelog was not written."))
	GitHubTokenNotSet    ChangelogError = fmt.Errorf("%s\nSet %s in your environment to resolve GitHub authors", ui.RedText("GITHUB_TOKEN environment variable not set."), ui.Bold("GITHUB_TOKEN"))
	GitHubRepoNotFound   ChangelogError = fmt.Errorf("%s", ui.RedText("The origin remote is not a GitHub repository."))
	GitHubLookupFailed   ChangelogError = fmt.Errorf("%s", ui.RedText("There was a problem talking to GitHub."))
	MessageNotSpecified  ChangelogError = fmt.Errorf("%s\nRun %s", ui.RedText("Specify a commit message to parse."), ui.Bold("changelog parse \"feat: message\""))
	DocsShortcutNotFound ChangelogError = fmt.Errorf("%s\nRun %s to list them", ui.RedText("Unknown docs shortcut."), ui.Bold("changelog docs"))
)
