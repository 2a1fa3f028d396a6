package controller

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/railwayapp/changelog/constants"
	"github.com/railwayapp/changelog/errors"
	"github.com/railwayapp/changelog/gateway"
	"github.com/railwayapp/changelog/ui"
)

// OpenDocs opens the page behind a docs shortcut. Without a shortcut the
// available ones are listed to w.
func (c *Controller) OpenDocs(ctx context.Context, w io.Writer, repoPath string, shortcut string) error {
	if shortcut == "" {
		nameList(w, c.repoName(ctx, repoPath))
		return nil
	}

	url, ok := constants.DocsURLMap[shortcut]
	if !ok {
		return errors.DocsShortcutNotFound
	}
	return c.openURL(c.repoName(ctx, repoPath), url)
}

// repoName is owner/name of the GitHub remote, or this project's own repository
// when there is none.
func (c *Controller) repoName(ctx context.Context, repoPath string) string {
	meta, err := c.newRepo(repoPath).Metadata(ctx)
	if err != nil || meta.GitHubOwner == "" {
		return constants.RepoOwner + "/" + constants.RepoName
	}
	return meta.GitHubOwner + "/" + meta.GitHubRepo
}

func nameList(w io.Writer, repoName string) {
	names, longest := getNames()
	items := make([]string, 0, len(names))
	for _, name := range names {
		url := constants.DocsURLMap[name]
		if strings.Contains(url, "%s") {
			url = fmt.Sprintf(url, repoName)
		}
		items = append(items, fmt.Sprintf("%s => %s", padName(name, longest), url))
	}
	fmt.Fprint(w, ui.UnorderedList(items))
}

func padName(name string, length int) string {
	difference := length - len(name)

	var b strings.Builder

	fmt.Fprint(&b, name)

	for i := 0; i < difference; i++ {
		fmt.Fprint(&b, " ")
	}

	return b.String()
}

func getNames() ([]string, int) {
	longest := 0
	keys := make([]string, 0, len(constants.DocsURLMap))
	for k := range constants.DocsURLMap {
		if len(k) > longest {
			longest = len(k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, longest
}

func openURL(repoName string, url string) error {
	return gateway.OpenInBrowser(repoName, url)
}
