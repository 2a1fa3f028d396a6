package gateway

import (
	"fmt"
	"strings"

	"github.com/pkg/browser"
)

// OpenInBrowser opens url, filling in repoName when the url has a placeholder.
func OpenInBrowser(repoName string, url string) error {
	if strings.Contains(url, "%s") {
		url = fmt.Sprintf(url, repoName)
	}
	return browser.OpenURL(url)
}
