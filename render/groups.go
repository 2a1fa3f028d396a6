package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/railwayapp/changelog/lib/conventional"
)

const otherChanges = "Other Changes"

var groupTitles = map[string]string{
	"feat":     "Features",
	"fix":      "Bug Fixes",
	"perf":     "Performance",
	"refactor": "Refactoring",
	"docs":     "Documentation",
	"test":     "Tests",
	"build":    "Build",
	"ci":       "Continuous Integration",
	"style":    "Style",
	"chore":    "Chores",
	"revert":   "Reverts",
}

var groupOrder = []string{"feat", "fix", "perf", "refactor", "docs", "test", "build", "ci", "style", "chore", "revert"}

// GroupTitle names the section a message is listed under.
func GroupTitle(msg conventional.Message) string {
	if !msg.IsConventional() {
		return otherChanges
	}
	tag := strings.ToLower(msg.Tag())
	if title, ok := groupTitles[tag]; ok {
		return title
	}
	r, size := utf8.DecodeRuneInString(tag)
	return string(unicode.ToUpper(r)) + tag[size:]
}

// groupRank orders well known types first, then others alphabetically, then
// plain messages.
func groupRank(msg conventional.Message) (int, string) {
	if !msg.IsConventional() {
		return len(groupOrder) + 1, ""
	}
	tag := strings.ToLower(msg.Tag())
	for i, known := range groupOrder {
		if known == tag {
			return i, ""
		}
	}
	return len(groupOrder), tag
}
