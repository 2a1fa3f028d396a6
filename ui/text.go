package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
)

const maxKeyPadding = 50

func Color(w io.Writer) aurora.Aurora {
	return aurora.NewAurora(SupportsANSICodesFor(w))
}

func Bold(text string) string {
	color := Color(os.Stdout)
	return color.Bold(text).String()
}

func RedText(text string) string {
	color := Color(os.Stdout)
	return color.Red(text).String()
}

func GreenText(text string) string {
	color := Color(os.Stdout)
	return color.Green(text).String()
}

func YellowText(text string) string {
	color := Color(os.Stderr)
	return color.Yellow(text).String()
}

func BlueText(text string) string {
	color := Color(os.Stdout)
	return color.Blue(text).String()
}

func MagentaText(text string) string {
	color := Color(os.Stdout)
	return color.Magenta(text).String()
}

// KeyValues prints a map as aligned "key: value" lines sorted by key.
func KeyValues(m map[string]string) string {
	if len(m) == 0 {
		return ""
	}

	keys := make([]string, 0, len(m))
	longest := 0
	for k := range m {
		keys = append(keys, k)
		if len(k) > longest {
			longest = len(k)
		}
	}
	sort.Strings(keys)
	if longest > maxKeyPadding {
		longest = maxKeyPadding
	}

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%-*s %s\n", longest+1, k+":", m[k])
	}
	return b.String()
}

func UnorderedList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}

// PrefixLines puts prefix in front of every line of text.
func PrefixLines(text string, prefix string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Truncate shortens text to n characters by cutting out its middle.
func Truncate(text string, n int) string {
	if len(text) <= n {
		return text
	}
	avail := n - 3
	if avail < 2 {
		avail = 2
	}
	front := (avail + 1) / 2
	back := avail / 2
	return text[:front] + "..." + text[len(text)-back:]
}
