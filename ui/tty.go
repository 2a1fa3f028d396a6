package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// SupportsANSICodesFor reports whether w is a terminal that should get colors.
// Setting NO_COLOR disables colors everywhere.
func SupportsANSICodesFor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsInteractive reports whether the user can answer prompts.
func IsInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
}
