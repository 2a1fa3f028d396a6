package ui

import (
	"fmt"
	"os"
)

// Warn prints a warning to stderr so it never ends up in piped output.
func Warn(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", YellowText("warning:"), fmt.Sprintf(format, args...))
}

func Error(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
}

func Success(format string, args ...interface{}) {
	color := Color(os.Stderr)
	fmt.Fprintf(os.Stderr, "%s %s\n", color.Green("✔"), fmt.Sprintf(format, args...))
}
