package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/railwayapp/changelog/errors"
	"github.com/railwayapp/changelog/lib/conventional"
	"github.com/stretchr/testify/require"
)

func TestDescribeMessage(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		input    string
		expected string
	}{
		{
			input: "feat(design)!: lorem ipsum",
			expected: "breaking:     true\n" +
				"conventional: yes\n" +
				"scope:        design\n" +
				"tag:          feat\n" +
				"text:         \"lorem ipsum\"\n",
		},
		{
			input: "fix: typo",
			expected: "breaking:     false\n" +
				"conventional: yes\n" +
				"tag:          fix\n" +
				"text:         \"typo\"\n",
		},
		{
			input: "lorem ipsum:",
			expected: "conventional: no\n" +
				"text:         \"lorem ipsum:\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, describeMessage(conventional.Parse(tt.input)))
		})
	}
}

func TestCreateOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CHANGELOG.md")

	out, err := createOutput(path, false)
	require.NoError(t, err)
	_, err = out.Write([]byte("# Changelog\n"))
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))

	require.NoError(t, out.Commit())
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "# Changelog\n", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestCreateOutputExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CHANGELOG.md")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

	// tests never run with a terminal on stdin, so no prompt is shown
	_, err := createOutput(path, false)
	require.Equal(t, errors.OutputExists, err)

	out, err := createOutput(path, true)
	require.NoError(t, err)
	_, err = out.Write([]byte("new\n"))
	require.NoError(t, err)
	out.Abort()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "old\n", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
