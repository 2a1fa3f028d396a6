package git

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const (
	fieldSep  = "\x1f"
	recordSep = "\x00"
	tagPrefix = "refs/tags/"
)

var remoteRegex = regexp.MustCompile(`(?:(?:.*?\@.*?\..*?\:)|(?:https?\:\/\/.*?\..*?\/))(?P<User>.*?)\/(?P<Repo>.*?)\.git`)

/**
 * Parses url with the given regular expression and returns the
 * group values defined in the expression.
 * https://stackoverflow.com/a/39635221
 */
func getParams(compRegEx *regexp.Regexp, test string) (paramsMap map[string]string) {
	match := compRegEx.FindStringSubmatch(test)

	paramsMap = make(map[string]string)
	for i, name := range compRegEx.SubexpNames() {
		if i > 0 && i < len(match) {
			paramsMap[name] = match[i]
		}
	}
	return paramsMap
}

func execGit(ctx context.Context, path string, cmd ...string) ([]byte, error) {
	args := []string{}
	args = append(args, "-C", path)
	args = append(args, cmd...)
	gitCmd := exec.CommandContext(ctx, "git", args...)

	var stderr bytes.Buffer
	gitCmd.Stderr = &stderr
	out, err := gitCmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.Join(cmd, " ")
		}
		return nil, errors.Wrap(err, msg)
	}
	return out, nil
}

func IsRepo(ctx context.Context, path string) bool {
	_, err := execGit(ctx, path, "rev-parse", "--git-dir")
	return err == nil
}

// ResolveRef returns the full hash of the commit ref points at.
func ResolveRef(ctx context.Context, path, ref string) (string, error) {
	out, err := execGit(ctx, path, "rev-parse", "--verify", "--quiet", ref+"^{commit}")
	if err != nil {
		return "", errors.Wrapf(err, "resolve %s", ref)
	}
	return strings.TrimSpace(string(out)), nil
}

func RemoteURL(ctx context.Context, path, remote string) (string, error) {
	out, err := execGit(ctx, path, "remote", "get-url", remote)
	if err != nil {
		return "", err
	}
	return strings.Trim(string(out), " \n"), nil
}

// ParseRemote extracts owner and repository name from an ssh or https remote URL.
func ParseRemote(remoteUrl string) (owner string, repo string, ok bool) {
	if !strings.HasSuffix(remoteUrl, ".git") {
		remoteUrl += ".git"
	}
	match := getParams(remoteRegex, remoteUrl)
	if match["User"] == "" || match["Repo"] == "" {
		return "", "", false
	}
	return match["User"], match["Repo"], true
}

func RepoName(ctx context.Context, path string) (string, error) {
	if owner, repo, err := GitHubRepo(ctx, path); err == nil && owner != "" {
		return owner + "/" + repo, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	base := filepath.Base(abs)
	return base, nil
}

// GitHubRepo returns owner and name of the origin remote when it is hosted on
// github.com. Both are empty for other hosts or repositories without origin.
func GitHubRepo(ctx context.Context, path string) (string, string, error) {
	remoteUrl, err := RemoteURL(ctx, path, "origin")
	if err != nil {
		return "", "", nil
	}
	if !strings.Contains(remoteUrl, "github.com") {
		return "", "", nil
	}
	owner, repo, ok := ParseRemote(remoteUrl)
	if !ok {
		return "", "", nil
	}
	return owner, repo, nil
}

// Log lists the commits reachable from ref, newest first.
func Log(ctx context.Context, path, ref string) ([]CommitInfo, error) {
	out, err := execGit(ctx, path, "log", "-z", "--format=format:%H"+"%x1f"+"%an"+"%x1f"+"%B", ref, "--")
	if err != nil {
		return nil, errors.Wrapf(err, "log %s", ref)
	}
	return parseLog(out), nil
}

func parseLog(out []byte) []CommitInfo {
	commits := []CommitInfo{}
	for _, record := range strings.Split(string(out), recordSep) {
		record = strings.TrimPrefix(record, "\n")
		if record == "" {
			continue
		}
		fields := strings.SplitN(record, fieldSep, 3)
		if len(fields) != 3 {
			continue
		}
		commits = append(commits, CommitInfo{
			Hash:    fields[0],
			Author:  fields[1],
			Message: fields[2],
		})
	}
	return commits
}

// Tags lists tag references with the commit each one points at.
func Tags(ctx context.Context, path string) ([]TagInfo, error) {
	out, err := execGit(ctx, path, "for-each-ref", "--format=%(refname)%09%(objectname)%09%(*objectname)", tagPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "list tags")
	}
	return parseTags(out), nil
}

func parseTags(out []byte) []TagInfo {
	tags := []TagInfo{}
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			continue
		}
		hash := fields[1]
		// annotated tags point at a tag object, the peeled hash is the commit
		if fields[2] != "" {
			hash = fields[2]
		}
		tags = append(tags, TagInfo{
			Name: strings.TrimPrefix(fields[0], tagPrefix),
			Hash: hash,
		})
	}
	return tags
}

func GetAllMetadata(ctx context.Context, path string) (GitMetadata, error) {
	if !IsRepo(ctx, path) {
		return GitMetadata{IsRepo: false}, nil
	}

	name, err := RepoName(ctx, path)
	if err != nil {
		return GitMetadata{IsRepo: true}, err
	}

	owner, repo, err := GitHubRepo(ctx, path)
	if err != nil {
		return GitMetadata{IsRepo: true}, err
	}

	head, err := ResolveRef(ctx, path, "HEAD")
	if err != nil {
		// a repository without commits has no HEAD yet
		head = ""
	}

	return GitMetadata{
		IsRepo:      true,
		RepoName:    name,
		GitHubOwner: owner,
		GitHubRepo:  repo,
		Head:        head,
	}, nil
}
