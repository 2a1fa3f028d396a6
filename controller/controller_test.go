package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/railwayapp/changelog/entity"
	"github.com/railwayapp/changelog/errors"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	history *entity.History
	tags    []*entity.Tag
	meta    *entity.RepoMetadata
	err     error
}

func (f *fakeRepo) CommitHistory(ctx context.Context, ref string) (*entity.History, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.history, nil
}

func (f *fakeRepo) Tags(ctx context.Context) ([]*entity.Tag, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tags, nil
}

func (f *fakeRepo) Metadata(ctx context.Context) (*entity.RepoMetadata, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.meta == nil {
		return &entity.RepoMetadata{Name: "repo"}, nil
	}
	return f.meta, nil
}

type fakeGitHub struct {
	logins  map[string]string
	failAt  string
	lookups []string
}

func (f *fakeGitHub) CommitAuthorLogin(ctx context.Context, req *entity.CommitAuthorRequest) (string, error) {
	f.lookups = append(f.lookups, req.CommitID)
	if req.CommitID == f.failAt {
		return "", errors.GitHubLookupFailed
	}
	return f.logins[req.CommitID], nil
}

func (f *fakeGitHub) LatestRelease(ctx context.Context, owner string, repo string) (string, error) {
	return "v9.9.9", nil
}

// recorder is a render.Renderer that records the events it receives.
type recorder struct {
	events []string
}

func (r *recorder) Start() error {
	r.events = append(r.events, "start")
	return nil
}

func (r *recorder) Release(name string) error {
	r.events = append(r.events, "release "+name)
	return nil
}

func (r *recorder) Commit(c *entity.CommitDescription) error {
	event := "commit " + c.ID() + " " + c.Message().String()
	if author, ok := c.Author(); ok {
		event += " by " + author
	}
	r.events = append(r.events, event)
	return nil
}

func (r *recorder) Finish() error {
	r.events = append(r.events, "finish")
	return nil
}

func newTestController(repo *fakeRepo, ghc *fakeGitHub) (*Controller, *[]string) {
	var warnings []string
	return &Controller{
		ghc: ghc,
		newRepo: func(path string) Repository {
			return repo
		},
		warn: func(format string, args ...interface{}) {
			warnings = append(warnings, fmt.Sprintf(format, args...))
		},
		openURL: func(repoName string, url string) error {
			return nil
		},
	}, &warnings
}

func testHistory() *entity.History {
	return &entity.History{
		IDs: []string{"c4", "c3", "0123456789abcdef", "c2", "c1"},
		Commits: []*entity.CommitRecord{
			{ID: "c4", Message: "feat(cli): add --group", Author: "Alice"},
			{ID: "c3", Message: "fix: typo", Author: "Bob"},
			{ID: "c2", Message: "Merge branch 'main'", Author: ""},
			{ID: "c1", Message: "feat!: first release", Author: "Alice"},
		},
		Skipped: []string{"0123456789abcdef"},
	}
}

func TestCommitDescriptions(t *testing.T) {
	ctrl, warnings := newTestController(&fakeRepo{history: testHistory()}, &fakeGitHub{})

	commits, err := ctrl.CommitDescriptions(context.Background(), &entity.ChangelogRequest{Ref: "HEAD"})
	require.NoError(t, err)
	require.Len(t, commits, 4)

	require.Equal(t, "c4", commits[0].ID())
	require.Equal(t, "feat", commits[0].Message().Tag())
	require.Equal(t, "cli", commits[0].Message().Scope())
	require.Equal(t, "add --group", commits[0].Message().Text())

	author, ok := commits[0].Author()
	require.True(t, ok)
	require.Equal(t, "Alice", author)

	_, ok = commits[2].Author()
	require.False(t, ok)
	require.False(t, commits[2].Message().IsConventional())
	require.Equal(t, "Merge branch 'main'", commits[2].Message().Text())

	require.True(t, commits[3].Message().IsBreaking())

	require.Equal(t, []string{"skipping commit 0123456: message is not valid UTF-8"}, *warnings)
}

func TestCommitDescriptionsConventionalOnly(t *testing.T) {
	ctrl, _ := newTestController(&fakeRepo{history: testHistory()}, &fakeGitHub{})

	commits, err := ctrl.CommitDescriptions(context.Background(), &entity.ChangelogRequest{ConventionalOnly: true})
	require.NoError(t, err)

	ids := []string{}
	for _, c := range commits {
		ids = append(ids, c.ID())
	}
	require.Equal(t, []string{"c4", "c3", "c1"}, ids)
}

func TestCommitDescriptionsError(t *testing.T) {
	ctrl, _ := newTestController(&fakeRepo{err: errors.RepositoryNotFound}, &fakeGitHub{})

	_, err := ctrl.CommitDescriptions(context.Background(), &entity.ChangelogRequest{})
	require.Equal(t, errors.RepositoryNotFound, err)
}

func TestWriteChangelog(t *testing.T) {
	tests := []struct {
		name       string
		tags       []*entity.Tag
		unreleased string
		expected   []string
	}{
		{
			name: "untagged history",
			expected: []string{
				"start",
				"commit c4 feat(cli): add --group by Alice",
				"commit c3 fix: typo by Bob",
				"commit c2 Merge branch 'main'",
				"commit c1 feat!: first release by Alice",
				"finish",
			},
		},
		{
			name:       "unreleased section",
			tags:       []*entity.Tag{{Name: "v1.0.0", CommitID: "c1"}},
			unreleased: "Unreleased",
			expected: []string{
				"start",
				"release Unreleased",
				"commit c4 feat(cli): add --group by Alice",
				"commit c3 fix: typo by Bob",
				"commit c2 Merge branch 'main'",
				"release v1.0.0",
				"commit c1 feat!: first release by Alice",
				"finish",
			},
		},
		{
			name: "head is tagged",
			tags: []*entity.Tag{
				{Name: "v1.0.0", CommitID: "c1"},
				{Name: "v1.1.0", CommitID: "c4"},
				{Name: "latest", CommitID: "c4"},
				{Name: "v1.1.0-rc.1", CommitID: "c4"},
				{Name: "orphan", CommitID: "c0"},
			},
			unreleased: "Unreleased",
			expected: []string{
				"start",
				"release v1.1.0-rc.1",
				"release v1.1.0",
				"release latest",
				"commit c4 feat(cli): add --group by Alice",
				"commit c3 fix: typo by Bob",
				"commit c2 Merge branch 'main'",
				"release v1.0.0",
				"commit c1 feat!: first release by Alice",
				"finish",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, _ := newTestController(&fakeRepo{history: testHistory(), tags: tt.tags}, &fakeGitHub{})
			r := &recorder{}

			err := ctrl.WriteChangelog(context.Background(), &entity.ChangelogRequest{Unreleased: tt.unreleased}, r)
			require.NoError(t, err)
			require.Equal(t, tt.expected, r.events)
		})
	}
}

func TestWriteChangelogTagOnFilteredCommit(t *testing.T) {
	history := &entity.History{
		IDs: []string{"c3", "c2", "c1"},
		Commits: []*entity.CommitRecord{
			{ID: "c3", Message: "feat: after"},
			{ID: "c2", Message: "Release v1.0.0"},
			{ID: "c1", Message: "fix: before"},
		},
	}
	tags := []*entity.Tag{{Name: "v1.0.0", CommitID: "c2"}}
	ctrl, _ := newTestController(&fakeRepo{history: history, tags: tags}, &fakeGitHub{})
	r := &recorder{}

	err := ctrl.WriteChangelog(context.Background(), &entity.ChangelogRequest{
		Unreleased:       "Unreleased",
		ConventionalOnly: true,
	}, r)
	require.NoError(t, err)
	require.Equal(t, []string{
		"start",
		"release Unreleased",
		"commit c3 feat: after",
		"release v1.0.0",
		"commit c1 fix: before",
		"finish",
	}, r.events)
}

func TestWriteChangelogTagOnSkippedCommit(t *testing.T) {
	tests := []struct {
		name     string
		history  *entity.History
		expected []string
	}{
		{
			name: "skipped commit in the middle",
			history: &entity.History{
				IDs: []string{"c3", "c2", "c1"},
				Commits: []*entity.CommitRecord{
					{ID: "c3", Message: "feat: after"},
					{ID: "c1", Message: "fix: before"},
				},
				Skipped: []string{"c2"},
			},
			expected: []string{
				"start",
				"release Unreleased",
				"commit c3 feat: after",
				"release v1.0.0",
				"commit c1 fix: before",
				"finish",
			},
		},
		{
			name: "skipped commit at the head",
			history: &entity.History{
				IDs: []string{"c2", "c1"},
				Commits: []*entity.CommitRecord{
					{ID: "c1", Message: "fix: before"},
				},
				Skipped: []string{"c2"},
			},
			expected: []string{
				"start",
				"release v1.0.0",
				"commit c1 fix: before",
				"finish",
			},
		},
		{
			name: "skipped commit at the root",
			history: &entity.History{
				IDs: []string{"c3", "c2"},
				Commits: []*entity.CommitRecord{
					{ID: "c3", Message: "feat: after"},
				},
				Skipped: []string{"c2"},
			},
			expected: []string{
				"start",
				"release Unreleased",
				"commit c3 feat: after",
				"release v1.0.0",
				"finish",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := []*entity.Tag{{Name: "v1.0.0", CommitID: "c2"}}
			ctrl, warnings := newTestController(&fakeRepo{history: tt.history, tags: tags}, &fakeGitHub{})
			r := &recorder{}

			err := ctrl.WriteChangelog(context.Background(), &entity.ChangelogRequest{Unreleased: "Unreleased"}, r)
			require.NoError(t, err)
			require.Equal(t, tt.expected, r.events)
			require.Len(t, *warnings, 1)
		})
	}
}

func TestWriteChangelogEmptyHistory(t *testing.T) {
	ctrl, _ := newTestController(&fakeRepo{history: &entity.History{}}, &fakeGitHub{})
	r := &recorder{}

	err := ctrl.WriteChangelog(context.Background(), &entity.ChangelogRequest{Unreleased: "Unreleased"}, r)
	require.NoError(t, err)
	require.Equal(t, []string{"start", "finish"}, r.events)
}

func TestResolveAuthors(t *testing.T) {
	repo := &fakeRepo{
		history: testHistory(),
		meta:    &entity.RepoMetadata{GitHubOwner: "railwayapp", GitHubRepo: "changelog"},
	}
	ghc := &fakeGitHub{logins: map[string]string{"c4": "alice", "c3": "bob"}}
	ctrl, warnings := newTestController(repo, ghc)

	commits, err := ctrl.CommitDescriptions(context.Background(), &entity.ChangelogRequest{
		ResolveAuthors: true,
		GitHubToken:    "secret",
	})
	require.NoError(t, err)
	// Alice's second commit reuses the login found for her first one
	require.Equal(t, []string{"c4", "c3", "c2"}, ghc.lookups)

	authors := []string{}
	for _, c := range commits {
		author, _ := c.Author()
		authors = append(authors, author)
	}
	require.Equal(t, []string{"@alice", "@bob", "", "@alice"}, authors)
	require.Len(t, *warnings, 1)
}

func TestResolveAuthorsStopsAtFirstFailure(t *testing.T) {
	repo := &fakeRepo{
		history: testHistory(),
		meta:    &entity.RepoMetadata{GitHubOwner: "railwayapp", GitHubRepo: "changelog"},
	}
	ghc := &fakeGitHub{logins: map[string]string{"c4": "alice", "c1": "carol"}, failAt: "c3"}
	ctrl, warnings := newTestController(repo, ghc)

	commits, err := ctrl.CommitDescriptions(context.Background(), &entity.ChangelogRequest{ResolveAuthors: true})
	require.NoError(t, err)
	require.Equal(t, []string{"c4", "c3"}, ghc.lookups)

	author, _ := commits[0].Author()
	require.Equal(t, "@alice", author)
	author, _ = commits[3].Author()
	require.Equal(t, "Alice", author)

	require.Len(t, *warnings, 2)
	require.True(t, strings.HasPrefix((*warnings)[1], "not resolving GitHub authors"))
}

func TestResolveAuthorsWithoutGitHubRemote(t *testing.T) {
	ghc := &fakeGitHub{}
	ctrl, warnings := newTestController(&fakeRepo{history: testHistory()}, ghc)

	_, err := ctrl.CommitDescriptions(context.Background(), &entity.ChangelogRequest{ResolveAuthors: true})
	require.NoError(t, err)
	require.Empty(t, ghc.lookups)
	require.Len(t, *warnings, 2)
}

func TestParseMessage(t *testing.T) {
	ctrl, _ := newTestController(&fakeRepo{}, &fakeGitHub{})

	msg := ctrl.ParseMessage("feat(design)!: lorem ipsum")
	require.Equal(t, "feat", msg.Tag())
	require.Equal(t, "design", msg.Scope())
	require.True(t, msg.IsBreaking())
	require.Equal(t, "lorem ipsum", msg.Text())
}

func TestOpenDocs(t *testing.T) {
	ctrl, _ := newTestController(&fakeRepo{meta: &entity.RepoMetadata{GitHubOwner: "acme", GitHubRepo: "widgets"}}, &fakeGitHub{})

	var opened []string
	ctrl.openURL = func(repoName string, url string) error {
		opened = append(opened, repoName, url)
		return nil
	}

	require.NoError(t, ctrl.OpenDocs(context.Background(), nil, ".", "releases"))
	require.Equal(t, []string{"acme/widgets", "https://github.com/%s/releases"}, opened)

	err := ctrl.OpenDocs(context.Background(), nil, ".", "nope")
	require.Equal(t, errors.DocsShortcutNotFound, err)

	var out bytes.Buffer
	require.NoError(t, ctrl.OpenDocs(context.Background(), &out, ".", ""))
	require.Contains(t, out.String(), "- releases  => https://github.com/acme/widgets/releases\n")
	require.True(t, strings.HasPrefix(out.String(), "- changelog => "))
}

func TestGetLatestVersion(t *testing.T) {
	ctrl, _ := newTestController(&fakeRepo{}, &fakeGitHub{})

	latest, err := ctrl.GetLatestVersion(context.Background())
	require.NoError(t, err)
	require.Equal(t, "v9.9.9", latest)
}

func TestRepoMetadata(t *testing.T) {
	ctrl, _ := newTestController(&fakeRepo{meta: &entity.RepoMetadata{GitHubOwner: "acme", GitHubRepo: "widgets"}}, &fakeGitHub{})
	require.Equal(t, "acme", ctrl.RepoMetadata(context.Background(), ".").GitHubOwner)

	ctrl, _ = newTestController(&fakeRepo{err: errors.RepositoryNotFound}, &fakeGitHub{})
	require.Nil(t, ctrl.RepoMetadata(context.Background(), "."))
}
