package cmd

import (
	"context"
	"io"
	"os"

	"github.com/railwayapp/changelog/constants"
	"github.com/railwayapp/changelog/entity"
	"github.com/railwayapp/changelog/render"
	"github.com/railwayapp/changelog/ui"
)

func (h *Handler) Changelog(ctx context.Context, req *entity.CommandRequest) error {
	if len(req.Args) > 0 {
		h.cfg.SetOutput(req.Args[0])
	}

	cfg, err := h.cfg.GetChangelogConfig()
	if err != nil {
		return err
	}
	if cfg.OutputDefaulted {
		ui.Warn("no output file given, writing to %s", ui.Bold(cfg.Output))
	}

	opts := render.Options{
		Title: cfg.Title,
		Group: cfg.Group,
		Body:  cfg.Body,
	}
	if cfg.Links {
		opts.Repo = h.ctrl.RepoMetadata(ctx, cfg.RepoPath)
	}

	var out outputFile = nopCloser{os.Stdout}
	if cfg.Output != constants.StdoutOutput {
		if out, err = createOutput(cfg.Output, cfg.Force); err != nil {
			return err
		}
	}

	r, err := render.New(cfg.Format, out, opts)
	if err != nil {
		out.Abort()
		return err
	}

	ui.StartSpinner(&ui.SpinnerCfg{
		Message: "Reading history of " + cfg.Ref,
		Tokens:  ui.Branches,
	})
	err = h.ctrl.WriteChangelog(ctx, &entity.ChangelogRequest{
		RepoPath:         cfg.RepoPath,
		Ref:              cfg.Ref,
		Unreleased:       cfg.Unreleased,
		ConventionalOnly: cfg.ConventionalOnly,
		ResolveAuthors:   cfg.GitHub.ResolveAuthors,
		GitHubToken:      cfg.GitHub.Token,
	}, r)
	ui.StopSpinner("")
	if err != nil {
		out.Abort()
		return err
	}

	if err := out.Commit(); err != nil {
		return err
	}
	if cfg.Output != constants.StdoutOutput {
		ui.Success("Wrote %s", ui.Bold(cfg.Output))
	}
	return nil
}

// nopCloser is the output used for stdout, which is never replaced.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Commit() error { return nil }
func (nopCloser) Abort()        {}
