package cmd

import (
	"context"
	"os"

	"github.com/railwayapp/changelog/entity"
)

func (h *Handler) Docs(ctx context.Context, req *entity.CommandRequest) error {
	shortcut := ""
	if len(req.Args) > 0 {
		shortcut = req.Args[0]
	}
	repoPath, _ := req.Cmd.Flags().GetString("repo")
	return h.ctrl.OpenDocs(ctx, os.Stdout, repoPath, shortcut)
}
