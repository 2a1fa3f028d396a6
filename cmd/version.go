package cmd

import (
	"context"
	"fmt"

	"github.com/railwayapp/changelog/constants"
	"github.com/railwayapp/changelog/entity"
	"github.com/railwayapp/changelog/ui"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) error {
	fmt.Printf("changelog version %s\n", constants.Version)
	if constants.Version != "source" {
		latest, err := h.ctrl.GetLatestVersion(ctx)
		if err != nil {
			ui.Warn("could not check for a newer version: %s", err)
			return nil
		}
		if latest != "" && latest != constants.Version {
			fmt.Println("A newer version of changelog is available, please update to:", latest)
		}
	}
	return nil
}
