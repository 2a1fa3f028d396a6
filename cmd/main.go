package cmd

import (
	"github.com/railwayapp/changelog/configs"
	"github.com/railwayapp/changelog/controller"
)

type Handler struct {
	ctrl *controller.Controller
	cfg  *configs.Configs
}

func New() *Handler {
	return &Handler{
		ctrl: controller.New(),
		cfg:  configs.New(),
	}
}

// Configs exposes the configuration so the root command can bind its flags.
func (h *Handler) Configs() *configs.Configs {
	return h.cfg
}
