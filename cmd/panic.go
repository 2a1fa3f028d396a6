package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/railwayapp/changelog/constants"
	"github.com/railwayapp/changelog/entity"
	"github.com/railwayapp/changelog/ui"
)

func (h *Handler) Panic(ctx context.Context, req *entity.PanicRequest) error {
	fmt.Fprintf(os.Stderr, "%s changelog %s crashed: %s\n", ui.RedText("🚨"), req.Command, req.PanicError)
	fmt.Fprintf(os.Stderr, "args: %s\n\n", strings.Join(req.Args, " "))
	fmt.Fprintln(os.Stderr, ui.PrefixLines(req.Stacktrace, "    "))
	fmt.Fprintf(os.Stderr, "Please report this at %s\n", constants.DocsURLMap["issues"])
	return nil
}
