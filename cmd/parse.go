package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/railwayapp/changelog/entity"
	"github.com/railwayapp/changelog/errors"
	"github.com/railwayapp/changelog/lib/conventional"
	"github.com/railwayapp/changelog/ui"
)

func (h *Handler) Parse(ctx context.Context, req *entity.CommandRequest) error {
	text, err := readMessage(req)
	if err != nil {
		return err
	}

	msg := h.ctrl.ParseMessage(text)
	fmt.Print(describeMessage(msg))
	return nil
}

// readMessage takes the message from the arguments, from piped stdin, or
// from a prompt.
func readMessage(req *entity.CommandRequest) (string, error) {
	if len(req.Args) > 0 {
		return strings.Join(req.Args, " "), nil
	}
	if !ui.IsInteractive() {
		b, err := io.ReadAll(req.Cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		if len(b) == 0 {
			return "", errors.MessageNotSpecified
		}
		return string(b), nil
	}

	text, err := ui.PromptText("Commit message")
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", errors.MessageNotSpecified
	}
	return text, nil
}

func describeMessage(msg conventional.Message) string {
	if !msg.IsConventional() {
		return ui.KeyValues(map[string]string{
			"conventional": ui.RedText("no"),
			"text":         strconv.Quote(msg.Text()),
		})
	}

	fields := map[string]string{
		"conventional": ui.GreenText("yes"),
		"tag":          ui.BlueText(msg.Tag()),
		"breaking":     strconv.FormatBool(msg.IsBreaking()),
		"text":         strconv.Quote(msg.Text()),
	}
	if msg.Scope() != "" {
		fields["scope"] = ui.MagentaText(msg.Scope())
	}
	if msg.IsBreaking() {
		fields["breaking"] = ui.RedText("true")
	}
	return ui.KeyValues(fields)
}
