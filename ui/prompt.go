package ui

import (
	"fmt"

	"github.com/manifoldco/promptui"
)

type Prompt string

const (
	OverwritePrompt Prompt = "%s already exists. Overwrite it"
)

// PromptOverwrite asks before replacing an existing file. It returns false
// when the user declines.
func PromptOverwrite(path string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf(string(OverwritePrompt), path),
		IsConfirm: true,
	}
	_, err := prompt.Run()
	if err == promptui.ErrAbort {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func PromptText(text string) (string, error) {
	prompt := promptui.Prompt{
		Label: text,
	}
	return prompt.Run()
}
