package prompts

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/statement/internal/ui"
)

// PromptConfirm asks a yes/no question. Destructive questions default to No.
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &confirm, ui.IconOption()); err != nil {
		return false, err
	}

	return confirm, nil
}
