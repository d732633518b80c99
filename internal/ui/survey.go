package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption gives survey questions the same "-" marker and help icon as the
// rest of the prompts.
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
		icons.Help.Text = "?"
		icons.Help.Format = "cyan"
	})
}
