package cmd

import (
	"github.com/hance08/statement/internal/logging"
	"github.com/hance08/statement/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewPasscodeCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passcode",
		Short: "Manage the passcode",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "change",
		Short: "Change the passcode",
		Args:  cobra.NoArgs,
		RunE: d.wrap("PasscodeChange", func(cmd *cobra.Command, args []string, logData *logging.LogData) error {
			current, err := prompts.PromptPasscode("Current passcode:")
			if err != nil {
				return err
			}
			next, err := prompts.PromptNewPasscode("New passcode:")
			if err != nil {
				return err
			}

			if err := d.app.Service.Passcode.Change(current, next); err != nil {
				return err
			}
			pterm.Success.Println("Passcode changed.")
			return nil
		}),
	})

	return cmd
}
