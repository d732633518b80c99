package logging

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Wrap logs Start, Complete or Error around a cobra command body, with its
// duration in milliseconds.
func Wrap(
	loggingName string,
	log logrus.FieldLogger,
	run func(cmd *cobra.Command, args []string, logData *LogData) error,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logData := NewLogData(log)
		log.Infof("Command.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		err := run(cmd, args, logData)
		endTimer()

		if err != nil {
			logData.Log().WithError(err).Errorf("Command.%v.Error", loggingName)
			return err
		}

		logData.Log().Infof("Command.%v.Complete", loggingName)
		return nil
	}
}
