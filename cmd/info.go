package cmd

import (
	"os"
	"path/filepath"

	"github.com/hance08/statement/internal/app"
	"github.com/hance08/statement/internal/constants"
	"github.com/hance08/statement/internal/logging"
	"github.com/hance08/statement/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	d *deps
}

func NewInfoCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:         "info",
		Short:       "Display application information",
		Long:        `Display current configuration, storage location, and system details.`,
		Annotations: map[string]string{skipUnlock: "true"},
		Args:        cobra.NoArgs,
		RunE: d.wrap("Info", func(cmd *cobra.Command, args []string, logData *logging.LogData) error {
			runner := &infoRunner{d: d}
			return runner.Run()
		}),
	}
}

func (r *infoRunner) Run() error {
	cfg := r.d.cfg
	repo := r.d.app.Store

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	appDir := getAppDataDirOrUnknown()

	storagePath := repo.Location()
	if repo.Driver() == constants.DriverFile {
		storagePath = filepath.Join(storagePath, constants.DocTransactions+".json")
	}
	storageExists := false
	if _, err := os.Stat(storagePath); err == nil {
		storageExists = true
	}

	passcodeSet, err := r.d.app.Service.Passcode.IsSet()
	if err != nil {
		return err
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		StorageDriver:   repo.Driver(),
		StoragePath:     storagePath,
		StorageExists:   storageExists,
		LogPath:         r.d.app.LogPath,
		DefaultCurrency: cfg.Defaults.Currency,
		ConfirmEdit:     cfg.Security.ConfirmEdit,
		PasscodeSet:     passcodeSet,
		AppDataDir:      appDir,
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
