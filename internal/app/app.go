package app

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/statement/internal/config"
	"github.com/hance08/statement/internal/constants"
	"github.com/hance08/statement/internal/logging"
	"github.com/hance08/statement/internal/service"
	"github.com/hance08/statement/internal/store"
	"github.com/sirupsen/logrus"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Log     *logrus.Entry
	LogPath string
}

// NewApp opens the log file and the ledger store named by cfg, then builds
// the service on top of them.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	appDir, err := GetAppDataDir()
	if err != nil {
		return nil, nil, err
	}

	logPath := expandPath(cfg.Log.Path)
	if logPath == "" {
		logPath = filepath.Join(appDir, "statement.log")
	}
	var logOut io.WriteCloser
	logOut, err = logging.OpenLogFile(logPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.SetupLogging(cfg.Log.Level, logOut)
	if err != nil {
		_ = logOut.Close()
		return nil, nil, err
	}
	log := logging.WithRun(logger)

	storePath := StorePath(cfg.Storage.Driver, cfg.Storage.Path, appDir)
	repo, err := store.NewStore(cfg.Storage.Driver, storePath, migrationFS)
	if err != nil {
		_ = logOut.Close()
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.WithFields(logrus.Fields{
		"driver":   repo.Driver(),
		"location": repo.Location(),
	}).Debug("Store.Open.Complete")

	svc := service.NewService(repo, cfg, log)

	cleanup := func() {
		if err := repo.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing storage: %v\n", err)
		}
		_ = logOut.Close()
	}

	return &App{
		Service: svc,
		Store:   repo,
		Log:     log,
		LogPath: logPath,
	}, cleanup, nil
}

// StorePath resolves the configured storage path. An empty path puts the
// data under appDir with a name that depends on the driver.
func StorePath(driver, path, appDir string) string {
	if path != "" {
		return expandPath(path)
	}

	switch driver {
	case constants.DriverSQLite:
		return filepath.Join(appDir, "statement.db")
	case constants.DriverBolt:
		return filepath.Join(appDir, "statement.bolt")
	default:
		return filepath.Join(appDir, "data")
	}
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

func expandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	if path[1] == '/' || path[1] == '\\' {
		return filepath.Join(home, path[2:])
	}
	return path
}
