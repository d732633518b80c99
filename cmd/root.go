package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hance08/statement/internal/app"
	"github.com/hance08/statement/internal/config"
	"github.com/hance08/statement/internal/constants"
	"github.com/hance08/statement/internal/errhandler"
	"github.com/hance08/statement/internal/logging"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// skipUnlock marks commands that run without the passcode.
const skipUnlock = "skip-unlock"

var cfgFile string

// deps is filled in by the root PersistentPreRunE, so that --config is parsed
// before anything is opened.
type deps struct {
	migrations fs.FS
	cfg        *config.Config
	app        *app.App
	cleanup    func()

	// passcode is the --passcode flag; unlocked is the code that passed the
	// unlock step.
	passcode string
	unlocked string
}

// wrap defers logger lookup until the command runs.
func (d *deps) wrap(name string, run func(cmd *cobra.Command, args []string, logData *logging.LogData) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return logging.Wrap(name, d.app.Log, run)(cmd, args)
	}
}

func (d *deps) currency() string {
	return d.cfg.Defaults.Currency
}

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	d := &deps{migrations: migrations}
	rootCmd := newRootCmd(d)

	err := rootCmd.Execute()
	if d.cleanup != nil {
		d.cleanup()
	}
	if err != nil {
		if errhandler.IsInterrupt(err) {
			pterm.Warning.Println("Operation Cancelled")
			os.Exit(0)
		}
		pterm.Error.Println(capitalize(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(d *deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "statement is a passcode-protected personal account statement",
		Long: `statement records deposits and withdrawals, keeps a running balance,
and stores everything on local disk behind a 4-digit passcode.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return d.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringVar(&d.passcode, "passcode", "", "passcode to unlock without prompting")

	rootCmd.AddCommand(NewAddCmd(d))
	rootCmd.AddCommand(NewDepositCmd(d))
	rootCmd.AddCommand(NewWithdrawCmd(d))
	rootCmd.AddCommand(NewListCmd(d))
	rootCmd.AddCommand(NewShowCmd(d))
	rootCmd.AddCommand(NewEditCmd(d))
	rootCmd.AddCommand(NewDeleteCmd(d))
	rootCmd.AddCommand(NewBalanceCmd(d))
	rootCmd.AddCommand(NewPasscodeCmd(d))
	rootCmd.AddCommand(NewExportCmd(d))
	rootCmd.AddCommand(NewInfoCmd(d))

	return rootCmd
}

func (d *deps) setup(cmd *cobra.Command) error {
	if err := initConfig(); err != nil {
		return err
	}

	d.cfg = config.NewDefault()
	if err := viper.Unmarshal(d.cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}
	d.cfg.ConfigPath = viper.ConfigFileUsed()

	application, cleanup, err := app.NewApp(d.cfg, d.migrations)
	if err != nil {
		return err
	}
	d.app, d.cleanup = application, cleanup

	if cmd.Annotations[skipUnlock] == "true" {
		return nil
	}
	return d.unlock()
}

func initConfig() error {
	// A missing .env is fine.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	for key, value := range config.NewDefault().Keys() {
		viper.SetDefault(key, value)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.GetAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	return nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
