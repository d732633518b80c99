package views

import (
	"github.com/hance08/statement/internal/ui"
	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath      string
	StorageDriver   string
	StoragePath     string
	StorageExists   bool
	LogPath         string
	DefaultCurrency string
	ConfirmEdit     bool
	PasscodeSet     bool
	AppDataDir      string
}

func RenderSystemInfo(data SystemInfoItem) error {
	storageStatus := pterm.Green("Found")
	if !data.StorageExists {
		storageStatus = pterm.Red("Not Found (Will be created)")
	}

	passcode := pterm.Green("Set")
	if !data.PasscodeSet {
		passcode = pterm.Yellow("Not set (asked on first use)")
	}

	editGate := "No"
	if data.ConfirmEdit {
		editGate = "Yes"
	}

	ui.PrintL1Title("System Information")

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Storage Driver", data.StorageDriver},
		{"Storage Path", data.StoragePath},
		{"Storage Status", storageStatus},
		{"Passcode", passcode},
		{"Edit Needs Passcode", editGate},
		{"Default Currency", data.DefaultCurrency},
		{"Log File", data.LogPath},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
