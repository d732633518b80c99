package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	l1Style = pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
	l2Style = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
)

func PrintL1Title(format string, a ...interface{}) {
	l1Style.Println(fmt.Sprintf(" %s   ", fmt.Sprintf(format, a...)))
}

func PrintL2Title(format string, a ...interface{}) {
	l2Style.Println(fmt.Sprintf("# %s   ", fmt.Sprintf(format, a...)))
}

// Separator prints a green separator line to the console.
func Separator() {
	pterm.Println(pterm.Green("----------------------------------------"))
}
