// Package report prints user-facing messages
package report

import (
	"os"

	"github.com/pterm/pterm"
)

// Style sets the prefixes used for user-facing messages.
func Style() {
	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// DisableStyling disables all styling provided by pterm.
func DisableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func Success(format string, args ...any) {
	pterm.Success.Printfln(format, args...)
}

func Info(format string, args ...any) {
	pterm.Info.Printfln(format, args...)
}

// Warn reports a problem that did not stop the command.
func Warn(err error) {
	pterm.Warning.Println(err)
}

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit reports err and exits with status 1.
func Quit(err error) {
	Error(err)
	os.Exit(1)
}
