// Package ui renders slumber output to the terminal
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light variants of each colour so that output stays
// readable on dark terminals.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Quality colours a sleep quality score by band.
func Quality(score int) string {
	switch {
	case score >= 85:
		return Green(score)
	case score >= 70:
		return Yellow(score)
	default:
		return Magenta(score)
	}
}
