package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable writes data as a boxed table whose first row is the header.
func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

// Bar is a labelled value of a bar chart.
type Bar struct {
	Label string
	Value float64
}

// PrintBarChart writes a horizontal bar chart. pterm bars are integers, so
// values are scaled by scale before rendering and the real value is kept in
// the label.
func PrintBarChart(bars []Bar, scale float64, writer io.Writer) {
	ptermBars := make(pterm.Bars, len(bars))

	for i, b := range bars {
		ptermBars[i] = pterm.Bar{
			Label: fmt.Sprintf("%s (%.2fh)", b.Label, b.Value),
			Value: int(b.Value * scale),
		}
	}

	str, err := pterm.DefaultBarChart.
		WithHorizontal().
		WithShowValue(false).
		WithBars(ptermBars).
		Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output chart: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}
