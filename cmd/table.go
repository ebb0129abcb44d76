package cmd

import (
	"github.com/coltab/coltab/pkg/table"
	"github.com/pterm/pterm"
)

// printTableNoPad is the cmd package's entry point into pkg/table's
// terminal-width-aware listing printer, used by profile list/show.
func printTableNoPad(data pterm.TableData, hasHeader bool) {
	table.PrintTableNoPad(data, hasHeader)
}
