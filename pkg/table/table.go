// Package table prints small, auxiliary listings (the profile list/show
// tables) for the CLI's own commands. It is deliberately separate
// from pkg/render: that package is the general column-width planner and
// renderer for arbitrary user data, while this one is a fixed, terminal-width-aware
// printer for coltab's own structured output (no wrapping, no planning,
// just truncation with an ellipsis when a cell won't fit).
package table

import (
	"strings"

	"github.com/coltab/coltab/pkg/width"
	"github.com/pterm/pterm"
)

// PrintTableNoPad renders data similarly to pterm.DefaultTable, without the
// trailing padding after the last column and without blank filler lines for
// multi-line cells in other columns. It truncates columns (with "...") to
// fit within the terminal width rather than wrapping them, since this is
// meant for the CLI's own short, glanceable listings.
func PrintTableNoPad(data pterm.TableData, hasHeader bool) {
	if len(data) == 0 {
		return
	}

	termWidth := pterm.GetTerminalWidth()
	if termWidth <= 0 {
		termWidth = 80
	}
	data = truncateTableData(data, termWidth)

	numCols := len(data[0])
	if numCols == 0 {
		return
	}

	maxColWidths := make([]int, numCols)
	for _, row := range data {
		for colIdx := 0; colIdx < numCols && colIdx < len(row); colIdx++ {
			for _, line := range strings.Split(row[colIdx], "\n") {
				visibleLine := pterm.RemoveColorFromString(line)
				if w := width.DW(visibleLine); w > maxColWidths[colIdx] {
					maxColWidths[colIdx] = w
				}
			}
		}
	}

	var b strings.Builder
	sep := pterm.DefaultTable.Separator
	sepStyled := pterm.ThemeDefault.TableSeparatorStyle.Sprint(sep)

	renderRow := func(row []string, styleHeader bool) {
		parts := make([]string, 0, numCols)
		for colIdx := 0; colIdx < numCols; colIdx++ {
			var cell string
			if colIdx < len(row) {
				cell = row[colIdx]
			}

			lines := strings.Split(cell, "\n")
			first := ""
			if len(lines) > 0 {
				first = lines[0]
			}

			visibleFirst := pterm.RemoveColorFromString(first)
			padCount := maxColWidths[colIdx] - width.DW(visibleFirst)
			if padCount < 0 {
				padCount = 0
			}
			parts = append(parts, first+strings.Repeat(" ", padCount))
		}

		line := strings.Join(parts, sepStyled)

		if styleHeader {
			b.WriteString(pterm.ThemeDefault.TableHeaderStyle.Sprint(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	for idx, row := range data {
		renderRow(row, hasHeader && idx == 0)
	}

	pterm.Print(b.String())
}

// truncateTableData truncates cells to fit termWidth, favoring short
// columns (e.g. a profile name) at their natural width and splitting the
// remaining budget across long columns (e.g. a raw widths list).
func truncateTableData(data pterm.TableData, termWidth int) pterm.TableData {
	if len(data) == 0 {
		return data
	}

	numCols := len(data[0])
	if numCols == 0 {
		return data
	}

	separatorSpace := (numCols - 1) * 3

	minWidths := make([]int, numCols)
	for i := 0; i < numCols; i++ {
		minWidths[i] = 8
	}

	naturalWidths := make([]int, numCols)
	for colIdx := 0; colIdx < numCols; colIdx++ {
		maxWidth := 0
		for _, row := range data {
			if colIdx < len(row) {
				visibleText := pterm.RemoveColorFromString(row[colIdx])
				if w := width.DW(visibleText); w > maxWidth {
					maxWidth = w
				}
			}
		}
		naturalWidths[colIdx] = maxWidth
	}

	availableWidth := termWidth - separatorSpace - 2

	columnWidths := distributeColumnWidths(naturalWidths, minWidths, availableWidth)

	result := make(pterm.TableData, len(data))
	for rowIdx, row := range data {
		result[rowIdx] = make([]string, len(row))
		for colIdx, cell := range row {
			if colIdx < len(columnWidths) {
				result[rowIdx][colIdx] = truncateCell(cell, columnWidths[colIdx])
			} else {
				result[rowIdx][colIdx] = cell
			}
		}
	}

	return result
}

// distributeColumnWidths gives short columns (e.g. a profile name) their
// full natural width first, then splits whatever space is left across the
// long columns proportionally to how much over their minimum they want.
func distributeColumnWidths(naturalWidths, minWidths []int, availableWidth int) []int {
	numCols := len(naturalWidths)
	result := make([]int, numCols)
	copy(result, naturalWidths)

	totalNatural := 0
	for _, w := range naturalWidths {
		totalNatural += w
	}
	if totalNatural <= availableWidth {
		return result
	}

	const shortColumnThreshold = 15

	remainingWidth := availableWidth
	var longColumnIndices []int

	for i := 0; i < numCols; i++ {
		if i == 0 || naturalWidths[i] <= shortColumnThreshold {
			result[i] = naturalWidths[i]
			remainingWidth -= naturalWidths[i]
		} else {
			longColumnIndices = append(longColumnIndices, i)
		}
	}

	if len(longColumnIndices) == 0 {
		return result
	}

	totalLongNatural := 0
	totalLongMin := 0
	for _, idx := range longColumnIndices {
		totalLongNatural += naturalWidths[idx]
		totalLongMin += minWidths[idx]
	}

	if totalLongNatural <= remainingWidth {
		for _, idx := range longColumnIndices {
			result[idx] = naturalWidths[idx]
		}
		return result
	}

	if totalLongMin > remainingWidth {
		for _, idx := range longColumnIndices {
			result[idx] = remainingWidth / len(longColumnIndices)
			if result[idx] < 5 {
				result[idx] = 5
			}
		}
		return result
	}

	extraSpace := remainingWidth - totalLongMin
	extraNeed := totalLongNatural - totalLongMin

	for _, idx := range longColumnIndices {
		result[idx] = minWidths[idx]
		if extraNeed > 0 {
			additionalNeed := naturalWidths[idx] - minWidths[idx]
			result[idx] += (additionalNeed * extraSpace) / extraNeed
		}
	}

	return result
}

// truncateCell truncates cell to fit within maxWidth display columns,
// appending "..." when it had to cut content.
func truncateCell(cell string, maxWidth int) string {
	visibleText := pterm.RemoveColorFromString(cell)
	cellWidth := width.DW(visibleText)

	if cellWidth <= maxWidth {
		return cell
	}

	if maxWidth <= 3 {
		return truncateToWidth(visibleText, maxWidth)
	}
	return truncateToWidth(visibleText, maxWidth-3) + "..."
}

// truncateToWidth truncates s to at most maxWidth display columns, cutting
// on rune boundaries.
func truncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := width.DW(string(r))
		if used+rw > maxWidth {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String()
}
