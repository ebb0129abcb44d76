package render

import (
	"fmt"
	"strings"
)

// Layout turns a grid of filled blocks into final text. Layouts are pure
// functions of (blocks, widths); they carry no state of their own.
type Layout interface {
	// Name is the CLI-facing identifier, e.g. "grid" or "hline".
	Name() string
	// Overhead is the number of display columns the layout's own
	// separators and padding consume for a table of nCols columns,
	// independent of row count.
	Overhead(nCols int) int
	// Render composes rows (each already filled to uniform block height)
	// into the final table text. hasHeader marks rows[0] as a header row
	// for layouts that style or rule it differently.
	Render(rows [][]Block, widths []int, hasHeader bool) string
}

// boxGlyphs names the characters a ruled box-drawing layout uses for its
// corners, junctions and bars; it is the generalization of gotabulate's
// per-format Line/Row tables to the variants this layout set supports.
type boxGlyphs struct {
	vert string

	topL, topM, topR    string
	headL, headM, headR string // rule below the header row
	midL, midM, midR    string // rule between data rows
	botL, botM, botR    string

	bar, headBar, midBar string
}

type boxLayout struct {
	name   string
	glyphs boxGlyphs
}

func (b boxLayout) Name() string { return b.name }

func (b boxLayout) Overhead(nCols int) int {
	if nCols < 1 {
		nCols = 1
	}
	return 3*nCols + 1
}

func (b boxLayout) Render(rows [][]Block, widths []int, hasHeader bool) string {
	var sb strings.Builder
	g := b.glyphs

	rule := func(left, mid, right, bar string) string {
		var parts []string
		for _, w := range widths {
			parts = append(parts, strings.Repeat(bar, w+2))
		}
		return left + strings.Join(parts, mid) + right + "\n"
	}

	sb.WriteString(rule(g.topL, g.topM, g.topR, g.bar))
	for i, row := range rows {
		h := 0
		for _, blk := range row {
			if len(blk.Lines) > h {
				h = len(blk.Lines)
			}
		}
		for line := 0; line < h; line++ {
			sb.WriteString(g.vert)
			for j, blk := range row {
				cell := ""
				if line < len(blk.Lines) {
					cell = blk.Lines[line]
				} else {
					cell = strings.Repeat(" ", widths[j])
				}
				sb.WriteString(" ")
				sb.WriteString(cell)
				sb.WriteString(" ")
				sb.WriteString(g.vert)
			}
			sb.WriteString("\n")
		}
		switch {
		case i == len(rows)-1:
			// The bottom border follows; no inner rule after the last row.
		case hasHeader && i == 0:
			sb.WriteString(rule(g.headL, g.headM, g.headR, g.headBar))
		default:
			sb.WriteString(rule(g.midL, g.midM, g.midR, g.midBar))
		}
	}
	sb.WriteString(rule(g.botL, g.botM, g.botR, g.bar))
	return sb.String()
}

// hlineLayout renders the hline/simple table shape: no vertical
// separators, two spaces between columns, a double rule at top and bottom
// and a single rule between rows.
type hlineLayout struct {
	name           string
	topBar, rowBar string
}

func (h hlineLayout) Name() string { return h.name }

func (h hlineLayout) Overhead(nCols int) int {
	if nCols < 1 {
		nCols = 1
	}
	return 2 * (nCols - 1)
}

func (h hlineLayout) Render(rows [][]Block, widths []int, _ bool) string {
	var sb strings.Builder

	rule := func(bar string) string {
		var parts []string
		for _, w := range widths {
			parts = append(parts, strings.Repeat(bar, w))
		}
		return strings.Join(parts, "  ") + "\n"
	}

	sb.WriteString(rule(h.topBar))
	for i, row := range rows {
		h2 := 0
		for _, blk := range row {
			if len(blk.Lines) > h2 {
				h2 = len(blk.Lines)
			}
		}
		for line := 0; line < h2; line++ {
			var cells []string
			for _, blk := range row {
				if line < len(blk.Lines) {
					cells = append(cells, blk.Lines[line])
				} else {
					cells = append(cells, strings.Repeat(" ", blk.W))
				}
			}
			sb.WriteString(strings.Join(cells, "  "))
			sb.WriteString("\n")
		}
		if i < len(rows)-1 {
			sb.WriteString(rule(h.rowBar))
		}
	}
	sb.WriteString(rule(h.topBar))
	return sb.String()
}

// githubLayout renders GitHub-flavored Markdown tables: piped cells, no
// outer box, and a "---" alignment row under the first row. Markdown
// requires the alignment row, so it is emitted regardless of whether the
// caller marks the first row as a header.
type githubLayout struct{}

func (githubLayout) Name() string { return "github" }

func (githubLayout) Overhead(nCols int) int {
	if nCols < 1 {
		nCols = 1
	}
	return 3*nCols + 1
}

func (githubLayout) Render(rows [][]Block, widths []int, _ bool) string {
	var sb strings.Builder
	writeRow := func(row []Block) {
		h := 0
		for _, blk := range row {
			if len(blk.Lines) > h {
				h = len(blk.Lines)
			}
		}
		for line := 0; line < h; line++ {
			sb.WriteString("|")
			for _, blk := range row {
				cell := strings.Repeat(" ", blk.W)
				if line < len(blk.Lines) {
					cell = blk.Lines[line]
				}
				fmt.Fprintf(&sb, " %s |", cell)
			}
			sb.WriteString("\n")
		}
	}

	if len(rows) == 0 {
		return ""
	}
	writeRow(rows[0])
	sb.WriteString("|")
	for _, w := range widths {
		sb.WriteString(" " + strings.Repeat("-", w) + " |")
	}
	sb.WriteString("\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}
	return sb.String()
}

// plainLayout has no rules or vertical separators at all: columns
// separated by two spaces, nothing else.
type plainLayout struct{}

func (plainLayout) Name() string { return "plain" }

func (plainLayout) Overhead(nCols int) int {
	if nCols < 1 {
		nCols = 1
	}
	return 2 * (nCols - 1)
}

func (plainLayout) Render(rows [][]Block, widths []int, _ bool) string {
	var sb strings.Builder
	for _, row := range rows {
		h := 0
		for _, blk := range row {
			if len(blk.Lines) > h {
				h = len(blk.Lines)
			}
		}
		for line := 0; line < h; line++ {
			var cells []string
			for _, blk := range row {
				if line < len(blk.Lines) {
					cells = append(cells, blk.Lines[line])
				} else {
					cells = append(cells, strings.Repeat(" ", blk.W))
				}
			}
			sb.WriteString(strings.Join(cells, "  "))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Registry maps a CLI-facing layout name to its Layout. It is the single
// home for every supported glyph variant; a component dispatching a name
// not present here is a LayoutUnknown programming error.
var Registry = map[string]Layout{
	"grid": boxLayout{name: "grid", glyphs: boxGlyphs{
		vert: "|",
		topL: "+", topM: "+", topR: "+",
		headL: "+", headM: "+", headR: "+",
		midL: "+", midM: "+", midR: "+",
		botL: "+", botM: "+", botR: "+",
		bar: "-", headBar: "-", midBar: "-",
	}},
	"rounded": boxLayout{name: "rounded", glyphs: boxGlyphs{
		vert: "│",
		topL: "╭", topM: "┬", topR: "╮",
		headL: "├", headM: "┼", headR: "┤",
		midL: "├", midM: "┼", midR: "┤",
		botL: "╰", botM: "┴", botR: "╯",
		bar: "─", headBar: "─", midBar: "─",
	}},
	"heavy": boxLayout{name: "heavy", glyphs: boxGlyphs{
		vert: "┃",
		topL: "┏", topM: "┳", topR: "┓",
		headL: "┣", headM: "╋", headR: "┫",
		midL: "┣", midM: "╋", midR: "┫",
		botL: "┗", botM: "┻", botR: "┛",
		bar: "━", headBar: "━", midBar: "━",
	}},
	"double": boxLayout{name: "double", glyphs: boxGlyphs{
		vert: "║",
		topL: "╔", topM: "╦", topR: "╗",
		headL: "╠", headM: "╬", headR: "╣",
		midL: "╠", midM: "╬", midR: "╣",
		botL: "╚", botM: "╩", botR: "╝",
		bar: "═", headBar: "═", midBar: "═",
	}},
	"mixed": boxLayout{name: "mixed", glyphs: boxGlyphs{
		vert: "│",
		topL: "┌", topM: "┬", topR: "┐",
		headL: "┡", headM: "╇", headR: "┩",
		midL: "├", midM: "┼", midR: "┤",
		botL: "└", botM: "┴", botR: "┘",
		bar: "─", headBar: "━", midBar: "─",
	}},
	"fancy": boxLayout{name: "fancy", glyphs: boxGlyphs{
		vert: "┃",
		topL: "┏", topM: "┳", topR: "┓",
		headL: "┡", headM: "╇", headR: "┩",
		midL: "├", midM: "┼", midR: "┤",
		botL: "└", botM: "┴", botR: "┘",
		bar: "━", headBar: "━", midBar: "─",
	}},
	"hline":  hlineLayout{name: "hline", topBar: "=", rowBar: "-"},
	"simple": hlineLayout{name: "simple", topBar: "=", rowBar: "-"},
	"github": githubLayout{},
	"plain":  plainLayout{},
}

// Names returns the registered layout names, used for error messages and
// fuzzy-match suggestions when an unknown layout is requested.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for n := range Registry {
		names = append(names, n)
	}
	return names
}
