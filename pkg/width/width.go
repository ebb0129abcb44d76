// Package width provides the display-width function and word-wrapping
// primitive that the column-width planner treats as opaque collaborators.
package width

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/width"
)

// DW returns the number of terminal display columns consumed by s: 2 for
// runes classified as East-Asian Fullwidth or Wide, otherwise go-runewidth's
// width (1 for most runes, 0 for zero-width ones such as combining marks).
// Control characters and newlines are not expected in cells and are counted as 0.
func DW(s string) int {
	total := 0
	for _, r := range s {
		total += runeWidth(r)
	}
	return total
}

func runeWidth(r rune) int {
	switch r {
	case '\n', '\r', '\t':
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return runewidth.RuneWidth(r)
}

// Options configures Wrap. BreakLongWords, when set, forces every returned
// line to have DW(line) <= w by splitting a token that alone exceeds w.
// BreakOnHyphens additionally allows breaking at a hyphen inside a long
// word before resorting to a hard character break. SubsequentIndent is
// prepended to every line but the first.
type Options struct {
	BreakLongWords   bool
	BreakOnHyphens   bool
	SubsequentIndent string
}

// Wrap breaks cell into lines each with DW(line) <= w, when feasible.
// Non-empty input always produces at least one line. When a single token's
// display width exceeds w and opts.BreakLongWords is false, Wrap emits that
// token verbatim on its own line, over-width; the caller (the oracle) is
// responsible for detecting that condition.
//
// len(Wrap(cell, w1, opts)) >= len(Wrap(cell, w2, opts)) for all w1 <= w2:
// this monotonicity is relied upon by pkg/plan and must be preserved by any
// change to this function.
func Wrap(cell string, w int, opts Options) []string {
	if cell == "" {
		return []string{""}
	}
	if w < 1 {
		w = 1
	}

	words := splitWords(cell)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var cur strings.Builder
	curWidth := 0

	indent := opts.SubsequentIndent
	lineBudget := func() int {
		if len(lines) == 0 {
			return w
		}
		b := w - DW(indent)
		if b < 1 {
			b = 1
		}
		return b
	}

	flush := func() {
		prefix := ""
		if len(lines) > 0 {
			prefix = indent
		}
		lines = append(lines, prefix+cur.String())
		cur.Reset()
		curWidth = 0
	}

	for _, word := range words {
		ww := DW(word)
		budget := lineBudget()

		if ww > budget {
			if curWidth > 0 {
				flush()
				budget = lineBudget()
			}
			if opts.BreakLongWords {
				if len(lines) == 0 && indent != "" {
					first := breakLongWord(word, budget, opts.BreakOnHyphens)[0]
					lines = append(lines, first)
					word, budget = word[len(first):], lineBudget()
					if word == "" {
						continue
					}
				}
				for _, piece := range breakLongWord(word, budget, opts.BreakOnHyphens) {
					lines = append(lines, prefixFor(lines, indent)+piece)
				}
				continue
			}
			// Long-word breaking disabled: emit verbatim, over-width.
			lines = append(lines, prefixFor(lines, indent)+word)
			continue
		}

		sep := ""
		if curWidth > 0 {
			sep = " "
		}
		if curWidth > 0 && curWidth+DW(sep)+ww > budget {
			flush()
			sep = ""
		}
		cur.WriteString(sep)
		cur.WriteString(word)
		curWidth += DW(sep) + ww
	}
	if curWidth > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

func prefixFor(lines []string, indent string) string {
	if len(lines) > 0 {
		return indent
	}
	return ""
}

// splitWords tokenizes on spaces and tabs; cells are newline-free after
// parsing, so no other whitespace is expected.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t'
	})
}

// breakLongWord force-splits word into pieces of at most budget display
// columns each, respecting grapheme cluster boundaries via uniseg so a
// multi-rune cluster is never cut in half.
func breakLongWord(word string, budget int, breakOnHyphens bool) []string {
	if budget < 1 {
		budget = 1
	}
	if breakOnHyphens {
		if pieces, ok := breakAtHyphens(word, budget); ok {
			return pieces
		}
	}

	var pieces []string
	var cur strings.Builder
	curWidth := 0

	gr := uniseg.NewGraphemes(word)
	for gr.Next() {
		cluster := gr.Str()
		cw := DW(cluster)
		if curWidth > 0 && curWidth+cw > budget {
			pieces = append(pieces, cur.String())
			cur.Reset()
			curWidth = 0
		}
		cur.WriteString(cluster)
		curWidth += cw
	}
	if curWidth > 0 || len(pieces) == 0 {
		pieces = append(pieces, cur.String())
	}
	return pieces
}

// breakAtHyphens splits word on internal hyphens first, recursively
// force-breaking any resulting segment that is still over budget.
func breakAtHyphens(word string, budget int) ([]string, bool) {
	if !strings.Contains(word, "-") {
		return nil, false
	}
	segs := strings.SplitAfter(word, "-")
	var pieces []string
	for _, seg := range segs {
		if seg == "" {
			continue
		}
		if DW(seg) <= budget {
			pieces = append(pieces, seg)
			continue
		}
		pieces = append(pieces, breakLongWord(seg, budget, false)...)
	}
	if len(pieces) == 0 {
		return nil, false
	}
	return pieces, true
}
