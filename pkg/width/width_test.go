package width

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDW(t *testing.T) {
	cases := []struct {
		desc string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"single wide char", "中", 2},
		{"mixed", "a中b", 4},
		{"newline ignored", "a\nb", 2},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			assert.Equal(t, c.want, DW(c.in))
		})
	}
}

func TestWrapNonEmptyProducesAtLeastOneLine(t *testing.T) {
	for _, s := range []string{"a", "hello world", "   ", "supercalifragilisticexpialidocious"} {
		lines := Wrap(s, 5, Options{})
		require.NotEmpty(t, lines, "input %q", s)
	}
}

func TestWrapMonotonicInWidth(t *testing.T) {
	cell := "the quick brown fox jumps over the lazy dog and then some more words follow"
	prev := -1
	for w := 1; w <= len(cell); w++ {
		lines := Wrap(cell, w, Options{BreakLongWords: true})
		if prev >= 0 {
			assert.LessOrEqual(t, len(lines), prev, "width %d produced more lines than width %d", w, w-1)
		}
		prev = len(lines)
	}
}

func TestWrapBreakLongWordsRespected(t *testing.T) {
	lines := Wrap("supercalifragilisticexpialidocious", 10, Options{BreakLongWords: true})
	for _, l := range lines {
		assert.LessOrEqual(t, DW(l), 10)
	}
}

func TestWrapOverWidthWhenBreakingDisabled(t *testing.T) {
	lines := Wrap("supercalifragilisticexpialidocious", 10, Options{BreakLongWords: false})
	require.Len(t, lines, 1)
	assert.Greater(t, DW(lines[0]), 10)
}

func TestWrapFitsWithoutWrapping(t *testing.T) {
	lines := Wrap("Usage", 20, Options{})
	assert.Equal(t, []string{"Usage"}, lines)
}

func TestWrapSubsequentIndent(t *testing.T) {
	lines := Wrap("one two three four five", 8, Options{SubsequentIndent: "  "})
	require.Greater(t, len(lines), 1)
	for _, l := range lines[1:] {
		assert.True(t, len(l) >= 2 && l[:2] == "  ")
	}
}

func TestWrapBreakOnHyphens(t *testing.T) {
	lines := Wrap("well-known-long-identifier", 6, Options{BreakLongWords: true, BreakOnHyphens: true})
	for _, l := range lines {
		assert.LessOrEqual(t, DW(l), 6)
	}
}
