package render

import (
	"strings"
	"testing"

	"github.com/coltab/coltab/pkg/width"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillRowPadsToTallestBlock(t *testing.T) {
	blocks := FillRow([]string{"a", "b c d e"}, []int{3, 3}, width.Options{})
	require.Len(t, blocks, 2)
	for _, b := range blocks {
		for _, line := range b.Lines {
			assert.Equal(t, 3, width.DW(line))
		}
	}
	assert.Equal(t, len(blocks[0].Lines), len(blocks[1].Lines))
}

func TestGridRenderSingleRow(t *testing.T) {
	widths := []int{3, 3}
	rows := [][]Block{FillRow([]string{"a", "b"}, widths, width.Options{})}
	out := Registry["grid"].Render(rows, widths, false)
	want := "+-----+-----+\n| a   | b   |\n+-----+-----+\n"
	assert.Equal(t, want, out)
}

func TestGridSingleRowNoHeaderRule(t *testing.T) {
	widths := []int{3, 3}
	rows := [][]Block{FillRow([]string{"a", "b"}, widths, width.Options{})}
	// Even with hasHeader set, a one-row table has no inner rule to draw.
	out := Registry["grid"].Render(rows, widths, true)
	want := "+-----+-----+\n| a   | b   |\n+-----+-----+\n"
	assert.Equal(t, want, out)
}

func TestGridCornerCount(t *testing.T) {
	widths := []int{4, 6, 2}
	rows := [][]Block{
		FillRow([]string{"h1", "h2", "h3"}, widths, width.Options{}),
		FillRow([]string{"a", "bb", "c"}, widths, width.Options{}),
	}
	out := Registry["grid"].Render(rows, widths, true)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for _, l := range lines {
		if strings.HasPrefix(l, "+") {
			assert.Equal(t, len(widths)+1, strings.Count(l, "+"))
		}
		if strings.HasPrefix(l, "|") {
			assert.True(t, strings.HasPrefix(l, "|"))
			assert.True(t, strings.HasSuffix(l, "|"))
		}
	}
}

func TestGridCellDisplayWidthIncludesPadding(t *testing.T) {
	widths := []int{5}
	rows := [][]Block{FillRow([]string{"hi"}, widths, width.Options{})}
	out := Registry["grid"].Render(rows, widths, false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	dataLine := lines[1]
	// "| hi    |" -> cell between the two '|' has width+2 display columns.
	inner := strings.TrimSuffix(strings.TrimPrefix(dataLine, "|"), "|")
	assert.Equal(t, widths[0]+2, width.DW(inner))
}

func TestHlineOverheadAndRender(t *testing.T) {
	widths := []int{3, 3}
	rows := [][]Block{FillRow([]string{"a", "b"}, widths, width.Options{})}
	out := Registry["hline"].Render(rows, widths, false)
	assert.Contains(t, out, "===")
	assert.Equal(t, 2*(len(widths)-1), Registry["hline"].Overhead(len(widths)))
}

func TestAllLayoutsRenderWithoutPanicking(t *testing.T) {
	widths := []int{4, 5}
	rows := [][]Block{
		FillRow([]string{"head1", "head2"}, widths, width.Options{}),
		FillRow([]string{"a", "bb"}, widths, width.Options{}),
	}
	for name, layout := range Registry {
		out := layout.Render(rows, widths, true)
		assert.NotEmpty(t, out, "layout %s produced empty output", name)
		assert.Greater(t, layout.Overhead(2), 0, "layout %s", name)
	}
}
