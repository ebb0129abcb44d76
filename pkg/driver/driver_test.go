package driver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSmallGrid(t *testing.T) {
	res, err := Render(strings.NewReader("a\tb\n"), Options{
		Widths:     "3,3",
		TableWidth: 13,
		Layout:     "grid",
	})
	require.NoError(t, err)
	want := "+-----+-----+\n| a   | b   |\n+-----+-----+\n"
	assert.Equal(t, want, res.Output)
}

func TestRenderNoWrappingNeeded(t *testing.T) {
	res, err := Render(strings.NewReader("Usage\ttextmltab [-h]\n"), Options{
		Widths:     "7,14",
		TableWidth: 7 + 14 + 7,
		Layout:     "grid",
	})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(res.Output, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "| Usage   | textmltab [-h] |", lines[1])
}

func TestRenderUnknownLayout(t *testing.T) {
	_, err := Render(strings.NewReader("a\tb\n"), Options{
		Widths:     "3,3",
		TableWidth: 13,
		Layout:     "gri",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean")
}

func TestRenderEmptyInputIsArgumentError(t *testing.T) {
	_, err := Render(strings.NewReader(""), Options{Layout: "grid", TableWidth: 80})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rows")
}

func TestRenderStrictOverWidthErrors(t *testing.T) {
	_, err := Render(strings.NewReader("supercalifragilisticexpialidocious\tb\n"), Options{
		Widths:     "5,3",
		TableWidth: 9 + 7,
		Layout:     "grid",
		Strict:     true,
	})
	require.Error(t, err)
}

func TestRenderNonStrictOverWidthWarns(t *testing.T) {
	res, err := Render(strings.NewReader("supercalifragilisticexpialidocious\tb\n"), Options{
		Widths:     "5,3",
		TableWidth: 9 + 7,
		Layout:     "grid",
		Strict:     false,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Warnings)
}

func TestRenderWidthsCountMismatch(t *testing.T) {
	_, err := Render(strings.NewReader("a\tb\tc\n"), Options{
		Widths:     "3,3",
		TableWidth: 80,
		Layout:     "grid",
	})
	require.Error(t, err)
}
