// Package input parses delimited rows from a stream or file into a table
// of cells, standardized to a common column count.
package input

import (
	"bufio"
	"io"
	"strings"

	"github.com/samber/lo"
)

// ParseOptions configures row parsing.
type ParseOptions struct {
	// Delimiter splits each line into fields. Defaults to a tab.
	Delimiter rune
}

// Parse reads r line by line (LF-separated, tolerating a trailing CR) and
// splits each line on opts.Delimiter. Rows shorter than the longest row are
// padded with empty trailing fields so every row has the same length.
func Parse(r io.Reader, opts ParseOptions) ([][]string, error) {
	delim := opts.Delimiter
	if delim == 0 {
		delim = '\t'
	}

	var rows [][]string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		rows = append(rows, strings.Split(line, string(delim)))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	nCols := 0
	for _, row := range rows {
		if len(row) > nCols {
			nCols = len(row)
		}
	}
	return lo.Map(rows, func(row []string, _ int) []string {
		return padRow(row, nCols)
	}), nil
}

func padRow(row []string, nCols int) []string {
	if len(row) >= nCols {
		return row
	}
	out := make([]string, nCols)
	copy(out, row)
	return out
}
