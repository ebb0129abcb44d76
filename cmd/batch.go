package cmd

import (
	"fmt"
	"os"

	"github.com/coltab/coltab/pkg/batch"
	"github.com/coltab/coltab/pkg/driver"
	"github.com/coltab/coltab/pkg/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch <directory>",
	Short: "Render every delimited file under a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringP("widths", "W", "", "comma-separated widths, each a positive integer or '-'")
	batchCmd.Flags().IntP("table-width", "T", 0, "total display width (defaults to terminal width, else 80)")
	batchCmd.Flags().StringP("layout", "L", "grid", "output layout")
	batchCmd.Flags().BoolP("strict", "S", false, "error instead of warn on over-width lines")
	batchCmd.Flags().StringP("delimiter", "d", "\t", "single-character input field delimiter")
	batchCmd.Flags().BoolP("break-long-words", "b", false, "break a single token wider than its column")
}

func runBatch(cmd *cobra.Command, args []string) error {
	root := args[0]

	widths, _ := cmd.Flags().GetString("widths")
	tableWidth, _ := cmd.Flags().GetInt("table-width")
	layout, _ := cmd.Flags().GetString("layout")
	strict, _ := cmd.Flags().GetBool("strict")
	delimiterFlag, _ := cmd.Flags().GetString("delimiter")
	breakLongWords, _ := cmd.Flags().GetBool("break-long-words")

	if len(delimiterFlag) != 1 {
		return util.Argumentf("--delimiter must be exactly one character, got %q", delimiterFlag)
	}
	if tableWidth <= 0 {
		tableWidth = terminalWidthOr80()
	}

	opts := driver.Options{
		Widths:         widths,
		TableWidth:     tableWidth,
		Layout:         layout,
		Strict:         strict,
		Delimiter:      rune(delimiterFlag[0]),
		BreakLongWords: breakLongWords,
	}

	reports, err := batch.RenderEach(root, func(path string) (string, error) {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		res, err := driver.Render(f, opts)
		if err != nil {
			return "", err
		}
		for _, w := range res.Warnings {
			logger.Warn(fmt.Sprintf("%s: %s", batch.RelPath(root, path), w))
		}
		return res.Output, nil
	})
	if err != nil {
		return util.Inputf("%s", err)
	}

	for _, r := range reports {
		rel := batch.RelPath(root, r.Path)
		if r.Err != nil {
			pterm.Error.Printf("%s: %s\n", rel, r.Err)
			continue
		}
		pterm.DefaultSection.Println(rel)
		fmt.Print(r.Output)
	}

	if fails := batch.Failures(reports); len(fails) > 0 {
		return util.PlanningInfeasiblef("%d of %d files failed to render", len(fails), len(reports))
	}
	return nil
}
