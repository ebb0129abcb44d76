package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/coltab/coltab/pkg/config"
	"github.com/coltab/coltab/pkg/driver"
	"github.com/coltab/coltab/pkg/profile"
	"github.com/coltab/coltab/pkg/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// Metadata carries build-time version information, set via ldflags the way
// goreleaser expects.
type Metadata struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

var metadata = Metadata{
	Version:   "dev",
	Commit:    "none",
	Date:      "unknown",
	GoVersion: runtime.Version(),
}

var rootCmd = &cobra.Command{
	Use:   "coltab [FILE]",
	Short: "Render fixed-width plaintext tables from delimited text",
	Long: "coltab plans column widths for delimited input so the wrapped table uses\n" +
		"the minimum number of output rows within a total width budget, then\n" +
		"renders it in one of several ruled or plain layouts.",
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
}

var logger *pterm.Logger

func logLevelToPterm(level string) pterm.LogLevel {
	switch level {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "info":
		return pterm.LogLevelInfo
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	case "fatal":
		return pterm.LogLevelFatal
	case "print":
		return pterm.LogLevelPrint
	default:
		return pterm.LogLevelWarn
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringP("widths", "W", "", "comma-separated widths, each a positive integer or '-' for unset")
	flags.IntP("table-width", "T", 0, "total display width (defaults to terminal width, else 80)")
	flags.StringP("layout", "L", "grid", "output layout (grid, rounded, heavy, double, mixed, fancy, hline, simple, github, plain)")
	flags.BoolP("strict", "S", false, "error instead of warn on over-width lines")
	flags.StringP("delimiter", "d", "\t", "single-character input field delimiter")
	flags.BoolP("break-long-words", "b", false, "break a single token wider than its column")
	flags.BoolP("no-break-long-words", "B", false, "never break a single token, even if wider than its column")
	flags.String("profile", "", "load default flags from a saved profile")
	flags.String("env-file", ".coltabrc.env", "load default flags from this .env-style file")
	flags.String("config-file", ".coltab.yaml", "load default flags from this YAML file")

	rootCmd.PersistentFlags().BoolP("no-color", "", false, "disable color output")
	rootCmd.PersistentFlags().String("log-level", "warn", "set the log level (trace, debug, info, warn, error, fatal, print)")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	cobra.OnInitialize(func() {
		pterm.EnableStyling()
	})

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logLevel, _ := cmd.Flags().GetString("log-level")
		logger = pterm.DefaultLogger.WithLevel(logLevelToPterm(logLevel))
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			pterm.DisableStyling()
		}
		cmd.Flags().Visit(func(f *pflag.Flag) {
			logger.Debug("flag set", logger.Args(f.Name, f.Value.String()))
		})
		return nil
	}

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(batchCmd)
}

// resolvedOptions layers config-file defaults, a named profile, then
// explicit flags, in ascending priority, mirroring driver.Options exactly.
func resolvedOptions(cmd *cobra.Command) (driver.Options, error) {
	var defaults config.Defaults

	if envFile, _ := cmd.Flags().GetString("env-file"); envFile != "" {
		d, err := config.LoadEnv(envFile)
		if err != nil {
			return driver.Options{}, util.Inputf("reading %s: %s", envFile, err)
		}
		defaults = config.Merge(defaults, d)
	}
	if cfgFile, _ := cmd.Flags().GetString("config-file"); cfgFile != "" {
		d, err := config.LoadYAML(cfgFile)
		if err != nil {
			return driver.Options{}, util.Inputf("reading %s: %s", cfgFile, err)
		}
		defaults = config.Merge(defaults, d)
	}

	opts := driver.Options{
		Widths:     defaults.Widths,
		TableWidth: defaults.TableWidth,
		Layout:     orDefault(defaults.Layout, "grid"),
		Strict:     defaults.Strict,
		Delimiter:  firstRune(orDefault(defaults.Delimiter, "\t")),
	}
	opts.BreakLongWords = defaults.BreakLongWords

	if name, _ := cmd.Flags().GetString("profile"); name != "" {
		path, err := profile.DefaultPath()
		if err != nil {
			return driver.Options{}, util.Inputf("resolving profile store: %s", err)
		}
		p, ok, err := profile.Open(path).Get(name)
		if err != nil {
			return driver.Options{}, util.Inputf("loading profile %q: %s", name, err)
		}
		if !ok {
			return driver.Options{}, util.Argumentf("no such profile %q", name)
		}
		if p.Widths != "" {
			opts.Widths = p.Widths
		}
		if p.Layout != "" {
			opts.Layout = p.Layout
		}
		if p.Delimiter != "" {
			opts.Delimiter = firstRune(p.Delimiter)
		}
		opts.BreakLongWords = p.BreakLongWords
	}

	if v, _ := cmd.Flags().GetString("widths"); v != "" {
		opts.Widths = v
	}
	if v, _ := cmd.Flags().GetInt("table-width"); v != 0 {
		opts.TableWidth = v
	}
	if cmd.Flags().Changed("layout") {
		v, _ := cmd.Flags().GetString("layout")
		opts.Layout = v
	}
	if v, _ := cmd.Flags().GetBool("strict"); v {
		opts.Strict = true
	}
	if cmd.Flags().Changed("delimiter") {
		v, _ := cmd.Flags().GetString("delimiter")
		if len(v) != 1 {
			return driver.Options{}, util.Argumentf("--delimiter must be exactly one character, got %q", v)
		}
		opts.Delimiter = rune(v[0])
	}
	if v, _ := cmd.Flags().GetBool("break-long-words"); v {
		opts.BreakLongWords = true
	}
	if v, _ := cmd.Flags().GetBool("no-break-long-words"); v {
		opts.BreakLongWords = false
	}

	if opts.TableWidth <= 0 {
		opts.TableWidth = terminalWidthOr80()
	}
	return opts, nil
}

func terminalWidthOr80() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '\t'
}

func runRoot(cmd *cobra.Command, args []string) error {
	opts, err := resolvedOptions(cmd)
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	var r io.Reader
	if path == "" || path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return util.Inputf("opening %s: %s", path, err)
		}
		defer f.Close()
		r = f
	}

	result, err := driver.Render(r, opts)
	if err != nil {
		return err
	}

	if n := len(result.Warnings); n > 0 {
		logger.Warn(fmt.Sprintf("%d line(s) exceeded their column width", n))
		for _, w := range result.Warnings {
			logger.Debug(w)
		}
	}
	fmt.Print(result.Output)
	return nil
}

// Execute runs the root command.
func Execute(m Metadata) {
	metadata = m
	vt := "coltab"
	if metadata.Version != "" {
		vt += " " + metadata.Version
	}
	if metadata.Commit != "" {
		vt += " (" + metadata.Commit + ")"
	}
	if metadata.GoVersion != "" {
		vt += " " + metadata.GoVersion
	}
	if metadata.Date != "" {
		vt += " " + metadata.Date
	}
	vt += "\n"
	rootCmd.SetVersionTemplate(vt)

	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion(metadata.Version),
		fang.WithCommit(metadata.Commit),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			errorTextStyle := styles.ErrorText.UnsetMargins()
			pterm.Error.Println(errorTextStyle.Render(strings.TrimSpace(err.Error())))
			if isUsageError(err) {
				pterm.Println()
				pterm.Println(lipgloss.JoinHorizontal(
					lipgloss.Left,
					errorTextStyle.UnsetWidth().Render("Try"),
					styles.Program.Flag.Render("--help"),
					errorTextStyle.UnsetWidth().UnsetTransform().PaddingLeft(1).Render("for usage."),
				))
			}
		}),
	); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps a failure to its kind's process exit code; anything not
// wrapped in a *util.CLIError is an unexpected failure.
func exitCodeFor(err error) int {
	if ce, ok := err.(*util.CLIError); ok {
		return ce.ExitCode()
	}
	return 1
}

func isUsageError(err error) bool {
	s := err.Error()
	for _, prefix := range []string{
		"flag needs an argument:",
		"unknown flag:",
		"unknown shorthand flag:",
		"unknown command",
		"invalid argument",
	} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
