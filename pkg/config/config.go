// Package config loads default planner flags from a .env-style file and an
// optional YAML file, so a project can pin its own defaults without every
// invocation repeating the same flags.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults holds the subset of planner flags a config file may pre-set.
// A CLI flag explicitly passed by the user always overrides these.
type Defaults struct {
	Widths         string `yaml:"widths"` // raw -W value, e.g. "14,-,20"
	Layout         string `yaml:"layout"`
	TableWidth     int    `yaml:"table_width"`
	Strict         bool   `yaml:"strict"`
	Delimiter      string `yaml:"delimiter"`
	BreakLongWords bool   `yaml:"break_long_words"`
}

// LoadEnv reads key=value pairs from path the way onkernel's deploy command
// reads --env-file entries, mapping the COLTAB_-prefixed variables it
// recognizes onto Defaults. Missing files are not an error.
func LoadEnv(path string) (Defaults, error) {
	var d Defaults
	vars, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return d, err
	}

	if v, ok := vars["COLTAB_WIDTHS"]; ok {
		d.Widths = v
	}
	if v, ok := vars["COLTAB_LAYOUT"]; ok {
		d.Layout = v
	}
	if v, ok := vars["COLTAB_TABLE_WIDTH"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			d.TableWidth = n
		}
	}
	if v, ok := vars["COLTAB_STRICT"]; ok {
		d.Strict = v == "1" || v == "true"
	}
	if v, ok := vars["COLTAB_DELIMITER"]; ok {
		d.Delimiter = v
	}
	if v, ok := vars["COLTAB_BREAK_LONG_WORDS"]; ok {
		d.BreakLongWords = v == "1" || v == "true"
	}
	return d, nil
}

// LoadYAML reads a .coltab.yaml file of Defaults. A missing file yields the
// zero value rather than an error, matching LoadEnv's behavior.
func LoadYAML(path string) (Defaults, error) {
	var d Defaults
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return d, err
	}
	if err := yaml.Unmarshal(b, &d); err != nil {
		return d, err
	}
	return d, nil
}

// Merge layers override on top of base: any non-zero field in override
// wins. cmd/root.go merges .coltabrc.env first and .coltab.yaml on top of
// it; explicit flags are applied afterwards by the caller, not through Merge.
func Merge(base, override Defaults) Defaults {
	out := base
	if override.Widths != "" {
		out.Widths = override.Widths
	}
	if override.Layout != "" {
		out.Layout = override.Layout
	}
	if override.TableWidth != 0 {
		out.TableWidth = override.TableWidth
	}
	if override.Strict {
		out.Strict = true
	}
	if override.Delimiter != "" {
		out.Delimiter = override.Delimiter
	}
	if override.BreakLongWords {
		out.BreakLongWords = true
	}
	return out
}
