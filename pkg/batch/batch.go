// Package batch renders every delimited file under a directory tree in a
// single pass, so a user doesn't have to invoke the planner once per file.
package batch

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/boyter/gocodewalker"
)

// Extensions lists the file suffixes batch mode treats as delimited tables.
var Extensions = []string{".tsv", ".csv", ".txt"}

// Discover walks root and returns every regular file whose extension is in
// Extensions, sorted for deterministic output ordering.
func Discover(root string) ([]string, error) {
	fileListQueue := make(chan *gocodewalker.File, 100)
	walker := gocodewalker.NewFileWalker(root, fileListQueue)
	walker.AllowListExtensions = extensionNames()

	errorQueue := make(chan error, 10)
	walker.SetErrorHandler(func(err error) bool {
		errorQueue <- err
		return true
	})

	go func() {
		_ = walker.Start()
		close(errorQueue)
	}()

	var paths []string
	for f := range fileListQueue {
		paths = append(paths, f.Location)
	}
	for err := range errorQueue {
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(paths)
	return paths, nil
}

func extensionNames() []string {
	out := make([]string, len(Extensions))
	for i, ext := range Extensions {
		out[i] = strings.TrimPrefix(ext, ".")
	}
	return out
}

// Report is the outcome of rendering a single discovered file.
type Report struct {
	Path   string
	Output string
	Err    error
}

// RenderEach runs render against every file Discover finds under root,
// collecting a Report per file regardless of whether individual files fail.
func RenderEach(root string, render func(path string) (string, error)) ([]Report, error) {
	paths, err := Discover(root)
	if err != nil {
		return nil, fmt.Errorf("batch: walking %s: %w", root, err)
	}

	reports := make([]Report, 0, len(paths))
	for _, p := range paths {
		out, rerr := render(p)
		reports = append(reports, Report{Path: p, Output: out, Err: rerr})
	}
	return reports, nil
}

// Failures filters reports down to the ones that errored, for a summary
// exit-code decision by the caller.
func Failures(reports []Report) []Report {
	var out []Report
	for _, r := range reports {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// RelPath renders p relative to root for display, falling back to p itself
// if it cannot be made relative.
func RelPath(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return p
	}
	return rel
}
