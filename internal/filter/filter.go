// Package filter selects the files to process from positional arguments.
//
// Files named explicitly are always selected. Directories are walked and
// their files are kept or dropped by include/exclude patterns with find -path
// semantics. Excludes always win.
package filter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/feistel/internal/fileutil"
	"github.com/idelchi/feistel/pkg/pathmatch"
)

var (
	// ErrNoMatch is returned when no file survives the selection.
	ErrNoMatch = errors.New("no files matched")

	// ErrOutsideWorkdir is returned for absolute paths and paths escaping the working directory.
	ErrOutsideWorkdir = errors.New("path outside the working directory")
)

// Selection holds the patterns applied to walked directories.
type Selection struct {
	// Include patterns; empty means everything unless Restrict is set
	Include []string

	// Exclude patterns
	Exclude []string

	// Restrict applies Include even when it is empty
	Restrict bool
}

type filter struct {
	includes *pathmatch.Matcher
	excludes *pathmatch.Matcher
	restrict bool
}

func newFilter(sel Selection) (*filter, error) {
	inc, err := pathmatch.NewMatcher(normalize(sel.Include))
	if err != nil {
		return nil, fmt.Errorf("compiling include patterns: %w", err)
	}

	exc, err := pathmatch.NewMatcher(normalize(sel.Exclude))
	if err != nil {
		return nil, fmt.Errorf("compiling exclude patterns: %w", err)
	}

	return &filter{includes: inc, excludes: exc, restrict: sel.Restrict || inc.Len() > 0}, nil
}

func (f *filter) keep(path string) bool {
	if f.restrict && !f.includes.MatchAny(path) {
		return false
	}

	return !f.excludes.MatchAny(path)
}

// normalize strips leading "./" so patterns match cleaned paths.
func normalize(patterns []string) []string {
	out := make([]string, len(patterns))

	for i, p := range patterns {
		out[i] = strings.TrimPrefix(p, "./")
	}

	return out
}

// Resolve expands args into a deduplicated file list.
// It returns the selected files and the number of candidates seen.
func Resolve(args []string, sel Selection) (files []string, scanned int, err error) {
	for _, arg := range args {
		if err := validatePath(arg); err != nil {
			return nil, 0, err
		}
	}

	flt, err := newFilter(sel)
	if err != nil {
		return nil, 0, err
	}

	seen := make(map[string]struct{})
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			add(arg)

			continue
		}

		walked, total, err := walk(arg, flt)
		if err != nil {
			return nil, 0, err
		}

		scanned += total

		for _, path := range walked {
			add(path)
		}
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("%w: %v", ErrNoMatch, args)
	}

	return files, scanned, nil
}

// walk returns the files below root that pass flt, plus the number of files seen.
func walk(root string, flt *filter) (files []string, total int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		total++

		if flt.keep(filepath.ToSlash(filepath.Clean(path))) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walking %q: %w", root, err)
	}

	return files, total, nil
}

func validatePath(path string) error {
	if filepath.IsAbs(path) {
		return fmt.Errorf("%w: absolute path %q", ErrOutsideWorkdir, path)
	}

	if clean := filepath.Clean(path); clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q", ErrOutsideWorkdir, path)
	}

	return nil
}

// LoadPatterns reads a JSONC file holding an array of patterns.
func LoadPatterns(path string) ([]string, error) {
	patterns, err := fileutil.LoadJSONC[string](path)
	if err != nil {
		return nil, fmt.Errorf("loading patterns: %w", err)
	}

	return patterns, nil
}
