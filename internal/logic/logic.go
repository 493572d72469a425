// Package logic implements the core business logic for the feistel commands.
package logic

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/feistel/internal/config"
	"github.com/idelchi/feistel/internal/encryption"
	"github.com/idelchi/feistel/internal/filter"
)

// ErrNoFiles is returned when no input files are given.
var ErrNoFiles = errors.New("no input files")

// Run encrypts or decrypts the configured files.
func Run(cfg *config.Config, logger *slog.Logger) error {
	start := time.Now()

	scanned, err := resolveFiles(cfg)
	if err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	excluded := scanned - len(cfg.Files)

	logger.Debug("files resolved", "scanned", scanned, "selected", len(cfg.Files))

	if cfg.Dry {
		return dryRun(cfg, scanned, excluded, start)
	}

	proc, err := encryption.NewProcessor(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(scanned, excluded, processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// resolveFiles expands positional args and applies include/exclude filtering.
// Decrypting a directory without includes only selects files carrying the encrypt suffix.
// Returns the total number of files scanned before filtering.
func resolveFiles(cfg *config.Config) (int, error) {
	if len(cfg.Files) == 0 {
		return 0, ErrNoFiles
	}

	sel := filter.Selection{
		Include: append([]string{}, cfg.Include...),
		Exclude: append([]string{}, cfg.Exclude...),
	}

	if cfg.IncludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.IncludeFrom)
		if err != nil {
			return 0, fmt.Errorf("loading include patterns: %w", err)
		}

		sel.Include = append(sel.Include, patterns...)
	}

	if cfg.ExcludeFrom != "" {
		patterns, err := filter.LoadPatterns(cfg.ExcludeFrom)
		if err != nil {
			return 0, fmt.Errorf("loading exclude patterns: %w", err)
		}

		sel.Exclude = append(sel.Exclude, patterns...)
	}

	sel.Restrict = len(cfg.Include) > 0 || cfg.IncludeFrom != ""

	if cfg.Decrypt && !sel.Restrict {
		sel.Include = append(sel.Include, "*"+cfg.Suffixes.Encrypt)
		sel.Restrict = true
	}

	files, scanned, err := filter.Resolve(cfg.Files, sel)
	if err != nil {
		return scanned, fmt.Errorf("filtering files: %w", err)
	}

	cfg.Files = files

	return scanned, nil
}

// dryRun previews what would be processed without actually encrypting/decrypting.
//
//nolint:unparam // matches the Run return path
func dryRun(cfg *config.Config, scanned, excluded int, start time.Time) error {
	var totalSize int64

	for _, file := range cfg.Files {
		if !cfg.Quiet {
			fmt.Printf("Processed %q -> %q\n", file, encryption.OutputPath(file, cfg)) //nolint:forbidigo
		}

		if cfg.Stats {
			if info, err := os.Stat(file); err == nil {
				totalSize += info.Size()
			}
		}
	}

	if cfg.Stats {
		printStats(scanned, excluded, len(cfg.Files), 0, totalSize, time.Since(start))
	}

	return nil
}

func printStats(scanned, excluded, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "\nStats\n")
	fmt.Fprintf(os.Stderr, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(os.Stderr, "  Excluded:  %d\n", excluded)
	fmt.Fprintf(os.Stderr, "  Processed: %d\n", processed)
	fmt.Fprintf(os.Stderr, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(os.Stderr, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(os.Stderr, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
