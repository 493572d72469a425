package pathmatch_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/feistel/pkg/pathmatch"
)

type Case struct {
	Pattern string `yaml:"pattern"`
	Path    string `yaml:"path"`
	Match   bool   `yaml:"match"`
}

type Group struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

func loadGroups(t *testing.T) []Group {
	t.Helper()

	files, err := filepath.Glob("testdata/*.yml")
	if err != nil {
		t.Fatalf("globbing testdata: %v", err)
	}

	if len(files) == 0 {
		t.Fatal("no testdata/*.yml files found")
	}

	var all []Group

	for _, f := range files {
		data, err := os.ReadFile(f) //nolint:gosec // test helper reads known testdata files
		if err != nil {
			t.Fatalf("reading %s: %v", f, err)
		}

		var groups []Group
		if err := yaml.Unmarshal(data, &groups); err != nil {
			t.Fatalf("parsing %s: %v", f, err)
		}

		all = append(all, groups...)
	}

	return all
}

func TestMatch(t *testing.T) {
	t.Parallel()

	for _, group := range loadGroups(t) {
		t.Run(group.Name, func(t *testing.T) {
			t.Parallel()

			for i, tc := range group.Cases {
				t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
					t.Parallel()

					got, err := pathmatch.Match(tc.Pattern, tc.Path)
					if err != nil {
						t.Fatalf("Match(%q, %q) error: %v", tc.Pattern, tc.Path, err)
					}

					if got != tc.Match {
						t.Errorf("Match(%q, %q) = %v, want %v", tc.Pattern, tc.Path, got, tc.Match)
					}
				})
			}
		})
	}
}

func TestMatcher(t *testing.T) {
	t.Parallel()

	for _, group := range loadGroups(t) {
		for _, tc := range group.Cases {
			matcher, err := pathmatch.NewMatcher([]string{tc.Pattern})
			if err != nil {
				t.Fatalf("NewMatcher(%q) error: %v", tc.Pattern, err)
			}

			if got := matcher.MatchAny(tc.Path); got != tc.Match {
				t.Errorf("Matcher(%q).MatchAny(%q) = %v, want %v", tc.Pattern, tc.Path, got, tc.Match)
			}
		}
	}

	matcher, err := pathmatch.NewMatcher([]string{"*.txt", "*.md"})
	if err != nil {
		t.Fatalf("NewMatcher error: %v", err)
	}

	if matcher.Len() != 2 || !matcher.MatchAny("README.md") || matcher.MatchAny("main.go") {
		t.Error("Matcher with two patterns did not match either pattern")
	}

	empty, err := pathmatch.NewMatcher(nil)
	if err != nil {
		t.Fatalf("NewMatcher(nil) error: %v", err)
	}

	if empty.MatchAny("anything") {
		t.Error("empty Matcher matched a path")
	}
}

func TestInvalidPatterns(t *testing.T) {
	t.Parallel()

	cases := map[string]error{
		"[abc":   pathmatch.ErrUnclosedClass,
		"a[!":    pathmatch.ErrUnclosedClass,
		`abc\`:   pathmatch.ErrTrailingEscape,
		`*.txt\`: pathmatch.ErrTrailingEscape,
	}

	for pattern, want := range cases {
		if _, err := pathmatch.Match(pattern, "abc"); !errors.Is(err, want) {
			t.Errorf("Match(%q) error = %v, want %v", pattern, err, want)
		}

		if _, err := pathmatch.NewMatcher([]string{"*.go", pattern}); !errors.Is(err, want) {
			t.Errorf("NewMatcher(%q) error = %v, want %v", pattern, err, want)
		}
	}
}
