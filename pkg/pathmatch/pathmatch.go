// Package pathmatch matches slash-separated paths against find -path style globs.
//
// Unlike filepath.Match, wildcards cross directory separators:
//   - * matches any run of characters, including /
//   - ? matches exactly one character, including /
//   - [...] and [!...] match one character from, or outside, a set
//   - \ quotes the next character
package pathmatch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

var (
	// ErrUnclosedClass is returned for a [ without a matching ].
	ErrUnclosedClass = errors.New("unclosed character class")

	// ErrTrailingEscape is returned for a pattern ending in a lone backslash.
	ErrTrailingEscape = errors.New("trailing backslash")
)

//nolint:gochecknoglobals
var compiled sync.Map

// Match reports whether path matches pattern.
func Match(pattern, path string) (bool, error) {
	re, err := compile(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(path), nil
}

// Matcher holds a set of compiled patterns.
type Matcher struct {
	res []*regexp.Regexp
}

// NewMatcher compiles patterns once for repeated matching.
func NewMatcher(patterns []string) (*Matcher, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := compile(pattern)
		if err != nil {
			return nil, err
		}

		res = append(res, re)
	}

	return &Matcher{res: res}, nil
}

// Len returns the number of patterns.
func (m *Matcher) Len() int {
	return len(m.res)
}

// MatchAny reports whether path matches at least one pattern.
func (m *Matcher) MatchAny(path string) bool {
	for _, re := range m.res {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

func compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := compiled.Load(pattern); ok {
		return re.(*regexp.Regexp), nil //nolint:forcetypeassert
	}

	expr, err := translate(pattern)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}

	compiled.Store(pattern, re)

	return re, nil
}

// translate rewrites a glob into an anchored regular expression.
func translate(pattern string) (string, error) {
	var out strings.Builder

	out.WriteByte('^')

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			out.WriteString(".*")
		case '?':
			out.WriteByte('.')
		case '\\':
			if i+1 == len(pattern) {
				return "", ErrTrailingEscape
			}

			i++
			out.WriteString(regexp.QuoteMeta(pattern[i : i+1]))
		case '[':
			end := classEnd(pattern, i)
			if end < 0 {
				return "", ErrUnclosedClass
			}

			out.WriteString(class(pattern[i+1 : end]))

			i = end
		default:
			out.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	out.WriteByte('$')

	return out.String(), nil
}

// classEnd returns the index of the ] closing the class opened at start, or -1.
// A ] directly after [ or [! is a literal member.
func classEnd(pattern string, start int) int {
	i := start + 1

	if i < len(pattern) && pattern[i] == '!' {
		i++
	}

	if i < len(pattern) && pattern[i] == ']' {
		i++
	}

	if end := strings.IndexByte(pattern[i:], ']'); end >= 0 {
		return i + end
	}

	return -1
}

// class converts the body of a glob bracket expression into a regexp class.
func class(body string) string {
	negate := strings.HasPrefix(body, "!")
	if negate {
		body = body[1:]
	}

	var out strings.Builder

	out.WriteByte('[')

	if negate {
		out.WriteByte('^')
	}

	for _, r := range body {
		switch r {
		case '\\', '[', ']', '^':
			out.WriteByte('\\')
		}

		out.WriteRune(r)
	}

	out.WriteByte(']')

	return out.String()
}
