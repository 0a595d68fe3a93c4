package requirement

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
	"github.com/gobwas/glob"
	"github.com/google/uuid"
)

// NotEmpty accepts strings with at least one byte.
func NotEmpty[S ~string]() Requirement[S] {
	return &predicate[S]{
		test:    func(s S) bool { return len(s) > 0 },
		message: "value must not be an empty string",
	}
}

// NotBlank accepts strings containing at least one non-whitespace character.
func NotBlank[S ~string]() Requirement[S] {
	return &predicate[S]{
		test: func(s S) bool {
			return strings.IndexFunc(string(s), func(r rune) bool { return !unicode.IsSpace(r) }) >= 0
		},
		message: "value must not be a blank string",
	}
}

// Matches accepts strings fully matched by the regular expression pattern.
func Matches[S ~string](pattern string) (Requirement[S], error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid pattern %q: %v", ErrInvalidArgument, pattern, err)
	}
	return &predicate[S]{
		test:    func(s S) bool { return re.MatchString(string(s)) },
		message: fmt.Sprintf("value must match pattern %q", pattern),
	}, nil
}

// MatchesRegexp accepts strings for which re finds a match. Anchor the
// expression to require a full match.
func MatchesRegexp[S ~string](re *regexp.Regexp) (Requirement[S], error) {
	if re == nil {
		return nil, fmt.Errorf("%w: regexp must not be nil", ErrInvalidArgument)
	}
	return &predicate[S]{
		test:    func(s S) bool { return re.MatchString(string(s)) },
		message: fmt.Sprintf("value must match pattern %q", re.String()),
	}, nil
}

// MatchesGlob accepts strings matching the glob pattern. Separators limit the
// reach of single '*' wildcards, e.g. '/' for paths or '.' for hostnames.
func MatchesGlob[S ~string](pattern string, separators ...rune) (Requirement[S], error) {
	g, err := glob.Compile(pattern, separators...)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid glob %q: %v", ErrInvalidArgument, pattern, err)
	}
	return &predicate[S]{
		test:    func(s S) bool { return g.Match(string(s)) },
		message: fmt.Sprintf("value must match glob %q", pattern),
	}, nil
}

// UUID accepts strings holding a canonical (hyphenated, 36 characters) UUID.
func UUID[S ~string]() Requirement[S] {
	return &predicate[S]{
		test: func(s S) bool {
			if len(s) != 36 {
				return false
			}
			_, err := uuid.Parse(string(s))
			return err == nil
		},
		message: "value must be a valid UUID",
	}
}

// SemverConstraint accepts semantic version strings satisfying constraint,
// for example ">= 1.2, < 2.0". Strings that are not versions are rejected.
func SemverConstraint[S ~string](constraint string) (Requirement[S], error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid version constraint %q: %v", ErrInvalidArgument, constraint, err)
	}
	return &predicate[S]{
		test: func(s S) bool {
			v, err := semver.NewVersion(string(s))
			if err != nil {
				return false
			}
			return c.Check(v)
		},
		message: fmt.Sprintf("value must be a version satisfying %q", constraint),
	}, nil
}
