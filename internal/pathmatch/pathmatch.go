// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pathmatch decides whether an access rule applies to a request.
//
// A rule pattern is either a literal path ("/admin/login"), matching only an
// identical path, or a literal prefix followed by a single trailing wildcard
// ("/admin/*"), matching the prefix and any suffix. Matching is
// case-sensitive and runs against the raw request path without the query
// string. Rules may be restricted to a set of HTTP methods.
//
// Rules are compiled once at startup and are immutable afterwards, so a
// [Rules] value can be shared by concurrent requests without locking.
package pathmatch

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// wildcard is the only supported glob token. It may appear once, at the end.
const wildcard = "*"

var (
	// ErrEmptyPattern is returned when a rule has no path pattern.
	ErrEmptyPattern = errors.New("empty path pattern")

	// ErrMisplacedWildcard is returned when '*' appears anywhere but at the
	// very end of a pattern.
	ErrMisplacedWildcard = errors.New("wildcard is only supported at the end of a pattern")

	// ErrPatternNotAbsolute is returned when a pattern does not start with '/'.
	ErrPatternNotAbsolute = errors.New("path pattern must start with '/'")

	// ErrUnknownMethod is returned when a verb restriction names a method
	// that is not a standard HTTP method.
	ErrUnknownMethod = errors.New("unknown HTTP method")
)

var knownMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodConnect: {},
	http.MethodOptions: {},
	http.MethodTrace:   {},
}

// Rule is a compiled path pattern with an optional verb restriction.
type Rule struct {
	pattern string
	prefix  string
	isGlob  bool
	verbs   map[string]struct{}
}

// Compile validates pattern and builds a [Rule]. When verbs is empty the
// rule applies to every method.
func Compile(pattern string, verbs ...string) (Rule, error) {
	if pattern == "" {
		return Rule{}, ErrEmptyPattern
	}
	if !strings.HasPrefix(pattern, "/") {
		return Rule{}, fmt.Errorf("%w: %q", ErrPatternNotAbsolute, pattern)
	}

	prefix, isGlob := strings.CutSuffix(pattern, wildcard)
	if strings.Contains(prefix, wildcard) {
		return Rule{}, fmt.Errorf("%w: %q", ErrMisplacedWildcard, pattern)
	}

	rule := Rule{pattern: pattern, prefix: prefix, isGlob: isGlob}

	if len(verbs) > 0 {
		rule.verbs = make(map[string]struct{}, len(verbs))
		for _, verb := range verbs {
			verb = strings.ToUpper(strings.TrimSpace(verb))
			if _, ok := knownMethods[verb]; !ok {
				return Rule{}, fmt.Errorf("%w: %q in rule %q", ErrUnknownMethod, verb, pattern)
			}
			rule.verbs[verb] = struct{}{}
		}
	}

	return rule, nil
}

// Parse compiles a rule from its configuration form. Two shapes are
// accepted:
//
//	/admin/*
//	GET,POST /admin/*
func Parse(s string) (Rule, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		return Compile(fields[0])
	case 2:
		return Compile(fields[1], strings.Split(fields[0], ",")...)
	default:
		return Rule{}, fmt.Errorf("invalid rule %q: expected \"[METHODS] /pattern\"", s)
	}
}

// Matches reports whether the rule applies to a request with the given
// method and path. path must not contain the query string.
func (r Rule) Matches(method, path string) bool {
	if r.verbs != nil {
		if _, ok := r.verbs[method]; !ok {
			return false
		}
	}

	if r.isGlob {
		return strings.HasPrefix(path, r.prefix)
	}

	return path == r.prefix
}

// String returns the original pattern.
func (r Rule) String() string {
	return r.pattern
}

// Rules is an ordered set of compiled rules.
type Rules []Rule

// ParseAll compiles every configuration string in raw. The first invalid
// rule aborts compilation.
func ParseAll(raw []string) (Rules, error) {
	rules := make(Rules, 0, len(raw))
	for _, s := range raw {
		rule, err := Parse(s)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// MatchAny reports whether at least one rule matches.
func (rs Rules) MatchAny(method, path string) bool {
	for _, rule := range rs {
		if rule.Matches(method, path) {
			return true
		}
	}

	return false
}

// Patterns returns the pattern of every rule, in order.
func (rs Rules) Patterns() []string {
	patterns := make([]string, 0, len(rs))
	for _, rule := range rs {
		patterns = append(patterns, rule.String())
	}

	return patterns
}
