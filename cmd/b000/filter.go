package main

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// fileFilter reports whether a candidate path passes the mutually
// exclusive --pattern/--pattern-exact/--regex selection (§6). A zero-value
// filter (none of the three flags set) accepts everything.
type fileFilter struct {
	glob  string
	exact string
	re    *regexp.Regexp
}

func newFileFilter(pattern, patternExact, regex string) (*fileFilter, error) {
	set := 0
	if pattern != "" {
		set++
	}
	if patternExact != "" {
		set++
	}
	if regex != "" {
		set++
	}
	if set > 1 {
		return nil, fmt.Errorf("--pattern, --pattern-exact, and --regex are mutually exclusive")
	}

	f := &fileFilter{glob: pattern, exact: patternExact}
	if regex != "" {
		re, err := regexp.Compile(regex)
		if err != nil {
			return nil, fmt.Errorf("invalid --regex: %w", err)
		}
		f.re = re
	}
	return f, nil
}

func (f *fileFilter) Match(path string) bool {
	name := filepath.Base(path)
	switch {
	case f.glob != "":
		ok, err := filepath.Match(f.glob, name)
		return err == nil && ok
	case f.exact != "":
		return name == f.exact
	case f.re != nil:
		return f.re.MatchString(name)
	default:
		return true
	}
}
