package conformance

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
)

// FilterPolicy decides file and case inclusion based on a path glob, a
// name regex, an exclude regex, and a tag. All fields are optional; a
// zero-value FilterPolicy includes everything.
//
// PathGlob is matched with path/filepath.Match rather than a third-party
// glob library: none of the grounded example repos vendor one for this
// purpose, and filepath.Match already implements the fnmatch-style
// semantics §4.3 calls for.
type FilterPolicy struct {
	PathGlob     string
	NameRegex    *regexp.Regexp
	ExcludeRegex *regexp.Regexp
	Tag          string
}

// ShouldIncludeFile reports whether path passes the configured glob.
func (p FilterPolicy) ShouldIncludeFile(path string) bool {
	if p.PathGlob == "" {
		return true
	}
	matched, err := filepath.Match(p.PathGlob, path)
	if err != nil {
		return true
	}
	return matched
}

// ShouldIncludeCase evaluates exclude, then tag, then name — exclude
// dominates, per §4.3's stated evaluation order.
func (p FilterPolicy) ShouldIncludeCase(r TestResult) bool {
	if p.ExcludeRegex != nil {
		name := composedName(r)
		if p.ExcludeRegex.MatchString(name) {
			return false
		}
	}

	if p.Tag != "" && !slices.Contains(r.Tags, p.Tag) {
		return false
	}

	if p.NameRegex != nil {
		name := composedName(r)
		if !p.NameRegex.MatchString(name) {
			return false
		}
	}

	return true
}

func composedName(r TestResult) string {
	return fmt.Sprintf("%s - %s", r.Group, r.Description)
}
