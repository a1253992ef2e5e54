package buildmap

import (
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// IgnoreFile is the optional project file holding gitignore-syntax
// patterns for paths the build should skip.
const IgnoreFile = "/.previewignore"

// ignoreMatcher wraps go-git's gitignore matcher over the patterns found
// in the project's ignore file. A nil matcher ignores nothing.
type ignoreMatcher struct {
	matcher gitignore.Matcher
}

func newIgnoreMatcher(content string) *ignoreMatcher {
	var patterns []gitignore.Pattern
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if p := gitignore.ParsePattern(line, nil); p != nil {
			patterns = append(patterns, p)
		}
	}
	if len(patterns) == 0 {
		return &ignoreMatcher{}
	}
	return &ignoreMatcher{matcher: gitignore.NewMatcher(patterns)}
}

func (m *ignoreMatcher) Ignored(path string) bool {
	if m.matcher == nil {
		return false
	}
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	return m.matcher.Match(segments, false)
}
