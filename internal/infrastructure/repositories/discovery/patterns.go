package discovery

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// selected reports whether a slash-separated relative path matches one of the
// include patterns and none of the exclude patterns.
func selected(path string, include, exclude []string) (bool, error) {
	included, err := matchAny(include, path)
	if err != nil || !included {
		return false, err
	}
	excluded, err := matchAny(exclude, path)
	if err != nil {
		return false, err
	}
	return !excluded, nil
}

func matchAny(patterns []string, path string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
