package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pomlint/internal/domain/repositories"
)

// FilesystemDiscoveryRepository finds descriptors by walking the directory tree.
type FilesystemDiscoveryRepository struct{}

var _ repositories.DiscoveryRepository = (*FilesystemDiscoveryRepository)(nil)

// NewFilesystemDiscoveryRepository creates a FilesystemDiscoveryRepository.
func NewFilesystemDiscoveryRepository() *FilesystemDiscoveryRepository {
	return &FilesystemDiscoveryRepository{}
}

func (it *FilesystemDiscoveryRepository) Name() string { return "filesystem" }

// Discover globs every include pattern under root and drops excluded matches.
// A root that is a regular file is returned as is.
func (it *FilesystemDiscoveryRepository) Discover(
	ctx context.Context,
	root string,
	include, exclude []string,
) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	fsys := os.DirFS(root)
	seen := make(map[string]struct{})
	var paths []string

	for _, pattern := range include {
		matches, globErr := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if globErr != nil {
			return nil, fmt.Errorf("glob error for %q: %w", pattern, globErr)
		}

		for _, match := range matches {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			if _, dup := seen[match]; dup {
				continue
			}
			seen[match] = struct{}{}

			ok, matchErr := selected(match, include, exclude)
			if matchErr != nil {
				return nil, matchErr
			}
			if !ok {
				logger.Debugf("Excluded %s", match)
				continue
			}
			paths = append(paths, filepath.Join(root, filepath.FromSlash(match)))
		}
	}

	sort.Strings(paths)
	return paths, nil
}
