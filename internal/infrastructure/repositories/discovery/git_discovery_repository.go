package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pomlint/internal/domain/repositories"
)

// GitDiscoveryRepository finds descriptors among the files tracked in the Git
// index of the repository containing root. Untracked and ignored files are
// never returned.
type GitDiscoveryRepository struct{}

var _ repositories.DiscoveryRepository = (*GitDiscoveryRepository)(nil)

// NewGitDiscoveryRepository creates a GitDiscoveryRepository.
func NewGitDiscoveryRepository() *GitDiscoveryRepository {
	return &GitDiscoveryRepository{}
}

func (it *GitDiscoveryRepository) Name() string { return "git" }

func (it *GitDiscoveryRepository) Discover(
	ctx context.Context,
	root string,
	include, exclude []string,
) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	if info, statErr := os.Stat(absRoot); statErr == nil && !info.IsDir() {
		return []string{root}, nil
	}

	//nolint:exhaustruct // only DetectDotGit is relevant
	repo, err := git.PlainOpenWithOptions(absRoot, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %q: %w", absRoot, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open worktree: %w", err)
	}
	idx, err := repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("failed to read git index: %w", err)
	}

	top := worktree.Filesystem.Root()
	prefix, err := filepath.Rel(top, absRoot)
	if err != nil {
		return nil, fmt.Errorf("%q is outside the worktree %q: %w", absRoot, top, err)
	}
	prefix = filepath.ToSlash(prefix)
	if prefix == "." {
		prefix = ""
	} else {
		prefix += "/"
	}

	var paths []string
	for _, entry := range idx.Entries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !strings.HasPrefix(entry.Name, prefix) {
			continue
		}

		rel := strings.TrimPrefix(entry.Name, prefix)
		ok, matchErr := selected(rel, include, exclude)
		if matchErr != nil {
			return nil, matchErr
		}
		if !ok {
			continue
		}

		path := filepath.Join(top, filepath.FromSlash(entry.Name))
		if _, statErr := os.Stat(path); statErr != nil {
			logger.Debugf("Skipping %s: tracked but missing from the worktree", entry.Name)
			continue
		}
		paths = append(paths, path)
	}

	sort.Strings(paths)
	return paths, nil
}
