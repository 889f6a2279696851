//go:build unit

package discovery_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pomlint/internal/infrastructure/repositories/discovery"
)

func touch(t *testing.T, root string, rel string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("<project/>"), 0o600))
	return path
}

func TestFilesystemDiscoveryRepository(t *testing.T) {
	t.Parallel()

	t.Run("should find descriptors in nested modules and skip excluded ones", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		parent := touch(t, root, "pom.xml")
		module := touch(t, root, "core/pom.xml")
		touch(t, root, "core/target/classes/pom.xml")
		touch(t, root, "core/build.gradle")
		repository := discovery.NewFilesystemDiscoveryRepository()

		// when
		paths, err := repository.Discover(
			context.Background(), root, []string{"**/pom.xml"}, []string{"**/target/**"},
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{module, parent}, paths)
	})

	t.Run("should return a file root as is", func(t *testing.T) {
		t.Parallel()

		// given
		path := touch(t, t.TempDir(), "custom-pom.xml")

		// when
		paths, err := discovery.NewFilesystemDiscoveryRepository().Discover(
			context.Background(), path, []string{"**/pom.xml"}, nil,
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{path}, paths)
	})

	t.Run("should not return the same file twice for overlapping patterns", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		path := touch(t, root, "pom.xml")

		// when
		paths, err := discovery.NewFilesystemDiscoveryRepository().Discover(
			context.Background(), root, []string{"pom.xml", "**/pom.xml"}, nil,
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{path}, paths)
	})

	t.Run("should fail for a missing root", func(t *testing.T) {
		t.Parallel()

		// given
		root := filepath.Join(t.TempDir(), "missing")

		// when
		_, err := discovery.NewFilesystemDiscoveryRepository().Discover(
			context.Background(), root, []string{"**/pom.xml"}, nil,
		)

		// then
		require.Error(t, err)
	})
}
