//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pomlint/internal/infrastructure/repositories"
	"github.com/rios0rios0/pomlint/test/infrastructure/repositorydoubles"
)

func TestDiscoveryRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should register and retrieve a discovery by name", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewDiscoveryRegistry()
		spy := &repositorydoubles.SpyDiscoveryRepository{DiscoveryName: "git"}
		reg.Register(spy)

		// when
		d, err := reg.Get("git")

		// then
		require.NoError(t, err)
		assert.Same(t, spy, d)
	})

	t.Run("should fail for an unknown discovery", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewDiscoveryRegistry()
		reg.Register(&repositorydoubles.SpyDiscoveryRepository{DiscoveryName: "filesystem"})

		// when
		d, err := reg.Get("svn")

		// then
		assert.Nil(t, d)
		require.ErrorIs(t, err, repositories.ErrUnknownDiscovery)
		assert.Contains(t, err.Error(), "filesystem")
	})

	t.Run("should list registered names sorted", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewDiscoveryRegistry()
		reg.Register(&repositorydoubles.SpyDiscoveryRepository{DiscoveryName: "git"})
		reg.Register(&repositorydoubles.SpyDiscoveryRepository{DiscoveryName: "filesystem"})

		// when
		names := reg.Names()

		// then
		assert.Equal(t, []string{"filesystem", "git"}, names)
	})
}
