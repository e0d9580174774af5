package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weppcloud.dev/pkg/wepprunner/internal/domain"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

func TestIdentifierRegistry(t *testing.T) {
	t.Run("keeps registration order", func(t *testing.T) {
		registry := domain.NewIdentifierRegistry()
		require.NoError(t, registry.RegisterAll([]m.WeppID{3, 1, 2}))

		assert.Equal(t, []m.WeppID{3, 1, 2}, registry.AllIDs())
		assert.Equal(t, 3, registry.Len())
		assert.True(t, registry.Contains(1))
		assert.False(t, registry.Contains(4))
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		registry := domain.NewIdentifierRegistry()
		require.NoError(t, registry.Register(5))

		err := registry.Register(5)
		require.ErrorIs(t, err, m.ErrDuplicateID)
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("rejects negative ids", func(t *testing.T) {
		registry := domain.NewIdentifierRegistry()
		require.ErrorIs(t, registry.Register(-2), m.ErrInvalidReference)
		assert.Zero(t, registry.Len())
	})

	t.Run("RegisterAll stops at first failure", func(t *testing.T) {
		registry := domain.NewIdentifierRegistry()

		err := registry.RegisterAll([]m.WeppID{1, 2, 1, 4})
		require.ErrorIs(t, err, m.ErrDuplicateID)
		assert.Equal(t, []m.WeppID{1, 2}, registry.AllIDs())
	})

	t.Run("AllIDs returns a copy", func(t *testing.T) {
		registry := domain.NewIdentifierRegistry()
		require.NoError(t, registry.RegisterAll([]m.WeppID{1, 2}))

		ids := registry.AllIDs()
		ids[0] = 99

		assert.Equal(t, []m.WeppID{1, 2}, registry.AllIDs())
	})
}
