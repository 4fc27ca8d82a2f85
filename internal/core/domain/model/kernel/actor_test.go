package kernel_test

import (
	"testing"

	"foodbank/internal/core/domain/model/kernel"
	"foodbank/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("creates partner actor", func(t *testing.T) {
		actor, err := kernel.NewActor("Community Fridge", false)

		require.NoError(t, err)
		assert.Equal(t, "Community Fridge", actor.Organization())
		assert.False(t, actor.IsAdmin())
	})

	t.Run("creates admin without organization", func(t *testing.T) {
		actor, err := kernel.NewActor("", true)

		require.NoError(t, err)
		assert.True(t, actor.IsAdmin())
	})

	t.Run("rejects non-admin without organization", func(t *testing.T) {
		_, err := kernel.NewActor("", false)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestActor_CanActFor(t *testing.T) {
	t.Run("partner can act for own organization only", func(t *testing.T) {
		actor, err := kernel.NewActor("Community Fridge", false)
		require.NoError(t, err)

		assert.True(t, actor.CanActFor("Community Fridge"))
		assert.False(t, actor.CanActFor("Neighborhood Pantry"))
	})

	t.Run("admin can act for any organization", func(t *testing.T) {
		actor, err := kernel.NewActor("", true)
		require.NoError(t, err)

		assert.True(t, actor.CanActFor("Community Fridge"))
		assert.True(t, actor.CanActFor("Neighborhood Pantry"))
	})
}
