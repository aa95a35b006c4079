package kernel_test

import (
	"testing"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	t.Run("creates identity from opaque string", func(t *testing.T) {
		identity, err := kernel.NewIdentity("org1-warehouse")

		require.NoError(t, err)
		assert.Equal(t, "org1-warehouse", identity.String())
		require.NoError(t, identity.Validate())
		assert.False(t, identity.IsZero())
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := kernel.NewIdentity("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects blank string", func(t *testing.T) {
		_, err := kernel.NewIdentity("   ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestIdentity_IsEqual(t *testing.T) {
	t.Run("identities with same value are equal", func(t *testing.T) {
		a, err := kernel.NewIdentity("party-a")
		require.NoError(t, err)
		b, err := kernel.NewIdentity("party-a")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("identities with different values are not equal", func(t *testing.T) {
		a, err := kernel.NewIdentity("party-a")
		require.NoError(t, err)
		b, err := kernel.NewIdentity("party-b")
		require.NoError(t, err)

		assert.False(t, a.IsEqual(b))
	})

	t.Run("comparison is case sensitive", func(t *testing.T) {
		a, err := kernel.NewIdentity("Party-A")
		require.NoError(t, err)
		b, err := kernel.NewIdentity("party-a")
		require.NoError(t, err)

		assert.False(t, a.IsEqual(b))
	})
}

func TestIdentity_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var identity kernel.Identity

		err := identity.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrIdentityIsNotConstructed, err)
		assert.True(t, identity.IsZero())
	})
}
