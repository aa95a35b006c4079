package queries_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOwnershipQuery_Valid(t *testing.T) {
	itemID, err := kernel.NewItemID(7)
	require.NoError(t, err)
	caller, err := kernel.NewIdentity("warehouse-1")
	require.NoError(t, err)

	query, err := queries.NewGetOwnershipQuery(itemID, caller)

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.True(t, query.ItemID().IsEqual(itemID))
	assert.True(t, query.Caller().IsEqual(caller))
}

func TestNewGetOwnershipQuery_InvalidItemID(t *testing.T) {
	caller, err := kernel.NewIdentity("warehouse-1")
	require.NoError(t, err)

	_, err = queries.NewGetOwnershipQuery(kernel.ItemID{}, caller)

	require.Error(t, err)
}

func TestNewGetOwnershipQuery_InvalidCaller(t *testing.T) {
	itemID, err := kernel.NewItemID(7)
	require.NoError(t, err)

	_, err = queries.NewGetOwnershipQuery(itemID, kernel.Identity{})

	require.Error(t, err)
}

func TestGetOwnershipQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOwnershipQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOwnershipQueryIsNotConstructed)
}
