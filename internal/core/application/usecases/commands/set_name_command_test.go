package commands_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetNameCommand_ValidInput(t *testing.T) {
	itemID := testItemID(t, 1)
	caller := testIdentity(t, "org1-warehouse")

	cmd, err := commands.NewSetNameCommand(itemID, caller, "Widget Mk II")

	require.NoError(t, err)
	assert.Equal(t, itemID, cmd.ItemID())
	assert.Equal(t, caller, cmd.Caller())
	assert.Equal(t, "Widget Mk II", cmd.Name())
	assert.NoError(t, cmd.Validate())
}

func TestNewSetNameCommand_EmptyNameIsAccepted(t *testing.T) {
	itemID := testItemID(t, 1)
	caller := testIdentity(t, "org1-warehouse")

	cmd, err := commands.NewSetNameCommand(itemID, caller, "")

	require.NoError(t, err)
	assert.Empty(t, cmd.Name())
}

func TestNewSetNameCommand_InvalidInput(t *testing.T) {
	caller := testIdentity(t, "org1-warehouse")

	_, err := commands.NewSetNameCommand(kernel.ItemID{}, caller, "Widget")
	require.Error(t, err)

	_, err = commands.NewSetNameCommand(testItemID(t, 1), kernel.Identity{}, "Widget")
	require.Error(t, err)
}

func TestSetNameCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.SetNameCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSetNameCommandIsNotConstructed)
}
