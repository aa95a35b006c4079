package commands_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDispatchNotificationsCommand(t *testing.T) {
	cmd := commands.NewDispatchNotificationsCommand()

	assert.NoError(t, cmd.Validate())
}

func TestDispatchNotificationsCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.DispatchNotificationsCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDispatchNotificationsCommandIsNotConstructed)
}
