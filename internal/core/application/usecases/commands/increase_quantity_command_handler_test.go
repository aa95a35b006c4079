package commands_test

import (
	"testing"
	"time"

	"supplychain/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIncreaseQuantityCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	itemID := testItemID(t, 1)
	caller := testIdentity(t, "org1-warehouse")
	receiver := testIdentity(t, "org2-store")
	clock := fixedClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}

	cmd, err := commands.NewIncreaseQuantityCommand(itemID, caller, 5)
	require.NoError(t, err)

	aggregate := testItem(t, itemID, caller, receiver) // starts at quantity 10

	mockItems := new(MockItemRepository)
	mockRecords := new(MockOwnershipRepository)
	mockLog := new(MockNotificationLog)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OwnershipRepository").Return(mockRecords).Once(),
		mockRecords.On("Get", ctx, itemID, caller).Return(testRecord(t, itemID, caller), nil).Once(),
		mockUoW.On("ItemRepository").Return(mockItems).Once(),
		mockItems.On("Get", ctx, itemID).Return(aggregate, nil).Once(),
		mockItems.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("NotificationLog").Return(mockLog).Once(),
		mockLog.On("Append", ctx, mock.AnythingOfType("notification.Notification")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewIncreaseQuantityCommandHandler(mockFactory, clock)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 15, aggregate.Quantity())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockItems.AssertExpectations(t)
	mockRecords.AssertExpectations(t)
	mockLog.AssertExpectations(t)
}

func TestIncreaseQuantityCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.IncreaseQuantityCommand // zero value command

	mockFactory := new(MockUoWFactory)
	clock := fixedClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	handler := commands.NewIncreaseQuantityCommandHandler(mockFactory, clock)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrIncreaseQuantityCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}
