package commands_test

import (
	"testing"
	"time"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/item"
	"supplychain/internal/core/domain/model/ownership"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkInTransitCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	itemID := testItemID(t, 1)
	caller := testIdentity(t, "org1-warehouse")
	receiver := testIdentity(t, "org2-store")
	clock := fixedClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}

	cmd, err := commands.NewMarkInTransitCommand(itemID, caller)
	require.NoError(t, err)

	aggregate := testItem(t, itemID, caller, receiver)

	mockItems := new(MockItemRepository)
	mockRecords := new(MockOwnershipRepository)
	mockLog := new(MockNotificationLog)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	// Set up expectations in order
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

	handler := commands.NewMarkInTransitCommandHandler(mockFactory, clock)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, item.InTransit, aggregate.Status())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockItems.AssertExpectations(t)
	mockRecords.AssertExpectations(t)
	mockLog.AssertExpectations(t)
}

func TestMarkInTransitCommandHandler_Handle_CallerIsNotOwner(t *testing.T) {
	// Arrange
	ctx := t.Context()
	itemID := testItemID(t, 1)
	caller := testIdentity(t, "org3-outsider")
	clock := fixedClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}

	cmd, err := commands.NewMarkInTransitCommand(itemID, caller)
	require.NoError(t, err)

	mockRecords := new(MockOwnershipRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OwnershipRepository").Return(mockRecords).Once(),
		mockRecords.On("Get", ctx, itemID, caller).
			Return((*ownership.Record)(nil), errs.NewObjectNotFoundError("ownership", itemID.Int64())).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewMarkInTransitCommandHandler(mockFactory, clock)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRecords.AssertExpectations(t)
}

func TestMarkInTransitCommandHandler_Handle_AlreadyInTransit(t *testing.T) {
	// Arrange
	ctx := t.Context()
	itemID := testItemID(t, 1)
	caller := testIdentity(t, "org1-warehouse")
	receiver := testIdentity(t, "org2-store")
	clock := fixedClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}

	cmd, err := commands.NewMarkInTransitCommand(itemID, caller)
	require.NoError(t, err)

	aggregate, err := item.RestoreItem(itemID, "Widget", 10, caller, receiver, item.InTransit, "", nil)
	require.NoError(t, err)

	mockItems := new(MockItemRepository)
	mockRecords := new(MockOwnershipRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OwnershipRepository").Return(mockRecords).Once(),
		mockRecords.On("Get", ctx, itemID, caller).Return(testRecord(t, itemID, caller), nil).Once(),
		mockUoW.On("ItemRepository").Return(mockItems).Once(),
		mockItems.On("Get", ctx, itemID).Return(aggregate, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewMarkInTransitCommandHandler(mockFactory, clock)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, item.ErrInvalidTransition)
	mockItems.AssertNotCalled(t, "Update", ctx, aggregate)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockItems.AssertExpectations(t)
	mockRecords.AssertExpectations(t)
}

func TestMarkInTransitCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.MarkInTransitCommand // zero value command

	mockFactory := new(MockUoWFactory)
	clock := fixedClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	handler := commands.NewMarkInTransitCommandHandler(mockFactory, clock)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrMarkInTransitCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}
