package commands_test

import (
	"errors"
	"testing"
	"time"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDispatchNotificationsCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	itemID := testItemID(t, 1)
	caller := testIdentity(t, "org1-warehouse")
	occurredAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	first, err := notification.NewItemCreated(itemID, "Widget", 10, caller, occurredAt)
	require.NoError(t, err)
	second, err := notification.NewNameChanged(itemID, "Widget Mk II", occurredAt)
	require.NoError(t, err)

	pending := []notification.Notification{first, second}

	cmd := commands.NewDispatchNotificationsCommand()

	mockLog := new(MockNotificationLog)
	mockPublisher := new(MockNotificationPublisher)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	// Notifications are published in append order, then flagged together.
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("NotificationLog").Return(mockLog).Once(),
		mockLog.On("GetUndispatched", ctx, 100).Return(pending, nil).Once(),
		mockPublisher.On("Publish", ctx, first).Return(nil).Once(),
		mockPublisher.On("Publish", ctx, second).Return(nil).Once(),
		mockLog.On("MarkDispatched", ctx, []uuid.UUID{first.ID(), second.ID()}).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDispatchNotificationsCommandHandler(mockFactory, mockPublisher)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockLog.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestDispatchNotificationsCommandHandler_Handle_NothingPending(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd := commands.NewDispatchNotificationsCommand()

	mockLog := new(MockNotificationLog)
	mockPublisher := new(MockNotificationPublisher)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("NotificationLog").Return(mockLog).Once(),
		mockLog.On("GetUndispatched", ctx, 100).Return([]notification.Notification{}, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDispatchNotificationsCommandHandler(mockFactory, mockPublisher)

	// Act
	err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoPendingNotifications)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockLog.AssertExpectations(t)
}

func TestDispatchNotificationsCommandHandler_Handle_PublishError(t *testing.T) {
	// A failed publish aborts the batch; nothing is marked dispatched.
	// Arrange
	ctx := t.Context()
	itemID := testItemID(t, 1)
	caller := testIdentity(t, "org1-warehouse")
	occurredAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	first, err := notification.NewItemCreated(itemID, "Widget", 10, caller, occurredAt)
	require.NoError(t, err)

	expectedError := errors.New("observer unreachable")
	cmd := commands.NewDispatchNotificationsCommand()

	mockLog := new(MockNotificationLog)
	mockPublisher := new(MockNotificationPublisher)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("NotificationLog").Return(mockLog).Once(),
		mockLog.On("GetUndispatched", ctx, 100).Return([]notification.Notification{first}, nil).Once(),
		mockPublisher.On("Publish", ctx, first).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDispatchNotificationsCommandHandler(mockFactory, mockPublisher)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockLog.AssertNotCalled(t, "MarkDispatched", mock.Anything, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockLog.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}
