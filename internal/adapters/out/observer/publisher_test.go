package observer_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"supplychain/internal/adapters/out/observer"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogNotificationPublisher_Publish(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	publisher := observer.NewSlogNotificationPublisher(logger)

	itemID, err := kernel.NewItemID(1)
	require.NoError(t, err)
	sender, err := kernel.NewIdentity("warehouse-1")
	require.NoError(t, err)

	occurredAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	n, err := notification.NewItemCreated(itemID, "Ceramic Tiles", 40, sender, occurredAt)
	require.NoError(t, err)

	// Act
	err = publisher.Publish(context.Background(), n)

	// Assert
	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "ItemCreated")
	assert.Contains(t, output, "itemId=1")
	assert.Contains(t, output, n.ID().String())
}

func TestSlogNotificationPublisher_Publish_InvalidNotification(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	publisher := observer.NewSlogNotificationPublisher(logger)

	// Act
	err := publisher.Publish(context.Background(), notification.Notification{})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, notification.ErrNotificationIsNotConstructed)
	assert.Empty(t, buf.String())
}
