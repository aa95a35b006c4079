package commands_test

import (
	"context"
	"testing"
	"time"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/item"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/notification"
	"supplychain/internal/core/domain/model/ownership"
	"supplychain/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations shared by the command handler tests.
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) NextID(ctx context.Context) (kernel.ItemID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ItemID), args.Error(1)
}

func (m *MockItemRepository) Add(ctx context.Context, aggregate *item.Item) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, aggregate *item.Item) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockItemRepository) Get(ctx context.Context, id kernel.ItemID) (*item.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*item.Item), args.Error(1)
}

type MockOwnershipRepository struct {
	mock.Mock
}

func (m *MockOwnershipRepository) Add(ctx context.Context, record *ownership.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOwnershipRepository) Delete(ctx context.Context, itemID kernel.ItemID, owner kernel.Identity) error {
	args := m.Called(ctx, itemID, owner)
	return args.Error(0)
}

func (m *MockOwnershipRepository) Get(
	ctx context.Context,
	itemID kernel.ItemID,
	owner kernel.Identity,
) (*ownership.Record, error) {
	args := m.Called(ctx, itemID, owner)
	return args.Get(0).(*ownership.Record), args.Error(1)
}

type MockNotificationLog struct {
	mock.Mock
}

func (m *MockNotificationLog) Append(ctx context.Context, n notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationLog) GetUndispatched(ctx context.Context, limit int) ([]notification.Notification, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]notification.Notification), args.Error(1)
}

func (m *MockNotificationLog) MarkDispatched(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type MockNotificationPublisher struct {
	mock.Mock
}

func (m *MockNotificationPublisher) Publish(ctx context.Context, n notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

func (m *MockUoW) OwnershipRepository() ports.OwnershipRepository {
	args := m.Called()
	return args.Get(0).(ports.OwnershipRepository)
}

func (m *MockUoW) NotificationLog() ports.NotificationLog {
	args := m.Called()
	return args.Get(0).(ports.NotificationLog)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// fixedClock pins handler timestamps so tests can assert on them.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// Shared fixture helpers.
func testItemID(t *testing.T, value int64) kernel.ItemID {
	t.Helper()

	id, err := kernel.NewItemID(value)
	require.NoError(t, err)
	return id
}

func testIdentity(t *testing.T, value string) kernel.Identity {
	t.Helper()

	identity, err := kernel.NewIdentity(value)
	require.NoError(t, err)
	return identity
}

func testRecord(t *testing.T, itemID kernel.ItemID, owner kernel.Identity) *ownership.Record {
	t.Helper()

	record, err := ownership.NewRecord(itemID, owner, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return record
}

func testItem(t *testing.T, id kernel.ItemID, sender, receiver kernel.Identity) *item.Item {
	t.Helper()

	aggregate, err := item.NewItem(id, "Widget", 10, sender, receiver, "fragile")
	require.NoError(t, err)
	return aggregate
}
