package item_test

import (
	"fmt"
	"testing"

	"supplychain/internal/core/domain/model/item"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(item.Unknown))
		assert.Equal(t, 1, int(item.Created))
		assert.Equal(t, 2, int(item.InTransit))
		assert.Equal(t, 3, int(item.Delivered))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []item.Status{
			item.Created,
			item.InTransit,
			item.Delivered,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []item.Status{
			item.Unknown,
			item.Status(-1),
			item.Status(4),
			item.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return readable names", func(t *testing.T) {
		assert.Equal(t, "Unknown", item.Unknown.String())
		assert.Equal(t, "Created", item.Created.String())
		assert.Equal(t, "InTransit", item.InTransit.String())
		assert.Equal(t, "Delivered", item.Delivered.String())
	})

	t.Run("should return Unknown for out-of-range values", func(t *testing.T) {
		assert.Equal(t, "Unknown", item.Status(42).String())
		assert.Equal(t, "Unknown", item.Status(-1).String())
	})
}

func TestStatus_MarkInTransit(t *testing.T) {
	t.Run("Created transitions to InTransit", func(t *testing.T) {
		newStatus, err := item.Created.MarkInTransit()

		require.NoError(t, err)
		assert.Equal(t, item.InTransit, newStatus)
	})

	t.Run("other statuses are rejected", func(t *testing.T) {
		invalidStarts := []item.Status{item.Unknown, item.InTransit, item.Delivered}

		for _, status := range invalidStarts {
			t.Run(fmt.Sprintf("rejects transition from %s", status.String()), func(t *testing.T) {
				_, err := status.MarkInTransit()

				require.Error(t, err)
				require.ErrorIs(t, err, item.ErrInvalidTransition)
			})
		}
	})
}

func TestStatus_MarkDelivered(t *testing.T) {
	t.Run("InTransit transitions to Delivered", func(t *testing.T) {
		newStatus, err := item.InTransit.MarkDelivered()

		require.NoError(t, err)
		assert.Equal(t, item.Delivered, newStatus)
	})

	t.Run("other statuses are rejected", func(t *testing.T) {
		invalidStarts := []item.Status{item.Unknown, item.Created, item.Delivered}

		for _, status := range invalidStarts {
			t.Run(fmt.Sprintf("rejects transition from %s", status.String()), func(t *testing.T) {
				_, err := status.MarkDelivered()

				require.Error(t, err)
				require.ErrorIs(t, err, item.ErrInvalidTransition)
			})
		}
	})
}

func TestStatus_Ratchet(t *testing.T) {
	t.Run("status takes each value exactly once in order", func(t *testing.T) {
		status := item.Created

		status, err := status.MarkInTransit()
		require.NoError(t, err)
		assert.Equal(t, item.InTransit, status)

		status, err = status.MarkDelivered()
		require.NoError(t, err)
		assert.Equal(t, item.Delivered, status)

		// Delivered is terminal: neither transition applies again.
		_, err = status.MarkInTransit()
		require.ErrorIs(t, err, item.ErrInvalidTransition)
		_, err = status.MarkDelivered()
		require.ErrorIs(t, err, item.ErrInvalidTransition)
	})
}
