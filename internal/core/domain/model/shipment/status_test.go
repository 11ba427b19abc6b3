package shipment_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all lifecycle statuses", func(t *testing.T) {
		for _, s := range []shipment.Status{
			shipment.Created, shipment.InProgress, shipment.Completed, shipment.Failed,
		} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		require.Error(t, shipment.Unknown.Validate())
		require.Error(t, shipment.Status(42).Validate())
		require.Error(t, shipment.Status(-1).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   shipment.Status
		expected string
	}{
		{shipment.Unknown, "Unknown"},
		{shipment.Created, "Created"},
		{shipment.InProgress, "InProgress"},
		{shipment.Completed, "Completed"},
		{shipment.Failed, "Failed"},
		{shipment.Status(99), "Unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, shipment.Created.IsTerminal())
	assert.False(t, shipment.InProgress.IsTerminal())
	assert.True(t, shipment.Completed.IsTerminal())
	assert.True(t, shipment.Failed.IsTerminal())
	assert.False(t, shipment.Unknown.IsTerminal())
}

func TestStatus_Accept(t *testing.T) {
	t.Run("should accept from Created", func(t *testing.T) {
		next, err := shipment.Created.Accept()

		require.NoError(t, err)
		assert.Equal(t, shipment.InProgress, next)
	})

	t.Run("should fail from any other status", func(t *testing.T) {
		for _, s := range []shipment.Status{
			shipment.Unknown, shipment.InProgress, shipment.Completed, shipment.Failed,
		} {
			_, err := s.Accept()
			require.Error(t, err, s.String())
		}
	})
}

func TestResolveByDeadline(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should complete when deadline has not passed", func(t *testing.T) {
		assert.Equal(t, shipment.Completed, shipment.ResolveByDeadline(now.Add(time.Minute), now))
	})

	t.Run("should fail when deadline has passed", func(t *testing.T) {
		assert.Equal(t, shipment.Failed, shipment.ResolveByDeadline(now.Add(-time.Minute), now))
	})

	t.Run("should complete when deadline equals the evaluation instant", func(t *testing.T) {
		assert.Equal(t, shipment.Completed, shipment.ResolveByDeadline(now, now))
	})
}
