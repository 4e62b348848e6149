package fetch

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oshokin/tracefetch/internal/config"
	"github.com/oshokin/tracefetch/internal/engine"
)

func TestTransferStatistics_InitialState(t *testing.T) {
	t.Parallel()

	service := NewService(new(config.Config), nil)

	impl, ok := service.(*ServiceImpl)
	assert.True(t, ok, "Service should be of type *ServiceImpl")
	assert.NotNil(t, impl.stats, "Statistics should be initialized")
	assert.Equal(t, int64(0), impl.stats.TotalTransfers, "Initial transfers should be 0")
	assert.Equal(t, int64(0), impl.stats.TransfersSucceeded, "Initial successes should be 0")
	assert.Equal(t, int64(0), impl.stats.TransfersFailed, "Initial failures should be 0")
	assert.Equal(t, int64(0), impl.stats.TotalBytesReceived, "Initial bytes should be 0")
	assert.Empty(t, impl.stats.Errors, "Initial errors should be empty")
}

func TestTransferStatistics_RecordSuccess(t *testing.T) {
	t.Parallel()

	service := NewService(new(config.Config), nil)

	impl, ok := service.(*ServiceImpl)
	assert.True(t, ok, "Service should be of type *ServiceImpl")

	// Record two completed transfers, one of them saved to a file.
	impl.recordSuccess(1024, true)
	impl.recordSuccess(2048, false)

	assert.Equal(t, int64(2), impl.stats.TotalTransfers, "Should have 2 transfers")
	assert.Equal(t, int64(2), impl.stats.TransfersSucceeded, "Should have 2 successes")
	assert.Equal(t, int64(3072), impl.stats.TotalBytesReceived, "Should have 3072 bytes received")
	assert.Equal(t, int64(1), impl.stats.BodiesSaved, "Should have 1 saved body")
}

func TestTransferStatistics_RecordFailure(t *testing.T) {
	t.Parallel()

	service := NewService(new(config.Config), nil)

	impl, ok := service.(*ServiceImpl)
	assert.True(t, ok, "Service should be of type *ServiceImpl")

	transferErr := errors.New("connection refused")
	impl.recordFailure(TransferError{
		URL:       "http://down.test/",
		SessionID: "11112222-3333-4444-5555-666677778888",
		Code:      engine.CodeConnectFailed,
		Err:       transferErr,
	})

	assert.Equal(t, int64(1), impl.stats.TotalTransfers, "Should have 1 transfer")
	assert.Equal(t, int64(1), impl.stats.TransfersFailed, "Should have 1 failure")
	assert.Len(t, impl.stats.Errors, 1, "Should have 1 recorded error")
	assert.Equal(t, "http://down.test/", impl.stats.Errors[0].URL, "Error should carry the URL")
	assert.Equal(t, engine.CodeConnectFailed, impl.stats.Errors[0].Code, "Error should carry the code")
	assert.Equal(t, transferErr, impl.stats.Errors[0].Err, "Error should carry the cause")
}

// TestFormatDuration tests human-readable duration formatting.
func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{
			name:     "sub-second duration",
			duration: 150 * time.Millisecond,
			expected: "150ms",
		},
		{
			name:     "just under a second",
			duration: 999 * time.Millisecond,
			expected: "999ms",
		},
		{
			name:     "seconds only",
			duration: 2 * time.Second,
			expected: "2s",
		},
		{
			name:     "minutes and seconds",
			duration: 65 * time.Second,
			expected: "1m 5s",
		},
		{
			name:     "hours, minutes, and seconds",
			duration: time.Hour + 2*time.Minute + 5*time.Second,
			expected: "1h 2m 5s",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}

// TestShortSessionID tests session ID truncation for display.
func TestShortSessionID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0a1b2c3d",
		shortSessionID("0a1b2c3d-ffff-ffff-ffff-ffffffffffff"),
		"Long session IDs should be truncated")
	assert.Equal(t, "short", shortSessionID("short"),
		"Short session IDs should pass through unchanged")
	assert.Empty(t, shortSessionID(""), "Empty session IDs should pass through unchanged")
}
