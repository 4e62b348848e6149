package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/tracefetch/internal/logger"
)

const (
	// sessionIDPrefixLength is how many characters of a session ID
	// progress messages show.
	sessionIDPrefixLength = 8
)

// shortSessionID returns the display form of a session ID.
func shortSessionID(sessionID string) string {
	if len(sessionID) <= sessionIDPrefixLength {
		return sessionID
	}

	return sessionID[:sessionIDPrefixLength]
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

// recordSuccess atomically updates statistics after a completed transfer.
func (s *ServiceImpl) recordSuccess(bytesReceived int64, savedToFile bool) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.TotalTransfers++
	s.stats.TransfersSucceeded++
	s.stats.TotalBytesReceived += bytesReceived

	if savedToFile {
		s.stats.BodiesSaved++
	}
}

// recordFailure atomically updates statistics after a failed transfer.
func (s *ServiceImpl) recordFailure(transferError TransferError) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.TotalTransfers++
	s.stats.TransfersFailed++
	s.stats.Errors = append(s.stats.Errors, transferError)
}

// PrintTransferSummary prints a formatted summary of transfer statistics.
func (s *ServiceImpl) PrintTransferSummary(ctx context.Context) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	stats := s.stats

	// If nothing was attempted, don't print a summary.
	if stats.TotalTransfers == 0 {
		return
	}

	// Check if the context was canceled (CTRL+C or timeout).
	wasInterrupted := ctx.Err() != nil

	s.printSummaryHeader(ctx, wasInterrupted)
	s.printTransferCounts(ctx, stats)
	s.printDataStatistics(ctx, stats)
	s.printSummaryFooter(ctx)
	s.printErrorDetails(ctx, stats)
	s.printFinalMessage(ctx, wasInterrupted, stats)
}

// printSummaryHeader prints the summary header.
func (s *ServiceImpl) printSummaryHeader(ctx context.Context, wasInterrupted bool) {
	logger.Info(ctx, "")

	if wasInterrupted {
		logger.Info(ctx, "═══════════════════════════════════════════════════════════════")
		logger.Info(ctx, "           TRANSFER SUMMARY (Interrupted)")
		logger.Info(ctx, "═══════════════════════════════════════════════════════════════")
	} else {
		logger.Info(ctx, "═══════════════════════════════════════════════════════════════")
		logger.Info(ctx, "                     TRANSFER SUMMARY")
		logger.Info(ctx, "═══════════════════════════════════════════════════════════════")
	}
}

// printTransferCounts prints per-transfer counters.
func (s *ServiceImpl) printTransferCounts(ctx context.Context, stats *TransferStatistics) {
	logger.Infof(ctx, "Transfers:        %d total", stats.TotalTransfers)

	if stats.TransfersSucceeded > 0 {
		logger.Infof(ctx, "  Succeeded:      %d", stats.TransfersSucceeded)
	}

	if stats.TransfersFailed > 0 {
		logger.Infof(ctx, "  Failed:         %d", stats.TransfersFailed)
	}

	if stats.BodiesSaved > 0 {
		logger.Infof(ctx, "  Bodies Saved:   %d", stats.BodiesSaved)
	}
}

// printDataStatistics prints received data volume, duration, and average speed.
func (s *ServiceImpl) printDataStatistics(ctx context.Context, stats *TransferStatistics) {
	if stats.TotalBytesReceived > 0 {
		logger.Info(ctx, "")
		//nolint:gosec // TotalBytesReceived is always positive, no overflow risk.
		logger.Infof(ctx, "Data Received:    %s", humanize.Bytes(uint64(stats.TotalBytesReceived)))
	}

	// Print duration if we have both start and end times.
	if !stats.StartTime.IsZero() && !stats.EndTime.IsZero() {
		duration := stats.EndTime.Sub(stats.StartTime)

		// Only show if duration is meaningful (> 100ms).
		if duration > 100*time.Millisecond {
			logger.Infof(ctx, "Duration:         %s", formatDuration(duration))

			// Calculate and show average speed if we received anything.
			if stats.TotalBytesReceived > 0 {
				bytesPerSecond := float64(stats.TotalBytesReceived) / duration.Seconds()
				logger.Infof(ctx, "Average Speed:    %s/s", humanize.Bytes(uint64(bytesPerSecond)))
			}
		}
	}
}

// printSummaryFooter prints the summary footer separator.
func (s *ServiceImpl) printSummaryFooter(ctx context.Context) {
	logger.Info(ctx, "═══════════════════════════════════════════════════════════════")
}

// printErrorDetails prints detailed error information if any errors occurred.
func (s *ServiceImpl) printErrorDetails(ctx context.Context, stats *TransferStatistics) {
	if len(stats.Errors) == 0 {
		return
	}

	logger.Info(ctx, "")
	logger.Errorf(ctx, "ERRORS ENCOUNTERED: %d", len(stats.Errors))

	for i := range stats.Errors {
		logger.Info(ctx, "")
		logger.Errorf(ctx, "  [%d] %s", i+1, stats.Errors[i].URL)

		if stats.Errors[i].SessionID != "" {
			logger.Errorf(ctx, "      Session: %s", shortSessionID(stats.Errors[i].SessionID))
		}

		logger.Errorf(ctx, "      Result: %s", stats.Errors[i].Code)
		logger.Errorf(ctx, "      Error: %s", stats.Errors[i].Err)
	}

	logger.Info(ctx, "")
	logger.Info(ctx, "═══════════════════════════════════════════════════════════════")
}

// printFinalMessage prints a closing message based on transfer results.
func (s *ServiceImpl) printFinalMessage(ctx context.Context, wasInterrupted bool, stats *TransferStatistics) {
	switch {
	case wasInterrupted:
		logger.Info(ctx, "")
		logger.Warn(ctx, "Transfers interrupted by user (CTRL+C).")

		if stats.TransfersSucceeded > 0 {
			logger.Infof(ctx, "Completed %d transfer(s) before interruption.", stats.TransfersSucceeded)
		}
	case len(stats.Errors) > 0:
		logger.Info(ctx, "")
		logger.Warnf(ctx, "%d error(s) occurred. See detailed error log above.", len(stats.Errors))
	case stats.TransfersSucceeded > 0:
		logger.Info(ctx, "")
		logger.Info(ctx, "All transfers completed successfully!")
	}
}
