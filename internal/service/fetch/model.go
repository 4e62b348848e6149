package fetch

import (
	"time"

	"github.com/oshokin/tracefetch/internal/engine"
)

// TransferStatistics tracks transfer statistics for the current session.
type TransferStatistics struct {
	// StartTime marks when the session started.
	StartTime time.Time
	// EndTime marks when the session finished.
	EndTime time.Time
	// TotalTransfers counts all attempted transfers.
	TotalTransfers int64
	// TransfersSucceeded counts transfers that completed without error.
	TransfersSucceeded int64
	// TransfersFailed counts transfers that ended with an error.
	TransfersFailed int64
	// TotalBytesReceived accumulates response body bytes across successful transfers.
	TotalBytesReceived int64
	// BodiesSaved counts response bodies written to files.
	BodiesSaved int64
	// Errors collects details of failed transfers.
	Errors []TransferError
}

// TransferError describes a single failed transfer.
type TransferError struct {
	// URL is the request URL of the failed transfer.
	URL string
	// SessionID identifies the session that ran the transfer,
	// empty when the failure happened before a session existed.
	SessionID string
	// Code is the transfer result code.
	Code engine.Code
	// Err is the underlying error.
	Err error
}
