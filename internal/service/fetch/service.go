package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oshokin/tracefetch/internal/config"
	"github.com/oshokin/tracefetch/internal/constants"
	"github.com/oshokin/tracefetch/internal/engine"
	"github.com/oshokin/tracefetch/internal/logger"
)

// EngineFactory builds a fresh transfer engine.
// Every URL gets its own engine, so per-transfer state never leaks between sessions.
type EngineFactory func() engine.Engine

// Service provides methods for fetching URLs with full transfer tracing.
type Service interface {
	// FetchURLs runs one traced transfer per URL, in order.
	FetchURLs(ctx context.Context, urls []string)
	// PrintTransferSummary prints a formatted summary of transfer statistics.
	PrintTransferSummary(ctx context.Context)
}

// ServiceImpl implements the traced fetch service.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// newEngine builds the transfer engine backing each session.
	newEngine EngineFactory
	// stats tracks transfer statistics for the current session.
	stats *TransferStatistics
	// statsMutex protects concurrent access to statistics.
	statsMutex *sync.Mutex
	// reportEntries accumulates per-transfer report entries.
	reportEntries []ReportEntry
	// reportMutex protects concurrent access to reportEntries.
	reportMutex *sync.Mutex
}

// NewService creates a fetch service instance with a dependency-injected engine factory.
func NewService(cfg *config.Config, newEngine EngineFactory) Service {
	return &ServiceImpl{
		cfg:         cfg,
		newEngine:   newEngine,
		stats:       new(TransferStatistics),
		statsMutex:  new(sync.Mutex),
		reportMutex: new(sync.Mutex),
	}
}

// FetchURLs runs one traced transfer per URL, in order.
func (s *ServiceImpl) FetchURLs(ctx context.Context, urls []string) {
	// Record start time for statistics.
	s.statsMutex.Lock()
	s.stats.StartTime = time.Now()
	s.statsMutex.Unlock()

	// Ensure the output directory exists when bodies are saved to files.
	if s.cfg.OutputPath != "" {
		err := os.MkdirAll(s.cfg.OutputPath, constants.DefaultFolderPermissions)
		if err != nil {
			logger.Errorf(ctx, "Failed to create output path: %v", err)
			return
		}
	}

	traceWriter, err := s.openTraceWriter()
	if err != nil {
		logger.Errorf(ctx, "Failed to open trace destination: %v", err)
		return
	}

	defer traceWriter.Close() //nolint:errcheck // Error on close is not critical here.

	for _, requestURL := range urls {
		// Stop immediately once the context is canceled (CTRL+C or timeout).
		if ctx.Err() != nil {
			break
		}

		s.fetchURL(ctx, requestURL, traceWriter)
	}

	// Record end time for statistics.
	s.statsMutex.Lock()
	s.stats.EndTime = time.Now()
	s.statsMutex.Unlock()

	if err = s.writeReport(); err != nil {
		logger.Errorf(ctx, "Failed to write transfer report: %v", err)
	}
}

// openTraceWriter opens the destination receiving the formatted trace logs.
// An empty path keeps traces on stderr, "-" sends them to stdout,
// anything else names a file that gets truncated first.
func (s *ServiceImpl) openTraceWriter() (io.WriteCloser, error) {
	switch s.cfg.TracePath {
	case "":
		return nopWriteCloser{os.Stderr}, nil
	case "-":
		return nopWriteCloser{os.Stdout}, nil
	default:
		file, err := os.OpenFile(filepath.Clean(s.cfg.TracePath), overwriteFileOptions, constants.DefaultFilePermissions)
		if err != nil {
			return nil, fmt.Errorf("failed to open trace file: %w", err)
		}

		return file, nil
	}
}

// nopWriteCloser wraps a writer whose lifetime the service does not own.
type nopWriteCloser struct {
	io.Writer
}

// Close does nothing.
func (nopWriteCloser) Close() error { return nil }
