package fetch

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/tracefetch/internal/constants"
)

// ReportEntry records the outcome of a single transfer.
type ReportEntry struct {
	// SessionID identifies the session that ran the transfer.
	SessionID string `yaml:"session_id,omitempty"`
	// URL is the request URL.
	URL string `yaml:"url"`
	// Method is the HTTP request method.
	Method string `yaml:"method"`
	// StatusLine is the status line of the final hop.
	StatusLine string `yaml:"status_line,omitempty"`
	// Result is the transfer result code.
	Result string `yaml:"result"`
	// Error is the transfer error, empty on success.
	Error string `yaml:"error,omitempty"`
	// BytesReceived counts the response body bytes received.
	BytesReceived int64 `yaml:"bytes_received"`
	// SavedTo is the path of the saved body file, if any.
	SavedTo string `yaml:"saved_to,omitempty"`
	// Duration is the wall-clock duration of the transfer.
	Duration string `yaml:"duration,omitempty"`
	// Headers lists the collected response header lines.
	Headers []string `yaml:"headers,omitempty"`
}

// TransferReport is the document written to the report file.
type TransferReport struct {
	// GeneratedAt is the time the report was written.
	GeneratedAt time.Time `yaml:"generated_at"`
	// Transfers lists one entry per attempted transfer.
	Transfers []ReportEntry `yaml:"transfers"`
}

// appendReportEntry queues one transfer outcome for the report.
// Entries are only collected when a report path is configured.
func (s *ServiceImpl) appendReportEntry(entry ReportEntry) {
	if s.cfg.ReportPath == "" {
		return
	}

	s.reportMutex.Lock()
	defer s.reportMutex.Unlock()

	s.reportEntries = append(s.reportEntries, entry)
}

// writeReport renders the collected entries as YAML and writes the report file.
func (s *ServiceImpl) writeReport() error {
	if s.cfg.ReportPath == "" {
		return nil
	}

	s.reportMutex.Lock()
	report := TransferReport{
		GeneratedAt: time.Now(),
		Transfers:   slices.Clone(s.reportEntries),
	}
	s.reportMutex.Unlock()

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	err = os.WriteFile(filepath.Clean(s.cfg.ReportPath), data, constants.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return nil
}
