package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/tracefetch/internal/engine"
	"github.com/oshokin/tracefetch/internal/logger"
	"github.com/oshokin/tracefetch/internal/transfer"
)

// transferOption pairs an engine option with its configured value.
type transferOption struct {
	// option identifies the engine setting.
	option engine.Option
	// value is the strictly typed option value.
	value any
}

// fetchURL runs one traced transfer and records its outcome.
func (s *ServiceImpl) fetchURL(ctx context.Context, requestURL string, traceWriter io.Writer) {
	startedAt := time.Now()

	facade, sink, err := s.prepareTransfer(ctx, requestURL)
	if err != nil {
		logger.Errorf(ctx, "Failed to prepare transfer for %s: %v", requestURL, err)
		s.recordPreparationFailure(requestURL, err)

		return
	}

	execErr := facade.Execute(ctx)

	sink.finish()

	// The trace is flushed even when the transfer fails:
	// the partial log is exactly what the tool exists to capture.
	if _, writeErr := io.WriteString(traceWriter, facade.TraceLog()); writeErr != nil {
		logger.Errorf(ctx, "Failed to write trace log: %v", writeErr)
	}

	duration := time.Since(startedAt)
	code := facade.LastError()
	statusLine := lastStatusLine(facade.Headers())

	s.appendReportEntry(ReportEntry{
		SessionID:     facade.ID(),
		URL:           requestURL,
		Method:        s.cfg.Method,
		StatusLine:    statusLine,
		Result:        code.String(),
		Error:         errorText(execErr),
		BytesReceived: sink.bytesReceived,
		SavedTo:       sink.savedPath,
		Duration:      duration.Round(time.Millisecond).String(),
		Headers:       facade.Headers(),
	})

	if execErr != nil {
		logger.Errorf(ctx, "[%s] %s failed: %s",
			shortSessionID(facade.ID()), requestURL, facade.ErrorDescription(code))
		s.recordFailure(TransferError{
			URL:       requestURL,
			SessionID: facade.ID(),
			Code:      code,
			Err:       execErr,
		})

		return
	}

	//nolint:gosec // Byte counters are always positive, no overflow risk.
	logger.Infof(ctx, "[%s] %s: %s, received %s in %s",
		shortSessionID(facade.ID()), requestURL, statusLine,
		humanize.Bytes(uint64(sink.bytesReceived)), formatDuration(duration))
	s.recordSuccess(sink.bytesReceived, sink.savedPath != "")
}

// recordPreparationFailure records a transfer that never got off the ground.
func (s *ServiceImpl) recordPreparationFailure(requestURL string, err error) {
	// Coded failures keep their code, anything else counts as internal.
	code := engine.CodeInternal

	var engineErr *engine.Error
	if errors.As(err, &engineErr) {
		code = engineErr.Code
	}

	s.recordFailure(TransferError{URL: requestURL, Code: code, Err: err})
	s.appendReportEntry(ReportEntry{
		URL:    requestURL,
		Method: s.cfg.Method,
		Result: code.String(),
		Error:  err.Error(),
	})
}

// prepareTransfer builds the engine, facade, and body sink for one URL.
func (s *ServiceImpl) prepareTransfer(
	ctx context.Context,
	requestURL string,
) (transfer.Facade, *bodySink, error) {
	eng := s.newEngine()

	facade, err := transfer.NewFacade(eng)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create transfer facade: %w", err)
	}

	for _, opt := range s.transferOptions(requestURL) {
		if err = facade.Configure(opt.option, opt.value); err != nil {
			return nil, nil, fmt.Errorf("failed to configure %s: %w", opt.option, err)
		}
	}

	// The facade wires the trace callbacks, the body sink is registered
	// directly on the engine so save decisions can read the collected headers.
	sink := newBodySink(ctx, s.cfg, requestURL, facade)
	eng.SetWriteFunc(sink.consume)

	return facade, sink, nil
}

// transferOptions lists the engine options derived from the configuration.
func (s *ServiceImpl) transferOptions(requestURL string) []transferOption {
	options := []transferOption{
		{option: engine.OptionURL, value: requestURL},
		{option: engine.OptionMethod, value: s.cfg.Method},
		{option: engine.OptionTimeout, value: s.cfg.ParsedTimeout},
		{option: engine.OptionFollowRedirects, value: s.cfg.FollowRedirects},
		{option: engine.OptionMaxRedirects, value: int(s.cfg.MaxRedirects)},
		{option: engine.OptionInsecureSkipVerify, value: s.cfg.InsecureSkipVerify},
		{option: engine.OptionMaxTraceBody, value: s.cfg.ParsedMaxTraceBody},
	}

	if s.cfg.UserAgent != "" {
		options = append(options, transferOption{option: engine.OptionUserAgent, value: s.cfg.UserAgent})
	}

	if len(s.cfg.RequestHeaders) > 0 {
		options = append(options, transferOption{option: engine.OptionHTTPHeaders, value: s.cfg.RequestHeaders})
	}

	if s.cfg.Data != "" {
		options = append(options, transferOption{option: engine.OptionRequestBody, value: []byte(s.cfg.Data)})
	}

	if s.cfg.Proxy != "" {
		options = append(options, transferOption{option: engine.OptionProxyURL, value: s.cfg.Proxy})
	}

	return options
}

// lastStatusLine returns the status line of the final hop,
// or an empty string when no response arrived.
func lastStatusLine(headers []string) string {
	for i := len(headers) - 1; i >= 0; i-- {
		if strings.HasPrefix(headers[i], "HTTP/") {
			return headers[i]
		}
	}

	return ""
}

// errorText renders an error for the report, empty when there is none.
func errorText(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}
