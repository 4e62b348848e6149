package http

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/oshokin/tracefetch/internal/logger"
)

// LogTransport is a custom http.RoundTripper that mirrors request and
// response heads into the application log at debug level.
// It never touches message bodies: bodies belong to the transfer session
// that owns the connection, while this logging is ambient diagnostics.
type LogTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// maxDumpLength is the maximum length of logged request/response heads.
	maxDumpLength uint64
}

// Static error definitions for better error handling.
var (
	// ErrNilRequest indicates that the HTTP request is nil.
	ErrNilRequest = errors.New("request is nil")
)

// NewLogTransport creates and returns a new instance of LogTransport.
// If maxDumpLength is 0, it defaults to DefaultMaxDumpLength.
func NewLogTransport(next http.RoundTripper, maxDumpLength uint64) http.RoundTripper {
	if maxDumpLength == 0 {
		maxDumpLength = DefaultMaxDumpLength
	}

	return &LogTransport{
		next:          next,
		maxDumpLength: maxDumpLength,
	}
}

// RoundTrip executes a single HTTP transaction and logs the exchanged heads.
// It implements the http.RoundTripper interface.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	// Skip logging if the logger is not at debug level.
	if !logger.IsDebugLevel() {
		return t.next.RoundTrip(req)
	}

	ctx := req.Context()

	requestDump := t.dumpRequestHead(req)

	// Record the start time to measure the duration of the request.
	startTime := time.Now()

	// Forward the request to the underlying RoundTripper.
	resp, err := t.next.RoundTrip(req)

	// Calculate the duration of the request.
	duration := time.Since(startTime)

	if err != nil {
		logger.Debugf(ctx, "Request failed: %s %s | Error: %v", req.Method, req.URL.String(), err)

		return nil, err
	}

	logger.Debugf(ctx, "%s %s [%d] %s\nRequest: %s\nResponse: %s",
		req.Method, req.URL.Path, resp.StatusCode, duration, requestDump, t.dumpResponseHead(resp))

	return resp, nil
}

func (t *LogTransport) dumpRequestHead(req *http.Request) string {
	dump, err := httputil.DumpRequest(req, false)
	if err != nil {
		return err.Error()
	}

	return t.truncate(dump)
}

func (t *LogTransport) dumpResponseHead(resp *http.Response) string {
	dump, err := httputil.DumpResponse(resp, false)
	if err != nil {
		return err.Error()
	}

	return t.truncate(dump)
}

func (t *LogTransport) truncate(data []byte) string {
	if uint64(len(data)) > t.maxDumpLength {
		return string(data[:t.maxDumpLength]) + "... [truncated]"
	}

	return string(data)
}
