package fetch

import (
	"context"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/oshokin/tracefetch/internal/config"
	"github.com/oshokin/tracefetch/internal/constants"
	"github.com/oshokin/tracefetch/internal/logger"
	"github.com/oshokin/tracefetch/internal/transfer"
	"github.com/oshokin/tracefetch/internal/utils"
)

const (
	// File options for overwriting an existing file.
	overwriteFileOptions = os.O_CREATE | os.O_TRUNC | os.O_WRONLY

	// unknownContentLength marks responses without a usable Content-Length header.
	unknownContentLength int64 = -1
)

// bodySink routes response body data to its destination.
// The destination is decided lazily on the first chunk,
// after the response headers have been collected.
type bodySink struct {
	// ctx is captured at construction:
	// the engine's write callback carries no context.
	ctx context.Context
	// cfg contains the application configuration.
	cfg *config.Config
	// requestURL is the URL of the transfer feeding the sink.
	requestURL string
	// facade exposes the collected headers and the session ID.
	facade transfer.Facade
	// decided records that the destination was already chosen.
	decided bool
	// failed marks the sink as broken, further chunks abort the transfer.
	failed bool
	// writer is the chosen destination, nil suppresses the body.
	writer io.Writer
	// file is the destination file when the body is saved to disk.
	file *os.File
	// bar is the progress bar shown while saving to a file.
	bar *progressbar.ProgressBar
	// savedPath is the path of the saved body file, if any.
	savedPath string
	// bytesReceived counts body bytes accepted by the sink.
	bytesReceived int64
}

// newBodySink creates a sink for one transfer.
func newBodySink(
	ctx context.Context,
	cfg *config.Config,
	requestURL string,
	facade transfer.Facade,
) *bodySink {
	return &bodySink{
		ctx:        ctx,
		cfg:        cfg,
		requestURL: requestURL,
		facade:     facade,
	}
}

// consume implements the engine's body write callback.
// Returning less than len(data) aborts the transfer.
func (b *bodySink) consume(data []byte) int {
	if !b.decided {
		b.decided = true
		b.chooseDestination()
	}

	if b.failed {
		return 0
	}

	if b.writer == nil {
		// The body is suppressed, count it and drop it.
		b.bytesReceived += int64(len(data))
		return len(data)
	}

	written, err := b.writer.Write(data)

	b.bytesReceived += int64(written)

	if err != nil {
		logger.Errorf(b.ctx, "Failed to write response body: %v", err)
		b.failed = true
	}

	return written
}

// chooseDestination picks where body data goes: a file when an output path
// is set, stdout for text responses, and nowhere when the body looks binary.
func (b *bodySink) chooseDestination() {
	if b.cfg.OutputPath != "" {
		b.openOutputFile()
		return
	}

	if utils.IsTextContentType(b.headerValue("Content-Type")) {
		b.writer = os.Stdout
		return
	}

	logger.Info(b.ctx,
		"Response body does not look like text, discarding it; pass --output to save it to a file")
}

// openOutputFile opens the destination file,
// attaching a progress bar when the log level allows it.
func (b *bodySink) openOutputFile() {
	filename := b.deriveFilename()
	fullPath := filepath.Join(b.cfg.OutputPath, filename)

	file, err := os.OpenFile(filepath.Clean(fullPath), overwriteFileOptions, constants.DefaultFilePermissions)
	if err != nil {
		logger.Errorf(b.ctx, "Failed to create output file: %v", err)
		b.failed = true

		return
	}

	b.file = file
	b.savedPath = fullPath
	b.writer = file

	// Show a progress bar only when logging is at least at info level.
	if logger.Level() <= zap.InfoLevel {
		b.bar = progressbar.DefaultBytes(b.contentLength(), "Saving "+filename)
		b.writer = io.MultiWriter(file, b.bar)
	}
}

// deriveFilename derives the saved body's filename from the request URL.
func (b *bodySink) deriveFilename() string {
	// A trailing slash names a directory, not a file.
	parsedURL, err := url.Parse(b.requestURL)
	if err == nil && !strings.HasSuffix(parsedURL.Path, "/") {
		base := path.Base(parsedURL.Path)
		if base != "" && base != "." {
			return utils.SanitizeFilename(base)
		}
	}

	// URLs without a usable path fall back to a session-derived name.
	return "response-" + shortSessionID(b.facade.ID()) + constants.ExtensionBin
}

// headerValue returns the value of the named header from the final hop,
// or an empty string when the header is absent.
func (b *bodySink) headerValue(name string) string {
	prefix := strings.ToLower(name) + ":"

	// Redirected transfers collect one header block per hop,
	// scanning backwards lands on the final one.
	headers := b.facade.Headers()
	for i := len(headers) - 1; i >= 0; i-- {
		if strings.HasPrefix(strings.ToLower(headers[i]), prefix) {
			return strings.TrimSpace(headers[i][len(prefix):])
		}
	}

	return ""
}

// contentLength returns the response's Content-Length,
// or unknownContentLength when it is missing or malformed.
func (b *bodySink) contentLength() int64 {
	value := b.headerValue("Content-Length")

	length, err := strconv.ParseInt(value, 10, 64)
	if err != nil || length < 0 {
		return unknownContentLength
	}

	return length
}

// finish releases the sink's resources once the transfer is over.
func (b *bodySink) finish() {
	if b.bar != nil {
		b.bar.Finish() //nolint:errcheck // Error on finish is not critical here.
	}

	if b.file == nil {
		return
	}

	if err := b.file.Close(); err != nil {
		logger.Warnf(b.ctx, "Failed to close output file: %v", err)
	}
}
