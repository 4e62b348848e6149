package engine

import "context"

//go:generate $MOCKGEN -source=engine.go -destination=mocks/engine_mock.go

// HeaderFunc receives one response header line per call,
// line terminator included.
// The status line is delivered first, the bare "\r\n" separator last.
// Implementations must report the full length of the line as consumed,
// anything less aborts the transfer with CodeWriteError.
type HeaderFunc func(line []byte) int

// DebugFunc receives protocol-level debug events while a transfer runs.
// Events are only emitted when OptionVerbose is enabled.
// The engine ignores the return value, by convention implementations return 0.
type DebugFunc func(kind DebugKind, data []byte) int

// WriteFunc receives response body data as it is read from the wire.
// Implementations must report the full length of the chunk as consumed,
// anything less aborts the transfer with CodeWriteError.
// When no WriteFunc is registered, the body is drained and discarded.
type WriteFunc func(data []byte) int

// Engine is a blocking transfer engine: options in, one Perform out.
// Implementations are not safe for concurrent use,
// configure and perform from a single goroutine.
type Engine interface {
	// SetOption configures a single transfer option before Perform.
	// Values are strictly typed per option, see the Option constants.
	// A failed SetOption leaves both the engine configuration
	// and the LastError code untouched.
	SetOption(option Option, value any) error

	// SetHeaderFunc registers the callback receiving response header lines.
	// Header lines are delivered regardless of the verbose setting.
	SetHeaderFunc(fn HeaderFunc)

	// SetDebugFunc registers the callback receiving debug events.
	SetDebugFunc(fn DebugFunc)

	// SetWriteFunc registers the callback receiving response body data.
	SetWriteFunc(fn WriteFunc)

	// Perform executes exactly one blocking transfer attempt
	// and records its result code for LastError.
	Perform(ctx context.Context) error

	// LastError returns the result code of the most recent Perform,
	// or CodeOK if Perform has not been called yet.
	LastError() Code

	// ErrorDescription returns the human-readable description of a result code.
	ErrorDescription(code Code) string
}
