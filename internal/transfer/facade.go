package transfer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/oshokin/tracefetch/internal/engine"
	"github.com/oshokin/tracefetch/internal/trace"
)

// Facade defines the per-transfer surface handed to callers: configure the
// underlying engine, run it, and read back the diagnostics it produced.
type Facade interface {
	// Configure forwards one option to the underlying engine verbatim.
	Configure(option engine.Option, value any) error
	// Execute runs exactly one blocking transfer attempt, with no retries.
	Execute(ctx context.Context) error
	// LastError returns the result code of the most recent transfer.
	LastError() engine.Code
	// ErrorDescription returns the human-readable description of a result code.
	ErrorDescription(code engine.Code) string
	// Headers returns the collected response header lines in arrival order.
	Headers() []string
	// TraceLog returns the accumulated ASCII trace log.
	TraceLog() string
	// ID returns the unique identifier of this transfer session.
	ID() string
}

// FacadeImpl implements the Facade interface on top of a transfer engine,
// owning the trace formatter and header collector wired into it.
type FacadeImpl struct {
	// id identifies this transfer session in logs and reports.
	id string
	// eng is the underlying transfer engine.
	eng engine.Engine
	// formatter accumulates the ASCII trace log.
	formatter *trace.Formatter
	// collector accumulates response header lines.
	collector *trace.HeaderCollector
}

// NewFacade wires a fresh formatter and header collector into the given
// engine and enables verbose diagnostics on it.
// The facade owns the trace log and header list they accumulate; repeated
// Execute calls append to the same state, so isolation between transfers
// means a fresh facade around a fresh engine.
func NewFacade(eng engine.Engine) (Facade, error) {
	formatter := trace.NewFormatter()
	collector := trace.NewHeaderCollector()

	eng.SetDebugFunc(formatter.HandleEvent)
	eng.SetHeaderFunc(collector.HandleLine)

	err := eng.SetOption(engine.OptionVerbose, true)
	if err != nil {
		return nil, fmt.Errorf("failed to enable verbose diagnostics: %w", err)
	}

	return &FacadeImpl{
		id:        uuid.New().String(),
		eng:       eng,
		formatter: formatter,
		collector: collector,
	}, nil
}

// Configure forwards one option to the underlying engine verbatim.
func (f *FacadeImpl) Configure(option engine.Option, value any) error {
	return f.eng.SetOption(option, value)
}

// Execute runs exactly one blocking transfer attempt, with no retries.
// Engine failures are surfaced unchanged.
func (f *FacadeImpl) Execute(ctx context.Context) error {
	return f.eng.Perform(ctx)
}

// LastError returns the result code of the most recent transfer.
func (f *FacadeImpl) LastError() engine.Code {
	return f.eng.LastError()
}

// ErrorDescription returns the human-readable description of a result code.
func (f *FacadeImpl) ErrorDescription(code engine.Code) string {
	return f.eng.ErrorDescription(code)
}

// Headers returns the collected response header lines in arrival order.
func (f *FacadeImpl) Headers() []string {
	return f.collector.Headers()
}

// TraceLog returns the accumulated ASCII trace log.
func (f *FacadeImpl) TraceLog() string {
	return f.formatter.String()
}

// ID returns the unique identifier of this transfer session.
func (f *FacadeImpl) ID() string {
	return f.id
}
