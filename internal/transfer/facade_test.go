package transfer

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/tracefetch/internal/engine"
	mock_engine "github.com/oshokin/tracefetch/internal/engine/mocks"
)

// TestMain verifies that no test in this package leaks goroutines.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newCallbackCapturingEngine returns a mock engine whose registered debug and
// header callbacks are captured into the returned pointers, with the verbose
// option accepted. This mirrors what every NewFacade call performs.
func newCallbackCapturingEngine(
	ctrl *gomock.Controller,
	debugFn *engine.DebugFunc,
	headerFn *engine.HeaderFunc,
) *mock_engine.MockEngine {
	mockEngine := mock_engine.NewMockEngine(ctrl)
	mockEngine.EXPECT().SetDebugFunc(gomock.Any()).Do(func(fn engine.DebugFunc) {
		*debugFn = fn
	})
	mockEngine.EXPECT().SetHeaderFunc(gomock.Any()).Do(func(fn engine.HeaderFunc) {
		*headerFn = fn
	})
	mockEngine.EXPECT().SetOption(engine.OptionVerbose, true).Return(nil)

	return mockEngine
}

// TestNewFacade tests that construction wires callbacks, enables verbose
// diagnostics and starts with empty state.
func TestNewFacade(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		debugFn  engine.DebugFunc
		headerFn engine.HeaderFunc
	)

	mockEngine := newCallbackCapturingEngine(ctrl, &debugFn, &headerFn)

	facade, err := NewFacade(mockEngine)
	require.NoError(t, err)
	require.NotNil(t, facade)

	assert.NotNil(t, debugFn)
	assert.NotNil(t, headerFn)
	assert.Empty(t, facade.Headers())
	assert.Empty(t, facade.TraceLog())

	_, err = uuid.Parse(facade.ID())
	assert.NoError(t, err)
}

// TestNewFacade_VerboseSetupFailure tests that an engine refusing the verbose
// option fails construction.
func TestNewFacade_VerboseSetupFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	optionErr := &engine.Error{Code: engine.CodeUnknownOption}

	mockEngine := mock_engine.NewMockEngine(ctrl)
	mockEngine.EXPECT().SetDebugFunc(gomock.Any())
	mockEngine.EXPECT().SetHeaderFunc(gomock.Any())
	mockEngine.EXPECT().SetOption(engine.OptionVerbose, true).Return(optionErr)

	facade, err := NewFacade(mockEngine)
	require.ErrorIs(t, err, optionErr)
	assert.ErrorContains(t, err, "failed to enable verbose diagnostics")
	assert.Nil(t, facade)
}

// TestFacade_Configure tests verbatim option forwarding.
func TestFacade_Configure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		debugFn  engine.DebugFunc
		headerFn engine.HeaderFunc
	)

	mockEngine := newCallbackCapturingEngine(ctrl, &debugFn, &headerFn)

	facade, err := NewFacade(mockEngine)
	require.NoError(t, err)

	mockEngine.EXPECT().SetOption(engine.OptionURL, "https://example.com/").Return(nil)
	require.NoError(t, facade.Configure(engine.OptionURL, "https://example.com/"))

	optionErr := &engine.Error{Code: engine.CodeInvalidOptionValue}
	mockEngine.EXPECT().SetOption(engine.OptionTimeout, "soon").Return(optionErr)
	assert.ErrorIs(t, facade.Configure(engine.OptionTimeout, "soon"), optionErr)
}

// TestFacade_Execute tests single-attempt execution with failures surfaced
// unchanged.
func TestFacade_Execute(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		debugFn  engine.DebugFunc
		headerFn engine.HeaderFunc
	)

	mockEngine := newCallbackCapturingEngine(ctrl, &debugFn, &headerFn)

	facade, err := NewFacade(mockEngine)
	require.NoError(t, err)

	ctx := context.Background()

	mockEngine.EXPECT().Perform(ctx).Return(nil).Times(1)
	require.NoError(t, facade.Execute(ctx))

	transferErr := errors.New("connection reset")
	mockEngine.EXPECT().Perform(ctx).Return(transferErr).Times(1)
	assert.ErrorIs(t, facade.Execute(ctx), transferErr)
}

// TestFacade_LastErrorAndDescription tests forwarding of result-code queries.
func TestFacade_LastErrorAndDescription(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		debugFn  engine.DebugFunc
		headerFn engine.HeaderFunc
	)

	mockEngine := newCallbackCapturingEngine(ctrl, &debugFn, &headerFn)

	facade, err := NewFacade(mockEngine)
	require.NoError(t, err)

	mockEngine.EXPECT().LastError().Return(engine.CodeTimeout)
	assert.Equal(t, engine.CodeTimeout, facade.LastError())

	mockEngine.EXPECT().ErrorDescription(engine.CodeTimeout).Return("transfer timed out")
	assert.Equal(t, "transfer timed out", facade.ErrorDescription(engine.CodeTimeout))
}

// TestFacade_CapturesTransferDiagnostics tests that events and header lines
// emitted during a transfer land in the facade's trace log and header list.
func TestFacade_CapturesTransferDiagnostics(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		debugFn  engine.DebugFunc
		headerFn engine.HeaderFunc
	)

	mockEngine := newCallbackCapturingEngine(ctrl, &debugFn, &headerFn)

	facade, err := NewFacade(mockEngine)
	require.NoError(t, err)

	mockEngine.EXPECT().Perform(gomock.Any()).DoAndReturn(func(_ context.Context) error {
		debugFn(engine.DebugInfo, []byte("Connected to example.com (93.184.216.34) port 80\n"))

		statusLine := []byte("HTTP/1.1 200 OK\r\n")
		assert.Equal(t, len(statusLine), headerFn(statusLine))

		contentType := []byte("Content-Type: text/html\r\n")
		assert.Equal(t, len(contentType), headerFn(contentType))
		debugFn(engine.DebugInfo, []byte("Connection #0 to host example.com left intact\n"))

		return nil
	})

	require.NoError(t, facade.Execute(context.Background()))

	assert.Equal(t,
		[]string{"HTTP/1.1 200 OK", "Content-Type: text/html"},
		facade.Headers())

	traceLog := facade.TraceLog()
	assert.Contains(t, traceLog, "== Info: Connected to example.com (93.184.216.34) port 80\n")
	assert.Contains(t, traceLog, "== Info: Connection #0 to host example.com left intact\n")
}

// TestFacade_RepeatedExecuteAccumulates tests that back-to-back transfers on
// one facade append to the same trace log and header list.
func TestFacade_RepeatedExecuteAccumulates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		debugFn  engine.DebugFunc
		headerFn engine.HeaderFunc
	)

	mockEngine := newCallbackCapturingEngine(ctrl, &debugFn, &headerFn)

	facade, err := NewFacade(mockEngine)
	require.NoError(t, err)

	mockEngine.EXPECT().Perform(gomock.Any()).DoAndReturn(func(_ context.Context) error {
		headerFn([]byte("HTTP/1.1 301 Moved Permanently\r\n"))
		return nil
	})
	mockEngine.EXPECT().Perform(gomock.Any()).DoAndReturn(func(_ context.Context) error {
		headerFn([]byte("HTTP/1.1 200 OK\r\n"))
		return nil
	})

	ctx := context.Background()
	require.NoError(t, facade.Execute(ctx))
	require.NoError(t, facade.Execute(ctx))

	assert.Equal(t,
		[]string{"HTTP/1.1 301 Moved Permanently", "HTTP/1.1 200 OK"},
		facade.Headers())
}

// TestFacade_ID_IsUniquePerFacade tests that separate facades get separate
// session identifiers.
func TestFacade_ID_IsUniquePerFacade(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		debugFn  engine.DebugFunc
		headerFn engine.HeaderFunc
	)

	first, err := NewFacade(newCallbackCapturingEngine(ctrl, &debugFn, &headerFn))
	require.NoError(t, err)

	second, err := NewFacade(newCallbackCapturingEngine(ctrl, &debugFn, &headerFn))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID(), second.ID())
}
