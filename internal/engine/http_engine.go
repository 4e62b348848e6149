package engine

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptrace"
	"net/http/httputil"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	http_transport "github.com/oshokin/tracefetch/internal/transport/http"
	"github.com/oshokin/tracefetch/internal/version"
)

// validMethodPattern matches HTTP method tokens as defined by RFC 7230.
//
//nolint:gochecknoglobals // This is an immutable, pre-compiled regex pattern and used as a constant.
var validMethodPattern = regexp.MustCompile(`^[!#$%&'*+\-.^_|~0-9A-Za-z]+$`)

// HTTPEngine is the production Engine implementation backed by net/http.
type HTTPEngine struct {
	// url is the request URL for the next Perform.
	url string
	// method is the HTTP request method.
	method string
	// headerLines holds additional request headers as "Name: value" lines.
	headerLines []string
	// requestBody is the request body sent with the transfer.
	requestBody []byte
	// userAgent is the User-Agent header value used when none is supplied.
	userAgent string
	// timeout bounds the whole transfer, zero disables the limit.
	timeout time.Duration
	// followRedirects enables following 3xx responses.
	followRedirects bool
	// maxRedirects caps the number of followed redirects.
	maxRedirects int
	// insecureSkipVerify disables TLS certificate verification.
	insecureSkipVerify bool
	// verbose enables debug-event emission.
	verbose bool
	// maxTraceBody caps the body bytes handed to the debug callback
	// per transfer, zero removes the cap.
	maxTraceBody int64
	// proxyURL routes the transfer through a proxy when non-empty.
	proxyURL string

	// headerFunc receives response header lines.
	headerFunc HeaderFunc
	// debugFunc receives debug events while verbose is enabled.
	debugFunc DebugFunc
	// writeFunc receives response body data.
	writeFunc WriteFunc

	// performMu admits one Perform at a time.
	performMu sync.Mutex

	// dispatchMu serializes callback dispatch and guards the fields below,
	// which transport hooks touch from their own goroutines.
	dispatchMu sync.Mutex
	// lastCode is the result code of the most recent Perform.
	lastCode Code
	// hopHost is the display host of the hop currently in flight.
	hopHost string
	// requestHeadDump is the serialized head of the hop's request,
	// emitted once the transport reports the headers as written.
	requestHeadDump []byte
	// sentBody holds the body bytes the hop sends, emitted after the
	// transport reports the request as written.
	sentBody []byte
	// tlsError is the handshake failure reported by the TLS hook, if any.
	tlsError error
	// connNumber is the number of the most recently opened connection.
	connNumber int
	// connCount counts connections opened over the engine's lifetime.
	connCount int
	// tracedBodyBytes counts body bytes already handed to the debug callback.
	tracedBodyBytes int64
	// traceCapNoted records that the trace cap notice was already emitted.
	traceCapNoted bool
}

// NewHTTPEngine returns an Engine with default settings: GET requests,
// no redirect following, a 60-second timeout, debug events disabled,
// and a 1 MiB cap on traced body data.
func NewHTTPEngine() Engine {
	return &HTTPEngine{
		method:       http.MethodGet,
		userAgent:    defaultUserAgent(),
		timeout:      http_transport.DefaultTimeout,
		maxRedirects: DefaultMaxRedirects,
		maxTraceBody: DefaultMaxTraceBody,
	}
}

// defaultUserAgent returns the User-Agent header value sent
// when the caller does not supply one.
func defaultUserAgent() string {
	return "tracefetch/" + version.Short()
}

// SetOption configures a single transfer option.
// A failed SetOption leaves the engine configuration untouched.
//
//nolint:cyclop,funlen // A flat option switch is clearer than dispatch tables.
func (e *HTTPEngine) SetOption(option Option, value any) error {
	switch option {
	case OptionURL:
		stringValue, ok := value.(string)
		if !ok {
			return invalidOptionValue(option, value)
		}

		e.url = stringValue
	case OptionMethod:
		stringValue, ok := value.(string)
		if !ok || !validMethodPattern.MatchString(stringValue) {
			return invalidOptionValue(option, value)
		}

		e.method = stringValue
	case OptionHTTPHeaders:
		headerLines, ok := value.([]string)
		if !ok {
			return invalidOptionValue(option, value)
		}

		for _, line := range headerLines {
			if !strings.Contains(line, ":") {
				return &Error{
					Code: CodeInvalidOptionValue,
					Err:  fmt.Errorf("header line %q has no colon", line),
				}
			}
		}

		e.headerLines = headerLines
	case OptionRequestBody:
		switch typedValue := value.(type) {
		case []byte:
			e.requestBody = typedValue
		case string:
			e.requestBody = []byte(typedValue)
		default:
			return invalidOptionValue(option, value)
		}
	case OptionUserAgent:
		stringValue, ok := value.(string)
		if !ok {
			return invalidOptionValue(option, value)
		}

		e.userAgent = stringValue
	case OptionTimeout:
		durationValue, ok := value.(time.Duration)
		if !ok || durationValue < 0 {
			return invalidOptionValue(option, value)
		}

		e.timeout = durationValue
	case OptionFollowRedirects:
		boolValue, ok := value.(bool)
		if !ok {
			return invalidOptionValue(option, value)
		}

		e.followRedirects = boolValue
	case OptionMaxRedirects:
		intValue, ok := value.(int)
		if !ok || intValue < 0 {
			return invalidOptionValue(option, value)
		}

		e.maxRedirects = intValue
	case OptionInsecureSkipVerify:
		boolValue, ok := value.(bool)
		if !ok {
			return invalidOptionValue(option, value)
		}

		e.insecureSkipVerify = boolValue
	case OptionVerbose:
		boolValue, ok := value.(bool)
		if !ok {
			return invalidOptionValue(option, value)
		}

		e.verbose = boolValue
	case OptionMaxTraceBody:
		int64Value, ok := value.(int64)
		if !ok || int64Value < 0 {
			return invalidOptionValue(option, value)
		}

		e.maxTraceBody = int64Value
	case OptionProxyURL:
		stringValue, ok := value.(string)
		if !ok {
			return invalidOptionValue(option, value)
		}

		if stringValue != "" {
			parsedURL, err := url.Parse(stringValue)
			if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
				return invalidOptionValue(option, value)
			}
		}

		e.proxyURL = stringValue
	default:
		return &Error{
			Code: CodeUnknownOption,
			Err:  fmt.Errorf("option %d is not known to this engine", uint8(option)),
		}
	}

	return nil
}

// invalidOptionValue builds the error returned for a rejected option value.
func invalidOptionValue(option Option, value any) error {
	return &Error{
		Code: CodeInvalidOptionValue,
		Err:  fmt.Errorf("option %s rejects value %v of type %T", option, value, value),
	}
}

// SetHeaderFunc registers the callback receiving response header lines.
func (e *HTTPEngine) SetHeaderFunc(fn HeaderFunc) {
	e.headerFunc = fn
}

// SetDebugFunc registers the callback receiving debug events.
func (e *HTTPEngine) SetDebugFunc(fn DebugFunc) {
	e.debugFunc = fn
}

// SetWriteFunc registers the callback receiving response body data.
func (e *HTTPEngine) SetWriteFunc(fn WriteFunc) {
	e.writeFunc = fn
}

// Perform executes exactly one blocking transfer attempt
// and records its result code for LastError.
func (e *HTTPEngine) Perform(ctx context.Context) error {
	e.performMu.Lock()
	defer e.performMu.Unlock()

	e.resetTransferState()

	transferErr := e.transfer(ctx)

	code := CodeOK
	if transferErr != nil {
		code = transferErr.Code
	}

	e.dispatchMu.Lock()
	e.lastCode = code
	e.dispatchMu.Unlock()

	if transferErr == nil {
		return nil
	}

	return transferErr
}

// LastError returns the result code of the most recent Perform,
// or CodeOK if Perform has not been called yet.
func (e *HTTPEngine) LastError() Code {
	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()

	return e.lastCode
}

// ErrorDescription returns the human-readable description of a result code.
func (e *HTTPEngine) ErrorDescription(code Code) string {
	return code.Description()
}

// resetTransferState clears per-transfer hop state.
// Connection numbering deliberately survives across transfers.
func (e *HTTPEngine) resetTransferState() {
	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()

	e.hopHost = ""
	e.requestHeadDump = nil
	e.sentBody = nil
	e.tlsError = nil
	e.tracedBodyBytes = 0
	e.traceCapNoted = false
}

// transfer runs one configured transfer from URL validation to body drain.
func (e *HTTPEngine) transfer(ctx context.Context) *Error {
	requestURL, urlErr := e.parseRequestURL()
	if urlErr != nil {
		return urlErr
	}

	transport, transportErr := http_transport.For(http_transport.Options{
		ProxyURL:           e.proxyURL,
		InsecureSkipVerify: e.insecureSkipVerify,
	})
	if transportErr != nil {
		return &Error{Code: CodeInternal, Err: transportErr}
	}

	if e.verbose {
		ctx = httptrace.WithClientTrace(ctx, e.newClientTrace())
	}

	request, requestErr := e.buildRequest(ctx, requestURL)
	if requestErr != nil {
		return requestErr
	}

	e.beginHop(request, e.requestBody)

	client := &http.Client{
		Transport:     http_transport.NewLogTransport(transport, 0),
		CheckRedirect: e.checkRedirect,
		Timeout:       e.timeout,
	}

	response, doErr := client.Do(request)
	if doErr != nil {
		return e.classifyTransferError(doErr)
	}

	defer func() {
		_ = response.Body.Close()
	}()

	if headErr := e.deliverResponseHead(response); headErr != nil {
		if errors.Is(headErr, ErrCallbackAborted) {
			return &Error{Code: CodeWriteError, Err: headErr}
		}

		return &Error{Code: CodeInternal, Err: headErr}
	}

	if bodyErr := e.consumeBody(response); bodyErr != nil {
		if errors.Is(bodyErr, ErrCallbackAborted) {
			return &Error{Code: CodeWriteError, Err: bodyErr}
		}

		return e.classifyTransferError(bodyErr)
	}

	e.reportConnectionFate(response)

	return nil
}

// parseRequestURL validates the configured URL and its scheme.
func (e *HTTPEngine) parseRequestURL() (*url.URL, *Error) {
	trimmedURL := strings.TrimSpace(e.url)
	if trimmedURL == "" {
		return nil, &Error{Code: CodeMalformedURL, Err: ErrNoURL}
	}

	parsedURL, err := url.Parse(trimmedURL)
	if err != nil {
		return nil, &Error{Code: CodeMalformedURL, Err: err}
	}

	switch parsedURL.Scheme {
	case "http", "https":
		if parsedURL.Host == "" {
			return nil, &Error{
				Code: CodeMalformedURL,
				Err:  fmt.Errorf("URL %q has no host", trimmedURL),
			}
		}
	case "http+unix", "https+unix":
		// Unix-socket URLs carry the socket path in the path component,
		// there is no host to validate.
	default:
		return nil, &Error{
			Code: CodeUnsupportedProtocol,
			Err:  fmt.Errorf("%w: %q", ErrUnsupportedScheme, parsedURL.Scheme),
		}
	}

	return parsedURL, nil
}

// buildRequest assembles the outgoing request from the configured options.
func (e *HTTPEngine) buildRequest(
	ctx context.Context,
	requestURL *url.URL,
) (*http.Request, *Error) {
	var body io.Reader = http.NoBody
	if len(e.requestBody) > 0 {
		body = bytes.NewReader(e.requestBody)
	}

	request, err := http.NewRequestWithContext(ctx, e.method, requestURL.String(), body)
	if err != nil {
		return nil, &Error{Code: CodeMalformedURL, Err: err}
	}

	for _, line := range e.headerLines {
		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)

		if name == "" {
			continue
		}

		// An empty value removes the header, mirroring the usual
		// command-line convention for suppressing default headers.
		if value == "" {
			request.Header.Del(name)
			continue
		}

		request.Header.Add(name, value)
	}

	if request.Header.Get("User-Agent") == "" && e.userAgent != "" {
		request.Header.Set("User-Agent", e.userAgent)
	}

	return request, nil
}

// beginHop records the state the transport hooks need for the next
// request/response exchange: the first hop on Perform, later hops
// on every followed redirect.
func (e *HTTPEngine) beginHop(request *http.Request, body []byte) {
	var headDump []byte
	if e.verbose {
		headDump = dumpRequestHead(request)
	}

	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()

	e.hopHost = displayHost(request.URL)
	e.requestHeadDump = headDump
	e.sentBody = body
	e.tlsError = nil
}

// checkRedirect implements the redirect policy: deliver the intermediate
// response through the callbacks, then either stop or prime the next hop.
func (e *HTTPEngine) checkRedirect(request *http.Request, via []*http.Request) error {
	if !e.followRedirects {
		return http.ErrUseLastResponse
	}

	if len(via) > e.maxRedirects {
		return fmt.Errorf("%w: %d allowed", ErrTooManyRedirects, e.maxRedirects)
	}

	if request.Response != nil {
		if err := e.deliverResponseHead(request.Response); err != nil {
			return err
		}
	}

	e.infof("Following redirect to '%s'\n", request.URL)
	e.beginHop(request, e.redirectBody(request))

	return nil
}

// redirectBody reports the body bytes the client resends on a redirect hop.
// The client only rewinds bodies for 307 and 308 responses, other statuses
// turn the follow-up request into a bodyless GET.
func (e *HTTPEngine) redirectBody(request *http.Request) []byte {
	if request.Body == nil || request.ContentLength <= 0 {
		return nil
	}

	return e.requestBody
}

// newClientTrace wires the transport lifecycle hooks
// that feed the debug event stream.
func (e *HTTPEngine) newClientTrace() *httptrace.ClientTrace {
	return &httptrace.ClientTrace{
		DNSDone: func(info httptrace.DNSDoneInfo) {
			if info.Err != nil {
				return
			}

			e.infof("Host %s was resolved\n", e.currentHost())
		},
		ConnectStart: func(_, address string) {
			e.infof("  Trying %s...\n", address)
		},
		ConnectDone: func(_, address string, err error) {
			if err != nil {
				e.infof("connect to %s failed: %v\n", address, err)
				return
			}

			ip, port, splitErr := net.SplitHostPort(address)
			if splitErr != nil {
				e.infof("Connected to %s\n", address)
				return
			}

			e.infof("Connected to %s (%s) port %s\n", e.currentHost(), ip, port)
		},
		GotConn: func(info httptrace.GotConnInfo) {
			e.recordConnection(info.Reused)
		},
		TLSHandshakeDone: func(state tls.ConnectionState, err error) {
			if err != nil {
				e.recordTLSError(err)
				e.infof("TLS handshake failed: %v\n", err)

				return
			}

			e.infof("SSL connection using %s / %s\n",
				tls.VersionName(state.Version), tls.CipherSuiteName(state.CipherSuite))
		},
		WroteHeaders: func() {
			e.deliverRequestHead()
		},
		WroteRequest: func(_ httptrace.WroteRequestInfo) {
			e.deliverSentBody()
		},
	}
}

// currentHost returns the display host of the hop in flight.
func (e *HTTPEngine) currentHost() string {
	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()

	return e.hopHost
}

// recordConnection tracks connection numbering and reports reuse.
func (e *HTTPEngine) recordConnection(reused bool) {
	e.dispatchMu.Lock()

	if !reused {
		e.connNumber = e.connCount
		e.connCount++
	}

	host := e.hopHost

	e.dispatchMu.Unlock()

	if reused {
		e.infof("Re-using existing connection with host %s\n", host)
	}
}

// recordTLSError stores the handshake failure for later classification.
func (e *HTTPEngine) recordTLSError(err error) {
	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()

	e.tlsError = err
}

// deliverRequestHead emits the serialized request head exactly once per hop.
func (e *HTTPEngine) deliverRequestHead() {
	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()

	if len(e.requestHeadDump) == 0 {
		return
	}

	e.dispatchLocked(DebugHeaderOut, e.requestHeadDump)
	e.requestHeadDump = nil
}

// deliverSentBody emits the hop's request body exactly once it is on the wire.
func (e *HTTPEngine) deliverSentBody() {
	e.dispatchMu.Lock()
	body := e.sentBody
	e.sentBody = nil
	e.dispatchMu.Unlock()

	if len(body) == 0 {
		return
	}

	e.traceBodyData(DebugDataOut, body)
}

// deliverResponseHead hands the status line, each header line, and the
// terminating blank line to the debug and header callbacks.
func (e *HTTPEngine) deliverResponseHead(response *http.Response) error {
	head, err := httputil.DumpResponse(response, false)
	if err != nil {
		return fmt.Errorf("failed to serialize response head: %w", err)
	}

	for len(head) > 0 {
		line := head

		if index := bytes.Index(head, []byte("\r\n")); index >= 0 {
			line = head[:index+2]
			head = head[index+2:]
		} else {
			head = nil
		}

		if lineErr := e.deliverHeaderLine(line); lineErr != nil {
			return lineErr
		}
	}

	return nil
}

// deliverHeaderLine emits one header line as a debug event and hands it to
// the header callback. The header callback runs regardless of verbose mode.
func (e *HTTPEngine) deliverHeaderLine(line []byte) error {
	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()

	e.dispatchLocked(DebugHeaderIn, line)

	if e.headerFunc == nil {
		return nil
	}

	if consumed := e.headerFunc(line); consumed != len(line) {
		return fmt.Errorf("%w: header callback consumed %d of %d bytes",
			ErrCallbackAborted, consumed, len(line))
	}

	return nil
}

// consumeBody drains the response body through the trace and write callbacks.
func (e *HTTPEngine) consumeBody(response *http.Response) error {
	buffer := make([]byte, readChunkSize)

	for {
		bytesRead, readErr := response.Body.Read(buffer)
		if bytesRead > 0 {
			chunk := buffer[:bytesRead]

			e.traceBodyData(DebugDataIn, chunk)

			if e.writeFunc != nil {
				if consumed := e.writeFunc(chunk); consumed != bytesRead {
					return fmt.Errorf("%w: body sink consumed %d of %d bytes",
						ErrCallbackAborted, consumed, bytesRead)
				}
			}
		}

		if errors.Is(readErr, io.EOF) {
			return nil
		}

		if readErr != nil {
			return readErr
		}
	}
}

// traceBodyData emits body bytes as debug events, honoring the trace cap.
func (e *HTTPEngine) traceBodyData(kind DebugKind, data []byte) {
	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()

	if !e.verbose || e.debugFunc == nil {
		return
	}

	if e.maxTraceBody > 0 {
		remaining := e.maxTraceBody - e.tracedBodyBytes
		if remaining <= 0 {
			e.noteTraceCapLocked()
			return
		}

		if int64(len(data)) > remaining {
			data = data[:remaining]
		}
	}

	e.tracedBodyBytes += int64(len(data))
	e.dispatchLocked(kind, data)

	if e.maxTraceBody > 0 && e.tracedBodyBytes >= e.maxTraceBody {
		e.noteTraceCapLocked()
	}
}

// noteTraceCapLocked emits the trace cap notice once per transfer.
// Callers must hold dispatchMu.
func (e *HTTPEngine) noteTraceCapLocked() {
	if e.traceCapNoted {
		return
	}

	e.traceCapNoted = true
	e.dispatchLocked(DebugInfo, fmt.Appendf(nil,
		"Body trace limit of %d bytes reached, further data is omitted\n", e.maxTraceBody))
}

// reportConnectionFate emits the closing info line after a completed transfer.
func (e *HTTPEngine) reportConnectionFate(response *http.Response) {
	e.dispatchMu.Lock()
	connNumber := e.connNumber
	host := e.hopHost
	e.dispatchMu.Unlock()

	if response.Close {
		e.infof("Closing connection %d\n", connNumber)
		return
	}

	e.infof("Connection #%d to host %s left intact\n", connNumber, host)
}

// infof emits a DebugInfo event with a printf-formatted payload.
func (e *HTTPEngine) infof(format string, args ...any) {
	e.dispatch(DebugInfo, fmt.Appendf(nil, format, args...))
}

// dispatch hands one debug event to the registered callback.
// Transport hooks fire on their own goroutines, so delivery is serialized
// to honor the single-threaded callback contract.
func (e *HTTPEngine) dispatch(kind DebugKind, data []byte) {
	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()

	e.dispatchLocked(kind, data)
}

// dispatchLocked hands one debug event to the registered callback.
// Callers must hold dispatchMu.
func (e *HTTPEngine) dispatchLocked(kind DebugKind, data []byte) {
	if !e.verbose || e.debugFunc == nil {
		return
	}

	_ = e.debugFunc(kind, data)
}

// classifyTransferError maps a transport error onto a coded transfer failure.
func (e *HTTPEngine) classifyTransferError(err error) *Error {
	code := classifyError(err)

	// Handshake failures can surface as opaque read or write errors,
	// the TLS hook captures the precise cause.
	if code == CodeInternal || code == CodeRecvFailed || code == CodeSendFailed {
		e.dispatchMu.Lock()
		tlsErr := e.tlsError
		e.dispatchMu.Unlock()

		if tlsErr != nil {
			if classifyError(tlsErr) == CodeCertVerificationFailed {
				return &Error{Code: CodeCertVerificationFailed, Err: err}
			}

			return &Error{Code: CodeTLSHandshakeFailed, Err: err}
		}
	}

	return &Error{Code: code, Err: err}
}

// classifyError maps an arbitrary transfer error onto a result code.
//
//nolint:cyclop // Exhaustive error triage reads best as one switch chain.
func classifyError(err error) Code {
	switch {
	case errors.Is(err, ErrTooManyRedirects):
		return CodeTooManyRedirects
	case errors.Is(err, ErrCallbackAborted):
		return CodeWriteError
	case errors.Is(err, context.Canceled):
		return CodeAborted
	case errors.Is(err, context.DeadlineExceeded):
		return CodeTimeout
	}

	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return CodeCertVerificationFailed
	}

	var unknownAuthorityErr x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthorityErr) {
		return CodeCertVerificationFailed
	}

	var hostnameErr x509.HostnameError
	if errors.As(err, &hostnameErr) {
		return CodeCertVerificationFailed
	}

	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return CodeTLSHandshakeFailed
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return CodeResolveFailed
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CodeTimeout
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		switch opErr.Op {
		case "dial":
			return CodeConnectFailed
		case "read":
			return CodeRecvFailed
		case "write":
			return CodeSendFailed
		}
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return CodeRecvFailed
	}

	return CodeInternal
}

// dumpRequestHead serializes the request line and headers the way
// the transport puts them on the wire.
func dumpRequestHead(request *http.Request) []byte {
	clone := request.Clone(request.Context())

	dump, err := httputil.DumpRequestOut(clone, false)
	if err == nil {
		return dump
	}

	// DumpRequestOut cannot fake a round trip for unix-socket URL schemes.
	// The request's own serialization omits transport-added headers
	// but keeps the request line faithful.
	clone = request.Clone(request.Context())
	clone.Body = http.NoBody
	clone.ContentLength = 0

	if clone.Host == "" {
		clone.Host = displayHost(clone.URL)
	}

	var buffer bytes.Buffer
	if writeErr := clone.Write(&buffer); writeErr != nil {
		return nil
	}

	return buffer.Bytes()
}

// displayHost returns the host name used in progress messages.
func displayHost(requestURL *url.URL) string {
	if hostname := requestURL.Hostname(); hostname != "" {
		return hostname
	}

	// Unix-socket URLs carry the socket path instead of a host.
	if socketPath, _, found := strings.Cut(requestURL.Path, ":"); found {
		return socketPath
	}

	return requestURL.Path
}
