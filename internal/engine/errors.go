package engine

import (
	"errors"
	"fmt"
)

// Code is the result code of a transfer attempt.
type Code uint8

// Enum values for Code.
const (
	// CodeOK means the transfer completed successfully.
	CodeOK Code = iota
	// CodeUnsupportedProtocol means the URL scheme is not supported.
	CodeUnsupportedProtocol
	// CodeMalformedURL means the URL could not be parsed.
	CodeMalformedURL
	// CodeUnknownOption means SetOption received an option it does not know.
	CodeUnknownOption
	// CodeInvalidOptionValue means SetOption received a value of the wrong
	// type or outside the allowed range.
	CodeInvalidOptionValue
	// CodeResolveFailed means the host name could not be resolved.
	CodeResolveFailed
	// CodeConnectFailed means the connection to the server could not be made.
	CodeConnectFailed
	// CodeTLSHandshakeFailed means the TLS handshake with the server failed.
	CodeTLSHandshakeFailed
	// CodeCertVerificationFailed means the server certificate was rejected.
	CodeCertVerificationFailed
	// CodeSendFailed means sending request data to the server failed.
	CodeSendFailed
	// CodeRecvFailed means receiving response data from the server failed.
	CodeRecvFailed
	// CodeWriteError means a registered callback refused data handed to it.
	CodeWriteError
	// CodeTooManyRedirects means the configured redirect limit was exceeded.
	CodeTooManyRedirects
	// CodeTimeout means the transfer did not finish within the time limit.
	CodeTimeout
	// CodeAborted means the transfer was canceled through its context.
	CodeAborted
	// CodeInternal means the transfer failed for an unclassified reason.
	CodeInternal
)

// String returns a human-readable representation of the Code.
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeUnsupportedProtocol:
		return "UnsupportedProtocol"
	case CodeMalformedURL:
		return "MalformedURL"
	case CodeUnknownOption:
		return "UnknownOption"
	case CodeInvalidOptionValue:
		return "InvalidOptionValue"
	case CodeResolveFailed:
		return "ResolveFailed"
	case CodeConnectFailed:
		return "ConnectFailed"
	case CodeTLSHandshakeFailed:
		return "TLSHandshakeFailed"
	case CodeCertVerificationFailed:
		return "CertVerificationFailed"
	case CodeSendFailed:
		return "SendFailed"
	case CodeRecvFailed:
		return "RecvFailed"
	case CodeWriteError:
		return "WriteError"
	case CodeTooManyRedirects:
		return "TooManyRedirects"
	case CodeTimeout:
		return "Timeout"
	case CodeAborted:
		return "Aborted"
	case CodeInternal:
		return "Internal"
	default:
		return fmt.Sprintf("unknown code: %d", c)
	}
}

// Description returns the stable human-readable description of the Code.
// Unknown codes map to the description of CodeInternal.
func (c Code) Description() string {
	switch c {
	case CodeOK:
		return "no error"
	case CodeUnsupportedProtocol:
		return "unsupported protocol scheme"
	case CodeMalformedURL:
		return "URL is malformed"
	case CodeUnknownOption:
		return "unknown transfer option"
	case CodeInvalidOptionValue:
		return "invalid transfer option value"
	case CodeResolveFailed:
		return "could not resolve host"
	case CodeConnectFailed:
		return "could not connect to server"
	case CodeTLSHandshakeFailed:
		return "TLS handshake failed"
	case CodeCertVerificationFailed:
		return "server certificate verification failed"
	case CodeSendFailed:
		return "failed sending data to the server"
	case CodeRecvFailed:
		return "failed receiving data from the server"
	case CodeWriteError:
		return "callback did not consume the data"
	case CodeTooManyRedirects:
		return "maximum number of redirects reached"
	case CodeTimeout:
		return "transfer timed out"
	case CodeAborted:
		return "transfer was aborted"
	default:
		return "internal transfer error"
	}
}

// Static error definitions for better error handling.
var (
	// ErrNoURL indicates that Perform was called without a configured URL.
	ErrNoURL = errors.New("no URL was configured")
	// ErrUnsupportedScheme indicates a URL scheme the engine cannot handle.
	ErrUnsupportedScheme = errors.New("unsupported protocol scheme")
	// ErrCallbackAborted indicates that a registered callback consumed less
	// data than it was handed, which aborts the transfer.
	ErrCallbackAborted = errors.New("callback did not consume the data")
	// ErrTooManyRedirects indicates that the redirect limit was exceeded.
	ErrTooManyRedirects = errors.New("maximum number of redirects reached")
)

// Error is a transfer failure carrying its result code
// and the underlying cause.
type Error struct {
	// Code is the result code classifying the failure.
	Code Code
	// Err is the underlying cause, may be nil.
	Err error
}

// Error returns a human-readable representation of the failure.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Code.Description()
	}

	return fmt.Sprintf("%s: %v", e.Code.Description(), e.Err)
}

// Unwrap returns the underlying cause for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}
