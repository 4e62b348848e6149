package engine

import "fmt"

// Option identifies a configurable transfer setting.
type Option uint8

// Enum values for Option.
const (
	// OptionURL sets the request URL (string). Required before Perform.
	OptionURL Option = iota + 1
	// OptionMethod sets the HTTP request method (string). Defaults to "GET".
	OptionMethod
	// OptionHTTPHeaders sets additional request header lines
	// ([]string of "Name: value" entries).
	OptionHTTPHeaders
	// OptionRequestBody sets the request body ([]byte or string).
	OptionRequestBody
	// OptionUserAgent overrides the default User-Agent header (string).
	OptionUserAgent
	// OptionTimeout bounds the whole transfer (time.Duration).
	// Zero disables the limit.
	OptionTimeout
	// OptionFollowRedirects enables following 3xx responses (bool).
	// Disabled by default.
	OptionFollowRedirects
	// OptionMaxRedirects caps the number of followed redirects (int).
	OptionMaxRedirects
	// OptionInsecureSkipVerify disables TLS certificate verification (bool).
	OptionInsecureSkipVerify
	// OptionVerbose enables debug-event emission (bool). Disabled by default.
	OptionVerbose
	// OptionMaxTraceBody caps the body bytes handed to the debug callback
	// per transfer (int64). Zero removes the cap.
	OptionMaxTraceBody
	// OptionProxyURL routes the transfer through the given proxy (string).
	// An empty value falls back to the environment proxy settings.
	OptionProxyURL
)

// String returns a human-readable representation of the Option.
func (o Option) String() string {
	switch o {
	case OptionURL:
		return "URL"
	case OptionMethod:
		return "Method"
	case OptionHTTPHeaders:
		return "HTTPHeaders"
	case OptionRequestBody:
		return "RequestBody"
	case OptionUserAgent:
		return "UserAgent"
	case OptionTimeout:
		return "Timeout"
	case OptionFollowRedirects:
		return "FollowRedirects"
	case OptionMaxRedirects:
		return "MaxRedirects"
	case OptionInsecureSkipVerify:
		return "InsecureSkipVerify"
	case OptionVerbose:
		return "Verbose"
	case OptionMaxTraceBody:
		return "MaxTraceBody"
	case OptionProxyURL:
		return "ProxyURL"
	default:
		return fmt.Sprintf("unknown option: %d", o)
	}
}

// DebugKind classifies the payload of a debug event.
type DebugKind uint8

// Enum values for DebugKind.
const (
	// DebugInfo carries an informational text line about transfer progress.
	DebugInfo DebugKind = iota
	// DebugHeaderIn carries one received header line, terminator included.
	DebugHeaderIn
	// DebugHeaderOut carries the serialized head of a sent request.
	DebugHeaderOut
	// DebugDataIn carries a chunk of received body data.
	DebugDataIn
	// DebugDataOut carries a chunk of sent body data.
	DebugDataOut
	// DebugTLSDataIn carries raw received TLS records.
	DebugTLSDataIn
	// DebugTLSDataOut carries raw sent TLS records.
	DebugTLSDataOut
)

// String returns a human-readable representation of the DebugKind.
func (k DebugKind) String() string {
	switch k {
	case DebugInfo:
		return "Info"
	case DebugHeaderIn:
		return "HeaderIn"
	case DebugHeaderOut:
		return "HeaderOut"
	case DebugDataIn:
		return "DataIn"
	case DebugDataOut:
		return "DataOut"
	case DebugTLSDataIn:
		return "TLSDataIn"
	case DebugTLSDataOut:
		return "TLSDataOut"
	default:
		return fmt.Sprintf("unknown debug kind: %d", k)
	}
}
