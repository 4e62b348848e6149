package engine

const (
	// DefaultMaxRedirects is the default limit on followed redirects.
	DefaultMaxRedirects = 10

	// DefaultMaxTraceBody is the default per-transfer cap on body bytes
	// handed to the debug callback.
	DefaultMaxTraceBody = 1 << 20

	// readChunkSize is the buffer size used when reading response bodies.
	readChunkSize = 16 * 1024
)
