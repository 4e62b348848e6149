package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP transfers.
	DefaultTimeout = 60 * time.Second

	// DefaultMaxDumpLength is the default maximum length of request and
	// response heads mirrored into the debug log.
	DefaultMaxDumpLength = 8 * 1024

	// transportCacheSize bounds the number of distinct cached transports.
	// One transport exists per (proxy, TLS verification) combination.
	transportCacheSize = 16
)
