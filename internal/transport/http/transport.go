package http

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/peterbourgon/unixtransport"
)

// Options selects the transport variant to build.
type Options struct {
	// ProxyURL routes requests through the given proxy.
	// An empty value falls back to the environment proxy settings.
	ProxyURL string
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool
}

// transportCache shares transports between transfer sessions with equal
// options, so keep-alive connection pools outlive individual transfers.
//
//nolint:gochecknoglobals // The cache deliberately outlives transfer sessions.
var transportCache = newTransportCache()

func newTransportCache() *lru.Cache[Options, *http.Transport] {
	cache, err := lru.New[Options, *http.Transport](transportCacheSize)
	if err != nil {
		// Unreachable: the cache size constant is positive.
		panic(err)
	}

	return cache
}

// For returns a shared transport configured for the given options.
// Returned transports also handle the "http+unix" and "https+unix"
// URL schemes, which address servers listening on unix sockets.
func For(opts Options) (*http.Transport, error) {
	if cached, ok := transportCache.Get(opts); ok {
		return cached, nil
	}

	base, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("default transport is %T, not *http.Transport", http.DefaultTransport)
	}

	transport := base.Clone()

	if opts.ProxyURL != "" {
		proxyURL, err := url.Parse(opts.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse proxy URL: %w", err)
		}

		transport.Proxy = http.ProxyURL(proxyURL)
	}

	if opts.InsecureSkipVerify {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}

		transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec // Explicitly requested by the caller.
	}

	unixtransport.Register(transport)
	transportCache.Add(opts, transport)

	return transport, nil
}
