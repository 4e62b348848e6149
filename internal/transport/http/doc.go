// Package http provides the HTTP transport layer shared by transfer engines:
// cached http.Transport variants keyed by proxy and TLS settings,
// unix-socket URL scheme support, and a round-tripper decorator
// that mirrors traffic heads into the application log.
package http
