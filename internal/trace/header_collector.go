package trace

import "slices"

// HeaderCollector accumulates received response header lines.
// It is not safe for concurrent use: the engine serializes callback dispatch.
type HeaderCollector struct {
	// headers holds the stripped, non-empty header lines in arrival order.
	headers []string
}

// NewHeaderCollector returns an empty HeaderCollector.
func NewHeaderCollector() *HeaderCollector {
	return &HeaderCollector{}
}

// HandleLine records one received header line and reports the full original
// line length as consumed. It matches the engine.HeaderFunc contract.
// At most one trailing CRLF or LF is stripped, and lines that strip down to
// nothing, such as the blank head terminator, are not stored.
func (c *HeaderCollector) HandleLine(line []byte) int {
	stripped := line

	switch {
	case len(stripped) >= 2 &&
		stripped[len(stripped)-2] == '\r' &&
		stripped[len(stripped)-1] == '\n':
		stripped = stripped[:len(stripped)-2]
	case len(stripped) >= 1 && stripped[len(stripped)-1] == '\n':
		stripped = stripped[:len(stripped)-1]
	}

	if len(stripped) > 0 {
		c.headers = append(c.headers, string(stripped))
	}

	return len(line)
}

// Headers returns a copy of the collected header lines in arrival order.
func (c *HeaderCollector) Headers() []string {
	return slices.Clone(c.headers)
}
