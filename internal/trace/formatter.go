package trace

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/oshokin/tracefetch/internal/engine"
)

const (
	// timestampLayout renders wall-clock time with microsecond precision.
	timestampLayout = "15:04:05.000000"

	// dumpWidth is the number of payload bytes rendered per dump line.
	dumpWidth = 64
)

// Formatter accumulates debug events into an ASCII trace log shaped like the
// verbose output of classic command-line transfer tools.
// It is not safe for concurrent use: the engine serializes callback dispatch.
type Formatter struct {
	// clock supplies the per-event timestamps.
	clock clockwork.Clock
	// builder accumulates the trace log.
	builder strings.Builder
}

// NewFormatter returns a Formatter stamping events with the system clock.
func NewFormatter() *Formatter {
	return NewFormatterWithClock(clockwork.NewRealClock())
}

// NewFormatterWithClock returns a Formatter stamping events with the given clock.
func NewFormatterWithClock(clock clockwork.Clock) *Formatter {
	return &Formatter{clock: clock}
}

// HandleEvent appends one debug event to the trace log and always reports
// success: trace formatting must never abort a transfer.
// It matches the engine.DebugFunc contract.
func (f *Formatter) HandleEvent(kind engine.DebugKind, data []byte) int {
	// The clock is sampled on every callback: events carry no timestamp
	// of their own.
	timestamp := f.clock.Now().Format(timestampLayout)

	switch kind {
	case engine.DebugInfo:
		fmt.Fprintf(&f.builder, "%s == Info: %s", timestamp, data)
	case engine.DebugHeaderIn:
		f.dump(timestamp, "<= Recv header", data, false)
	case engine.DebugHeaderOut:
		f.dump(timestamp, "=> Send header", data, false)
	case engine.DebugDataIn:
		f.dump(timestamp, "<= Recv data", data, true)
	case engine.DebugDataOut:
		f.dump(timestamp, "=> Send data", data, true)
	case engine.DebugTLSDataIn, engine.DebugTLSDataOut:
		// TLS record bytes never appear in the trace.
	default:
		fmt.Fprintf(&f.builder, "%s == Unknown %d: %s", timestamp, kind, data)
	}

	return 0
}

// String returns the accumulated trace log.
func (f *Formatter) String() string {
	return f.builder.String()
}

// dump appends a labeled printable-ASCII dump of payload to the trace log.
// The byte count in the label reflects the payload as delivered,
// before any CRLF stripping.
func (f *Formatter) dump(timestamp, label string, payload []byte, unsplit bool) {
	fmt.Fprintf(&f.builder, "%s %s, %d bytes (0x%x)\n",
		timestamp, label, len(payload), len(payload))

	if !unsplit {
		payload = trimOneCRLF(payload)
	}

	f.formatBody(payload, unsplit)
}

// formatBody renders payload as offset-prefixed lines of at most dumpWidth
// bytes. In split mode the payload divides into CRLF-separated records first,
// and the running offset accounts for each stripped separator after a
// record's first chunk.
func (f *Formatter) formatBody(payload []byte, unsplit bool) {
	records := [][]byte{payload}
	if !unsplit {
		records = bytes.Split(payload, []byte("\r\n"))
	}

	var offset int

	for _, record := range records {
		for first := true; first || len(record) > 0; first = false {
			chunk := record
			if len(chunk) > dumpWidth {
				chunk = chunk[:dumpWidth]
			}

			record = record[len(chunk):]

			fmt.Fprintf(&f.builder, "%04x: ", offset)

			for _, payloadByte := range chunk {
				if payloadByte < 0x20 || payloadByte > 0x7E {
					payloadByte = '.'
				}

				f.builder.WriteByte(payloadByte)
			}

			f.builder.WriteByte('\n')

			offset += len(chunk)

			if first && !unsplit {
				offset += 2
			}
		}
	}
}

// trimOneCRLF removes at most one trailing CRLF pair.
func trimOneCRLF(payload []byte) []byte {
	if len(payload) >= 2 &&
		payload[len(payload)-2] == '\r' &&
		payload[len(payload)-1] == '\n' {
		return payload[:len(payload)-2]
	}

	return payload
}
