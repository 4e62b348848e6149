// Package trace converts transfer callback streams into human-readable
// artifacts: Formatter renders debug events as a timestamped ASCII trace log,
// HeaderCollector accumulates received response header lines.
// Both types match the engine callback contracts and never report failure,
// so observation can never abort a transfer.
package trace
