// Package transfer exposes the single-transfer facade: it wires a trace
// formatter and a header collector into a transfer engine, forwards
// configuration and execution to it, and hands the captured diagnostics
// back to the caller.
package transfer
