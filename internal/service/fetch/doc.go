// Package fetch provides the core functionality for running traced HTTP transfers.
// It builds a fresh engine and facade per URL, routes response bodies
// to files or standard output, and writes the captured trace logs
// alongside session statistics and an optional YAML report.
package fetch
