// Package app provides the main application logic for running traced HTTP transfers.
// It wires the HTTP transfer engine into the fetch service and orchestrates
// the per-URL capture process.
package app
