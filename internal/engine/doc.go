// Package engine defines the blocking network-transfer engine contract used by
// the rest of the application: an enumerable option surface, registrable
// header/debug/body callbacks, a single-attempt Perform operation, and coded
// error reporting with human-readable descriptions.
// The package also provides HTTPEngine, the net/http-backed production
// implementation. HTTPEngine implements no protocol logic of its own beyond
// configuring and driving the standard library HTTP client; its added value is
// translating the client's lifecycle into the callback event stream.
package engine
