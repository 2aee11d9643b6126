// Package diagnostic provides structured generation-time failures for the
// accessor generators.
//
// Every unsupported shape maps to a fixed code and message, so callers (and
// tests) can assert on the failure kind rather than just its occurrence. A
// rejection always blocks generation for the whole type; there is no partial
// or best-effort output.
package diagnostic
