// Package diag provides structured, per-subsystem-toggled diagnostics,
// replacing the ad-hoc unitorus_debug-gated cout/cerr writes in the
// original booksim2 source with a zerolog-backed channel a caller can
// enable independently per subsystem (topology build, routing, allocation).
package diag
