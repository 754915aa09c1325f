// Package types defines the error taxonomy shared by the d2skit packages.
//
// Every failure the codec reports is a deterministic function of malformed
// input or caller misuse. Errors carry a stable ErrKind so callers can branch
// on intent rather than text, and the package-level sentinels are meant to be
// matched with errors.Is after the call sites wrap them with context.
//
// This package has no dependencies beyond the standard library.
package types
