// Package diag defines the core diagnostic model shared by all pipeline phases.
//
// It provides deterministic, serialisable data structures that capture findings
// produced by the lexer and parser, plus light-weight utilities (Reporter, Bag)
// that let producers emit diagnostics without coupling to concrete storage or
// formatting layers. Rendering lives in internal/diagfmt.
//
// Internal invariant violations in the identity and intrinsics subsystems are
// deliberately *not* diagnostics: they are bugs in the compiler itself and
// surface as panics, which the CLI harness reports as internal errors distinct
// from user source errors.
package diag
