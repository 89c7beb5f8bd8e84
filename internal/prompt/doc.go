// SPDX-License-Identifier: MPL-2.0

// Package prompt implements validated interactive input loops.
//
// A Prompter reads lines from a configurable source, validates them
// against a per-operation rule (non-empty text, integer/float range,
// option membership, yes/no, email, CUIT) and re-prompts with a styled
// message until the input is valid. Entering the cancel word at any
// prompt aborts the operation with ErrCancelled, which callers must
// handle explicitly.
package prompt
