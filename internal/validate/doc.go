// SPDX-License-Identifier: MPL-2.0

// Package validate provides standalone input validators.
//
// These are the pure validation rules behind the interactive prompts in
// internal/prompt, exposed directly so they can also be applied to data
// that was not entered interactively (file contents, CLI arguments).
package validate
