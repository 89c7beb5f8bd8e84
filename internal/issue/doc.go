// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// Errors carry the failed operation, the resource involved and
// remediation suggestions. Known failure classes additionally have a
// Markdown-formatted help page rendered on demand for the CLI.
package issue
