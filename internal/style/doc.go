// SPDX-License-Identifier: MPL-2.0

// Package style provides the presentation layer for user-facing messages.
//
// A Styler renders titles and ok/error/warn/info messages. The lipgloss
// implementation adds color and emphasis; the plain implementation
// returns undecorated text and is selected automatically when output is
// not a terminal or color is disabled. Styling never affects validation
// semantics.
package style
