// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"regexp"
	"strings"
)

// emailRe matches a complete address: a local part of letters, digits
// and ._%+- characters, an @, domain labels of letters/digits/.- and a
// final TLD of at least two letters.
var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Email reports whether s is a syntactically valid email address.
// Surrounding whitespace is ignored; the pattern must match the whole
// remaining string.
func Email(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}
