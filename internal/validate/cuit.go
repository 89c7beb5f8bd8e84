// SPDX-License-Identifier: MPL-2.0

package validate

import "regexp"

// nonDigitRe strips separators (dashes, dots, spaces) from CUIT input.
var nonDigitRe = regexp.MustCompile(`\D`)

// cuitWeights is the AFIP weight sequence applied to the first ten
// digits when computing the verification digit.
var cuitWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// NormalizeCUIT removes every non-digit character from s and reports
// whether exactly eleven digits remain. Accepts any separator format
// ("20-12345678-6", "20 12345678 6", "20123456786").
func NormalizeCUIT(s string) (string, bool) {
	digits := nonDigitRe.ReplaceAllString(s, "")
	if len(digits) != 11 {
		return "", false
	}
	return digits, true
}

// CheckDigit computes the CUIT/CUIL verification digit for a ten-digit
// base. The weighted sum is reduced modulo 11; a result of 11 maps to
// 0 and 10 maps to 9, per the AFIP rule.
func CheckDigit(base string) int {
	sum := 0
	for i := 0; i < len(base) && i < len(cuitWeights); i++ {
		sum += int(base[i]-'0') * cuitWeights[i]
	}
	dv := 11 - sum%11
	switch dv {
	case 11:
		return 0
	case 10:
		return 9
	}
	return dv
}

// CUIT reports whether s is a valid CUIT/CUIL: eleven digits in any
// separator format whose last digit equals the computed check digit.
func CUIT(s string) bool {
	norm, ok := NormalizeCUIT(s)
	if !ok {
		return false
	}
	return CheckDigit(norm[:10]) == int(norm[10]-'0')
}
