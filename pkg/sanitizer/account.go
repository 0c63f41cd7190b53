package sanitizer

import "strings"

// Digits removes every character outside 0-9 and keeps the order of the rest.
// Non-ASCII digits (full-width, Arabic-Indic, ...) are removed as well.
func Digits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// MaskAccountNumber hides the account part of a bank account number so it can be
// logged. The clearing prefix and the last two digits stay visible.
func MaskAccountNumber(number string, clearingLen int) string {
	digits := Digits(number)
	if clearingLen < 0 {
		clearingLen = 0
	}
	if len(digits) <= clearingLen+2 {
		return digits[:min(clearingLen, len(digits))] + strings.Repeat("*", max(len(digits)-clearingLen, 0))
	}

	hidden := len(digits) - clearingLen - 2
	return digits[:clearingLen] + strings.Repeat("*", hidden) + digits[len(digits)-2:]
}

// FormatAccountNumber renders a bank account number as "clearing-account".
// Numbers not longer than the clearing prefix are returned as plain digits.
func FormatAccountNumber(number string, clearingLen int) string {
	digits := Digits(number)
	if clearingLen <= 0 || len(digits) <= clearingLen {
		return digits
	}
	return digits[:clearingLen] + "-" + digits[clearingLen:]
}
