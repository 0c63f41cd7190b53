package kontonummer

import (
	"strings"

	"github.com/dmitrymomot/kontonummer/pkg/sanitizer"
)

// Sanitize removes every character outside 0-9 from number.
func Sanitize(number string) string {
	return sanitizer.Digits(number)
}

// ClearingNumber returns the first n digits of number, or all of it when shorter.
func ClearingNumber(number string, n int) string {
	return number[:clamp(n, len(number))]
}

// AccountNumber returns what follows the first n digits of number.
func AccountNumber(number string, n int) string {
	return number[clamp(n, len(number)):]
}

// ControlDigits returns the trailing n digits of number, or all of it when shorter.
func ControlDigits(n int, number string) string {
	return number[len(number)-clamp(n, len(number)):]
}

// FillZeros left-pads the account part of number with zeros up to
// bank.Lengths.Account. Numbers whose account part is already that long or
// longer are returned unchanged.
func FillZeros(number string, bank Bank) string {
	clearing := ClearingNumber(number, bank.Lengths.Clearing)
	account := AccountNumber(number, bank.Lengths.Clearing)

	missing := bank.Lengths.Account - len(account)
	if missing <= 0 {
		return number
	}
	return clearing + strings.Repeat("0", missing) + account
}

func clamp(n, limit int) int {
	return max(0, min(n, limit))
}
