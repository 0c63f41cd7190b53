package kontonummer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/kontonummer"
)

var swedbank8 = kontonummer.Bank{
	Name:              "Swedbank",
	Clearing:          []kontonummer.ClearingRange{kontonummer.Span("80000", "89999")},
	Algorithm:         kontonummer.Mod10,
	Lengths:           kontonummer.Lengths{Clearing: 5, Account: 10, Control: 10},
	ZeroFill:          true,
	WarnOnBadChecksum: true,
}

func TestSanitize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "91800123456782", kontonummer.Sanitize("9180-0 123 456 78-2"))
	assert.Equal(t, "", kontonummer.Sanitize("kontonummer"))
}

func TestFillZeros(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected string
	}{
		{"8123412345", "812340000012345"},
		{"899991", "899990000000001"},
		{"854321234567890", "854321234567890"},
		{"8543212345678901", "8543212345678901"},
		{"81234", "812340000000000"},
		{"812", "812" + "0000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, kontonummer.FillZeros(tt.input, swedbank8))
		})
	}
}

func TestControlDigits(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "2345678901", kontonummer.ControlDigits(10, "12345678901"))
	assert.Equal(t, "1234567890", kontonummer.ControlDigits(12, "1234567890"))
	assert.Equal(t, "", kontonummer.ControlDigits(0, "1234567890"))
	assert.Equal(t, "", kontonummer.ControlDigits(4, ""))
}

func TestClearingAndAccountNumber(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "9180", kontonummer.ClearingNumber("91801234567890", 4))
	assert.Equal(t, "1234567890", kontonummer.AccountNumber("91801234567890", 4))
	assert.Equal(t, "918", kontonummer.ClearingNumber("918", 4))
	assert.Equal(t, "", kontonummer.AccountNumber("918", 4))
}
