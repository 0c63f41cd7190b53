package kontonummer_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kontonummer"
)

func TestCheckMod10(t *testing.T) {
	t.Parallel()

	t.Run("exactly one check digit passes", func(t *testing.T) {
		var passing []int
		for i := 0; i <= 10; i++ {
			if kontonummer.CheckMod10("7000423456" + strconv.Itoa(i)) {
				passing = append(passing, i)
			}
		}
		assert.Equal(t, []int{6}, passing)
	})

	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"danske bank account", "0123456782", true},
		{"swedbank special account", "2345212358", false},
		{"single check digit", "18", true},
		{"all zeros", "0000000000", false},
		{"empty", "", false},
		{"non digit", "01234a6782", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, kontonummer.CheckMod10(tt.input))
		})
	}
}

func TestCheckMod11(t *testing.T) {
	t.Parallel()

	t.Run("exactly one check digit passes", func(t *testing.T) {
		var passing []int
		for i := 0; i <= 10; i++ {
			if kontonummer.CheckMod11("7000423456" + strconv.Itoa(i)) {
				passing = append(passing, i)
			}
		}
		assert.Equal(t, []int{5}, passing)
	})

	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"type 1 comment 2", "95501234566", true},
		{"type 1 comment 1", "0001234560", true},
		{"handelsbanken", "123456789", true},
		{"wrong check digit", "95501234567", false},
		{"all zeros", "00000000000", false},
		{"longer than eleven digits", "000095501234566", false},
		{"empty", "", false},
		{"non digit", "9550x234566", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, kontonummer.CheckMod11(tt.input))
		})
	}
}

func TestAlgorithm(t *testing.T) {
	t.Parallel()

	assert.True(t, kontonummer.Mod10.Verify("0123456782"))
	assert.True(t, kontonummer.Mod11.Verify("95501234566"))
	assert.False(t, kontonummer.Algorithm(12).Verify("0123456782"))

	t.Run("constants dispatch to the check functions", func(t *testing.T) {
		for _, digits := range []string{"0123456782", "95501234566", "2345212358", "18", ""} {
			assert.Equal(t, kontonummer.CheckMod10(digits), kontonummer.Mod10.Verify(digits), digits)
			assert.Equal(t, kontonummer.CheckMod11(digits), kontonummer.Mod11.Verify(digits), digits)
		}
	})

	assert.Equal(t, "mod10", kontonummer.Mod10.String())
	assert.Equal(t, "mod11", kontonummer.Mod11.String())
	assert.Equal(t, "Algorithm(7)", kontonummer.Algorithm(7).String())

	t.Run("text encoding", func(t *testing.T) {
		for _, in := range []string{"mod10", "MOD10", " 10 "} {
			var a kontonummer.Algorithm
			require.NoError(t, a.UnmarshalText([]byte(in)))
			assert.Equal(t, kontonummer.Mod10, a)
		}

		var a kontonummer.Algorithm
		err := a.UnmarshalText([]byte("mod97"))
		assert.ErrorIs(t, err, kontonummer.ErrInvalidRegistry)

		text, err := kontonummer.Mod11.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "mod11", string(text))

		_, err = kontonummer.Algorithm(0).MarshalText()
		assert.ErrorIs(t, err, kontonummer.ErrInvalidRegistry)
	})
}
