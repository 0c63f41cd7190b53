package kontonummer_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kontonummer"
)

func TestValidate_InvalidInput(t *testing.T) {
	t.Parallel()

	expected := kontonummer.Result{
		IsValid:      false,
		Errors:       []kontonummer.ErrorKind{kontonummer.ErrorInvalidAccountNumber},
		MatchedBanks: []kontonummer.BankMatch{},
		HasWarnings:  false,
	}

	var nilString *string
	inputs := map[string]any{
		"nil":          nil,
		"empty string": "",
		"number":       90917261730,
		"float":        9.1800123456782e13,
		"map":          map[string]any{},
		"slice":        []string{},
		"bytes":        []byte("91800123456782"),
		"struct":       struct{}{},
		"nil pointer":  nilString,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, expected, kontonummer.Validate(input))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("danske bank mod10", func(t *testing.T) {
		res := kontonummer.Validate("91800123456782")
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Errors)
		assert.False(t, res.HasWarnings)
		require.Len(t, res.MatchedBanks, 1)
		assert.Equal(t, "Danske Bank", res.MatchedBanks[0].BankName)
		assert.Equal(t, "9180", res.MatchedBanks[0].ClearingNumber)
		assert.Equal(t, "0123456782", res.MatchedBanks[0].AccountNumber)
	})

	t.Run("formatted input", func(t *testing.T) {
		res := kontonummer.Validate("SE 9180-012 345 678-2")
		assert.True(t, res.IsValid)
	})

	t.Run("swedbank bad checksum is a warning", func(t *testing.T) {
		res := kontonummer.Validate("800212345212358")
		assert.True(t, res.IsValid)
		assert.True(t, res.HasWarnings)
		assert.Empty(t, res.Errors)
		require.Len(t, res.MatchedBanks, 1)
		assert.Equal(t, []kontonummer.WarningKind{kontonummer.WarningBadChecksum}, res.MatchedBanks[0].Warnings)
		assert.Empty(t, res.MatchedBanks[0].Errors)
	})

	t.Run("swedbank short number is zero filled", func(t *testing.T) {
		res := kontonummer.Validate("8327912344")
		assert.True(t, res.IsValid)
		require.Len(t, res.MatchedBanks, 1)
		assert.Equal(t, "83279", res.MatchedBanks[0].ClearingNumber)
		assert.Equal(t, "0000012344", res.MatchedBanks[0].AccountNumber)

		res = kontonummer.Validate("9300123455")
		assert.True(t, res.IsValid)
		require.Len(t, res.MatchedBanks, 1)
		assert.Equal(t, "0000123455", res.MatchedBanks[0].AccountNumber)
	})

	t.Run("too short", func(t *testing.T) {
		res := kontonummer.Validate("9550123456")
		assert.False(t, res.IsValid)
		assert.Empty(t, res.Errors, "per-bank errors stay out of the top level")
		require.Len(t, res.MatchedBanks, 1)
		assert.Equal(t, []kontonummer.ErrorKind{kontonummer.ErrorTooShort}, res.MatchedBanks[0].Errors)
	})

	t.Run("too long", func(t *testing.T) {
		res := kontonummer.Validate("80000123456789712")
		assert.False(t, res.IsValid)
		require.Len(t, res.MatchedBanks, 1)
		assert.Equal(t, []kontonummer.ErrorKind{kontonummer.ErrorTooLong}, res.MatchedBanks[0].Errors)
	})

	t.Run("bad checksum", func(t *testing.T) {
		res := kontonummer.Validate("95501234567")
		assert.False(t, res.IsValid)
		assert.False(t, res.HasWarnings)
		require.Len(t, res.MatchedBanks, 1)
		assert.Equal(t, []kontonummer.ErrorKind{kontonummer.ErrorBadChecksum}, res.MatchedBanks[0].Errors)
	})

	t.Run("unknown clearing number", func(t *testing.T) {
		for _, input := range []string{"0000123", "123", "no digits"} {
			res := kontonummer.Validate(input)
			assert.False(t, res.IsValid, input)
			assert.Equal(t, []kontonummer.ErrorKind{kontonummer.ErrorUnknownClearingNumber}, res.Errors, input)
			assert.Empty(t, res.MatchedBanks, input)
		}
	})

	t.Run("overlapping clearing ranges report every match", func(t *testing.T) {
		res := kontonummer.Validate("37821234567897")
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Errors)
		require.Len(t, res.MatchedBanks, 2)

		assert.Equal(t, "Nordea", res.MatchedBanks[0].BankName)
		assert.Equal(t, []kontonummer.ErrorKind{kontonummer.ErrorBadChecksum, kontonummer.ErrorTooLong}, res.MatchedBanks[0].Errors)
		assert.Equal(t, "Nordea", res.MatchedBanks[1].BankName)
		assert.Empty(t, res.MatchedBanks[1].Errors)

		res = kontonummer.Validate("37821234560")
		assert.False(t, res.IsValid)
		require.Len(t, res.MatchedBanks, 2)
		assert.Equal(t, []kontonummer.ErrorKind{kontonummer.ErrorBadChecksum}, res.MatchedBanks[0].Errors)
		assert.Equal(t, []kontonummer.ErrorKind{kontonummer.ErrorBadChecksum, kontonummer.ErrorTooShort}, res.MatchedBanks[1].Errors)
	})

	t.Run("known valid numbers", func(t *testing.T) {
		numbers := map[string]string{
			"33001234567897":  "Nordea",
			"30001234560":     "Nordea",
			"40001234567":     "Nordea",
			"6789123456789":   "Handelsbanken",
			"50001000004":     "SEB",
			"95501234566":     "Avanza Bank",
			"95701234567897":  "Sparbanken Syd",
			"800001234567897": "Swedbank",
			"70001234560":     "Swedbank",
			"93001234567897":  "Swedbank",
			"12001234562":     "Danske Bank",
			"23001234561":     "Ålandsbanken",
		}
		for number, bank := range numbers {
			res := kontonummer.Validate(number)
			assert.True(t, res.IsValid, number)
			m, ok := res.Bank()
			require.True(t, ok, number)
			assert.Equal(t, bank, m.BankName, number)
		}
	})
}

func TestValidator_StrictChecksum(t *testing.T) {
	t.Parallel()

	v := kontonummer.New(kontonummer.WithStrictChecksum())

	res := v.Validate("800212345212358")
	assert.False(t, res.IsValid)
	assert.False(t, res.HasWarnings)
	require.Len(t, res.MatchedBanks, 1)
	assert.Equal(t, []kontonummer.ErrorKind{kontonummer.ErrorBadChecksum}, res.MatchedBanks[0].Errors)
	assert.Empty(t, res.MatchedBanks[0].Warnings)

	assert.True(t, v.Validate("800001234567897").IsValid)
}

func TestValidator_WithRegistry(t *testing.T) {
	t.Parallel()

	v := kontonummer.New(kontonummer.WithRegistry(kontonummer.Registry{citibank}))
	assert.True(t, v.Validate("90441234560").IsValid)

	res := v.Validate("91800123456782")
	assert.False(t, res.IsValid)
	assert.Equal(t, []kontonummer.ErrorKind{kontonummer.ErrorUnknownClearingNumber}, res.Errors)

	t.Run("empty registry keeps the default", func(t *testing.T) {
		v := kontonummer.New(kontonummer.WithRegistry(nil))
		assert.Equal(t, kontonummer.DefaultRegistry(), v.Registry())
	})

	t.Run("registry is copied", func(t *testing.T) {
		reg := kontonummer.Registry{citibank}
		v := kontonummer.New(kontonummer.WithRegistry(reg))
		reg[0].Clearing[0] = kontonummer.Single("9180")
		assert.Equal(t, "9040-9049", v.Registry()[0].Clearing[0].String())
	})
}

func TestValidator_Logging(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	v := kontonummer.New(kontonummer.WithLogger(log))

	v.Validate("91800123456782")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "account number validated", entry["msg"])
	assert.Equal(t, "9180********82", entry["account_number"])
	assert.Equal(t, true, entry["is_valid"])
	assert.NotContains(t, buf.String(), "91800123456782")

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "Danske Bank", entry["bank"])

	buf.Reset()
	v.Validate(42)
	assert.Contains(t, buf.String(), `"input_type":"int"`)
}

func TestValidate_Concurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.True(t, kontonummer.Validate("91800123456782").IsValid)
				assert.True(t, kontonummer.Validate("800212345212358").HasWarnings)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkValidate(b *testing.B) {
	for b.Loop() {
		kontonummer.Validate("9180-012 345 678-2")
	}
}
