package kontonummer

// ValidateLength compares the length of number with the layout of bank.
// It returns nothing when number is outside the bank's clearing ranges.
func ValidateLength(bank Bank, number string) []ErrorKind {
	errs := []ErrorKind{}
	if !bank.Matches(number) {
		return errs
	}

	switch {
	case len(number) < bank.Lengths.MinTotal():
		errs = append(errs, ErrorTooShort)
	case len(number) > bank.Lengths.Total():
		errs = append(errs, ErrorTooLong)
	}
	return errs
}

// ValidateChecksum runs the bank's checksum over the control digits of number.
// BankName stays empty when number is outside the bank's clearing ranges; the
// clearing and account parts are filled in either way.
func ValidateChecksum(bank Bank, number string) BankMatch {
	return validateChecksum(bank, number, false)
}

func validateChecksum(bank Bank, number string, strict bool) BankMatch {
	m := BankMatch{
		ClearingNumber: ClearingNumber(number, bank.Lengths.Clearing),
		AccountNumber:  AccountNumber(number, bank.Lengths.Clearing),
		Errors:         []ErrorKind{},
		Warnings:       []WarningKind{},
	}
	if !bank.Matches(number) {
		return m
	}

	m.BankName = bank.Name
	if bank.Algorithm.Verify(ControlDigits(bank.Lengths.Control, number)) {
		return m
	}

	if bank.WarnOnBadChecksum && !strict {
		m.addWarning(WarningBadChecksum)
	} else {
		m.addError(ErrorBadChecksum)
	}
	return m
}
