// Package kontonummer validates Swedish bank account numbers.
//
// An account number starts with a clearing number identifying the bank and
// branch. Each bank publishes how many digits follow the clearing number and
// which checksum (mod10 or mod11) protects them. Validation strips everything
// that is not a digit, finds every bank whose clearing ranges match the leading
// digits and checks length and checksum for each of them.
//
// Basic usage:
//
//	res := kontonummer.Validate("9180-012 345 678-2")
//	if !res.IsValid {
//		return res.Err()
//	}
//	bank, _ := res.Bank()
//	fmt.Println(bank.BankName) // Danske Bank
//
// A number is valid when at least one matched bank reports no errors. Some
// Swedbank accounts (clearing 8xxxx) legitimately fail the checksum; for them a
// failed checksum is reported as a warning and Result.HasWarnings is set.
// WithStrictChecksum turns those warnings into errors.
//
// Validator instances carry their own registry and logger:
//
//	reg, err := kontonummer.LoadRegistryFile("banks.yaml")
//	if err != nil {
//		return err
//	}
//	v := kontonummer.New(
//		kontonummer.WithRegistry(reg),
//		kontonummer.WithLogger(slog.Default()),
//	)
//
// NewFromConfig builds the same from KONTONUMMER_* environment variables, and
// Rule plugs validation into pkg/validator:
//
//	err := validator.Apply(
//		validator.RequiredString("holder", req.Holder),
//		kontonummer.Rule("account", req.Account),
//	)
//
// Validation is pure and safe for concurrent use.
package kontonummer
