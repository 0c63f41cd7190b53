// Package sanitizer cleans and masks bank account number input.
//
//   - Digits drops every character outside ASCII 0-9, so "8327-9, 123 456 789-0"
//     becomes "832791234567890".
//   - MaskAccountNumber hides the account part before a number is logged.
//   - FormatAccountNumber renders "clearing-account" for display.
//
// None of the helpers returns an error and none keeps state; they are safe for
// concurrent use.
package sanitizer
