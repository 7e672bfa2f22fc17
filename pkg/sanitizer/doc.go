// Package sanitizer normalizes visitor input before it reaches the contact
// form controller.
//
// All functions are idempotent and never fail: input that cannot be
// normalized is returned trimmed rather than rejected, leaving rejection to
// the validator.
//
// Normalization includes:
//   - Strings: collapse inner whitespace, trim leading/trailing spaces
//   - Emails: trim and lowercase
//   - Phone numbers: E.164 (+[country][number]) when the number is possible
//     for the given region, otherwise the trimmed input
//   - Slices: trim, drop empties and duplicates, keep first-seen order
package sanitizer
