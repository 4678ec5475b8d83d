// Package gtin13 validates and normalizes GTIN-13 codes, the thirteen-digit
// EAN-13 format used on retail products worldwide.
//
// A GTIN-13 consists of a GS1 prefix, a company reference, an item reference
// and a trailing check digit. Check verifies the structure without consulting
// any registry: it only confirms the length, the digit alphabet and the
// check digit. Fix additionally repairs the two most common transport
// mangles, surrounding whitespace and lost leading zeros.
package gtin13

import "github.com/olgasafonova/gtin-mcp-server/internal/checkdigit"

// Length is the number of digits in a GTIN-13 code.
const Length = 13

// Check reports whether code is a valid GTIN-13: exactly thirteen decimal
// digits whose final digit matches the computed check digit. Codes that
// need trimming or padding fail Check; run them through Fix first.
func Check(code string) bool {
	return checkdigit.Check(code, Length)
}

// Fix trims whitespace, left-pads code with zeros to thirteen digits and
// validates the result. It returns the normalized code, or a gtin error:
// ErrTooLong when the trimmed code exceeds thirteen bytes, ErrBadCharacter
// when a non-digit remains, ErrBadChecksum when the check digit disagrees.
func Fix(code string) (string, error) {
	return checkdigit.Fix(code, Length)
}
