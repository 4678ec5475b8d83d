// Package gtin12 validates and normalizes GTIN-12 codes, the twelve-digit
// UPC-A format used on North American retail products.
//
// Spreadsheets routinely strip the leading zero from UPC codes by storing
// them as integers. Fix recovers such codes by zero-padding before
// validation, so "87248795257" normalizes to "087248795257".
package gtin12

import "github.com/olgasafonova/gtin-mcp-server/internal/checkdigit"

// Length is the number of digits in a GTIN-12 code.
const Length = 12

// Check reports whether code is a valid GTIN-12: exactly twelve decimal
// digits whose final digit matches the computed check digit.
func Check(code string) bool {
	return checkdigit.Check(code, Length)
}

// Fix trims whitespace, left-pads code with zeros to twelve digits and
// validates the result. It returns the normalized code, or a gtin error
// describing why the code cannot be a GTIN-12.
func Fix(code string) (string, error) {
	return checkdigit.Fix(code, Length)
}
