// Package gtin8 validates and normalizes GTIN-8 codes, the short EAN-8
// format printed on small packages.
package gtin8

import "github.com/olgasafonova/gtin-mcp-server/internal/checkdigit"

// Length is the number of digits in a GTIN-8 code.
const Length = 8

// Check reports whether code is a valid GTIN-8.
func Check(code string) bool {
	return checkdigit.Check(code, Length)
}

// Fix trims whitespace, left-pads code with zeros to eight digits and
// validates the result. On failure it returns one of the gtin errors.
func Fix(code string) (string, error) {
	return checkdigit.Fix(code, Length)
}
