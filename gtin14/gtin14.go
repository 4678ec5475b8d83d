// Package gtin14 validates and normalizes GTIN-14 codes, the fourteen-digit
// format for trade item groupings such as cases and pallets. The leading
// digit is the packaging indicator; the remainder embeds a GTIN-13 payload.
package gtin14

import "github.com/olgasafonova/gtin-mcp-server/internal/checkdigit"

// Length is the number of digits in a GTIN-14 code.
const Length = 14

// Check reports whether code is a valid GTIN-14.
func Check(code string) bool {
	return checkdigit.Check(code, Length)
}

// Fix trims whitespace, left-pads code with zeros to fourteen digits and
// validates the result. On failure it returns one of the gtin errors.
func Fix(code string) (string, error) {
	return checkdigit.Fix(code, Length)
}
