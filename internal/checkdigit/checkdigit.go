// Package checkdigit implements the weighted modulo-10 arithmetic and the
// normalization pipeline shared by the per-length GTIN packages.
package checkdigit

import (
	"strings"

	"github.com/olgasafonova/gtin-mcp-server/gtin"
)

// Compute returns the check digit for payload, the digits of a code without
// its final check-digit position. Counting 1-indexed from the right of the
// payload, odd positions weigh 3 and even positions weigh 1. The caller
// guarantees payload contains only ASCII digits.
func Compute(payload string) int {
	sum := 0
	weight := 3
	for i := len(payload) - 1; i >= 0; i-- {
		sum += weight * int(payload[i]-'0')
		weight = 4 - weight
	}
	if r := sum % 10; r != 0 {
		return 10 - r
	}
	return 0
}

// Check reports whether code is a valid GTIN of exactly the given length:
// right byte count, all decimal digits, and a matching final check digit.
// No trimming or padding is applied.
func Check(code string, length int) bool {
	if len(code) != length {
		return false
	}
	if nonDigit(code) >= 0 {
		return false
	}
	return Compute(code[:length-1]) == int(code[length-1]-'0')
}

// Fix normalizes code to a valid GTIN of the given length. Leading and
// trailing whitespace is trimmed and short input is left-padded with '0'
// to recover codes that were stored as integers. The check digit is never
// rewritten; a mismatch after padding is a genuine validation failure.
func Fix(code string, length int) (string, error) {
	trimmed := strings.TrimSpace(code)
	if len(trimmed) > length {
		return "", &gtin.LengthError{Code: trimmed, Length: length}
	}
	padded := zeroPad(trimmed, length)
	if i := nonDigit(padded); i >= 0 {
		return "", &gtin.CharacterError{Code: padded, Position: i, Char: padded[i]}
	}
	want := Compute(padded[:length-1])
	if got := int(padded[length-1] - '0'); got != want {
		return "", &gtin.ChecksumError{Code: padded, Want: want, Got: got}
	}
	return padded, nil
}

// zeroPad left-pads s with ASCII '0' to size bytes. Strings already size
// bytes or longer are returned unchanged.
func zeroPad(s string, size int) string {
	if len(s) >= size {
		return s
	}
	return strings.Repeat("0", size-len(s)) + s
}

// nonDigit returns the index of the first byte outside '0'-'9', or -1.
func nonDigit(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return i
		}
	}
	return -1
}
