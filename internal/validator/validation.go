package validator

import "fmt"

// MaxPayloadLength is the longest payload gtin_check_digit accepts when no
// target length is given. It matches the payload of a GTIN-14.
const MaxPayloadLength = 13

// ValidateLength validates a requested GTIN length.
func ValidateLength(length int) error {
	switch length {
	case 8, 12, 13, 14:
		return nil
	}
	return fmt.Errorf("unsupported GTIN length %d: must be 8, 12, 13 or 14", length)
}

// ValidateCode validates that a code argument is present.
func ValidateCode(code string) error {
	if code == "" {
		return fmt.Errorf("code is required")
	}
	return nil
}

// ValidateBatch validates the size of a batch request.
func ValidateBatch(codes []string, limit int) error {
	if len(codes) == 0 {
		return fmt.Errorf("codes is required")
	}
	if len(codes) > limit {
		return fmt.Errorf("batch of %d codes exceeds the limit of %d", len(codes), limit)
	}
	return nil
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
