package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/olgasafonova/gtin-mcp-server/gtin"
	"github.com/olgasafonova/gtin-mcp-server/internal/checkdigit"
)

// MCP Tool wrapper methods
// These methods wrap the per-length packages with Args/Result types for MCP
// integration. Codes that fail validation are reported inside the result;
// an error return means the arguments themselves were unusable.

// gtinLengths are the supported lengths in ascending order.
var gtinLengths = [...]int{8, 12, 13, 14}

// CheckMCP reports whether a code is a valid GTIN of the requested length.
func (s *Service) CheckMCP(ctx context.Context, args CheckArgs) (CheckResult, error) {
	if err := ValidateLength(args.Length); err != nil {
		return CheckResult{}, err
	}

	result := CheckResult{
		Code:   args.Code,
		Length: args.Length,
		Valid:  checkLength(args.Code, args.Length),
	}
	if !result.Valid {
		result.Reason = describeCheck(args.Code, args.Length)
	}
	return result, nil
}

// FixMCP normalizes a code to the requested length. Normalization failures
// come back inside the result with a machine-readable error kind.
func (s *Service) FixMCP(ctx context.Context, args FixArgs) (FixResult, error) {
	if err := ValidateLength(args.Length); err != nil {
		return FixResult{}, err
	}
	if err := ValidateCode(args.Code); err != nil {
		return FixResult{}, err
	}

	result := FixResult{Input: args.Code, Length: args.Length}

	fixed, err := fixLength(args.Code, args.Length)
	if err != nil {
		result.Error = errorKind(err)
		result.Detail = err.Error()
		return result, nil
	}

	result.Fixed = true
	result.Code = fixed
	result.Changed = fixed != args.Code
	return result, nil
}

// CheckDigitMCP computes the check digit for a payload. With a target
// length the payload is zero-padded to length-1 digits first.
func (s *Service) CheckDigitMCP(ctx context.Context, args CheckDigitArgs) (CheckDigitResult, error) {
	payload := strings.TrimSpace(args.Payload)
	if payload == "" {
		return CheckDigitResult{}, fmt.Errorf("payload is required")
	}

	if args.Length != 0 {
		if err := ValidateLength(args.Length); err != nil {
			return CheckDigitResult{}, err
		}
		if len(payload) > args.Length-1 {
			return CheckDigitResult{}, fmt.Errorf("payload has %d digits, a GTIN-%d payload has at most %d",
				len(payload), args.Length, args.Length-1)
		}
		payload = strings.Repeat("0", args.Length-1-len(payload)) + payload
	} else if len(payload) > MaxPayloadLength {
		return CheckDigitResult{}, fmt.Errorf("payload has %d digits, at most %d supported", len(payload), MaxPayloadLength)
	}

	if i := nonDigit(payload); i >= 0 {
		return CheckDigitResult{}, fmt.Errorf("payload character %q at position %d is not a digit", payload[i], i)
	}

	digit := checkdigit.Compute(payload)
	return CheckDigitResult{
		Payload:    payload,
		CheckDigit: digit,
		Code:       payload + string(rune('0'+digit)),
	}, nil
}

// DetectMCP tries every supported length and reports which ones accept the
// code after normalization. A code valid at one length usually normalizes
// into the longer lengths too, since left zero-padding preserves digit
// weights; Exact singles out the length where no normalization was needed.
func (s *Service) DetectMCP(ctx context.Context, args DetectArgs) (DetectResult, error) {
	if err := ValidateCode(args.Code); err != nil {
		return DetectResult{}, err
	}

	result := DetectResult{
		Input:   args.Code,
		Matches: make([]DetectMatch, 0, len(gtinLengths)),
	}
	for _, length := range gtinLengths {
		fixed, err := fixLength(args.Code, length)
		if err != nil {
			continue
		}
		result.Matches = append(result.Matches, DetectMatch{
			Length: length,
			Code:   fixed,
			Exact:  fixed == args.Code,
		})
	}
	result.Count = len(result.Matches)
	return result, nil
}

// BatchCheckMCP validates a batch of codes at one length. In fix mode each
// code is normalized instead and the normalized form is reported.
func (s *Service) BatchCheckMCP(ctx context.Context, args BatchCheckArgs) (BatchCheckResult, error) {
	if err := ValidateLength(args.Length); err != nil {
		return BatchCheckResult{}, err
	}
	if err := ValidateBatch(args.Codes, s.batchLimit); err != nil {
		return BatchCheckResult{}, err
	}

	result := BatchCheckResult{
		Length:  args.Length,
		Total:   len(args.Codes),
		Results: make([]BatchEntry, 0, len(args.Codes)),
	}

	for _, code := range args.Codes {
		entry := BatchEntry{Code: code}
		if args.Fix {
			fixed, err := fixLength(code, args.Length)
			if err != nil {
				entry.Error = errorKind(err)
			} else {
				entry.Valid = true
				entry.Fixed = fixed
			}
		} else {
			entry.Valid = checkLength(code, args.Length)
		}
		if entry.Valid {
			result.Valid++
		} else {
			result.Invalid++
		}
		result.Results = append(result.Results, entry)
	}

	return result, nil
}

// describeCheck explains why code fails validation at length.
func describeCheck(code string, length int) string {
	if len(code) != length {
		return fmt.Sprintf("code has %d characters, want %d", len(code), length)
	}
	if i := nonDigit(code); i >= 0 {
		return fmt.Sprintf("character %q at position %d is not a digit", code[i], i)
	}
	want := checkdigit.Compute(code[:length-1])
	return fmt.Sprintf("check digit is %c, computed %d", code[length-1], want)
}

// errorKind maps a gtin error to its wire label.
func errorKind(err error) string {
	switch {
	case gtin.IsTooLong(err):
		return "too_long"
	case gtin.IsBadCharacter(err):
		return "bad_character"
	case gtin.IsBadChecksum(err):
		return "bad_checksum"
	}
	return "invalid"
}
