package validator

import (
	"context"
	"strings"
	"testing"
)

func ctx() context.Context {
	return context.Background()
}

func newService() *Service {
	return NewService(Config{})
}

// =============================================================================
// CheckMCP Tests
// =============================================================================

func TestCheckMCP_Valid(t *testing.T) {
	tests := []struct {
		code   string
		length int
	}{
		{"49137712", 8},
		{"036000291452", 12},
		{"8845791354268", 13},
		{"17342894127884", 14},
		{"000000000000", 12},
	}

	for _, tt := range tests {
		result, err := newService().CheckMCP(ctx(), CheckArgs{Code: tt.code, Length: tt.length})
		if err != nil {
			t.Fatalf("CheckMCP(%q, %d) failed: %v", tt.code, tt.length, err)
		}
		if !result.Valid {
			t.Errorf("CheckMCP(%q, %d): Valid = false, reason %q", tt.code, tt.length, result.Reason)
		}
		if result.Reason != "" {
			t.Errorf("CheckMCP(%q, %d): Reason = %q for a valid code", tt.code, tt.length, result.Reason)
		}
		if result.Code != tt.code || result.Length != tt.length {
			t.Errorf("CheckMCP echo = %q/%d, want %q/%d", result.Code, result.Length, tt.code, tt.length)
		}
	}
}

func TestCheckMCP_InvalidChecksum(t *testing.T) {
	result, err := newService().CheckMCP(ctx(), CheckArgs{Code: "123456789013", Length: 12})
	if err != nil {
		t.Fatalf("CheckMCP failed: %v", err)
	}

	if result.Valid {
		t.Error("Expected Valid=false for a checksum mismatch")
	}
	if !strings.Contains(result.Reason, "check digit is 3") || !strings.Contains(result.Reason, "computed 2") {
		t.Errorf("Reason = %q, want check digit explanation", result.Reason)
	}
}

func TestCheckMCP_WrongLength(t *testing.T) {
	result, err := newService().CheckMCP(ctx(), CheckArgs{Code: "1234", Length: 12})
	if err != nil {
		t.Fatalf("CheckMCP failed: %v", err)
	}

	if result.Valid {
		t.Error("Expected Valid=false for a short code")
	}
	if !strings.Contains(result.Reason, "4 characters") || !strings.Contains(result.Reason, "12") {
		t.Errorf("Reason = %q, want character count explanation", result.Reason)
	}
}

func TestCheckMCP_NonDigit(t *testing.T) {
	result, err := newService().CheckMCP(ctx(), CheckArgs{Code: "0360002914a2", Length: 12})
	if err != nil {
		t.Fatalf("CheckMCP failed: %v", err)
	}

	if result.Valid {
		t.Error("Expected Valid=false for a non-digit code")
	}
	if !strings.Contains(result.Reason, "position 10") {
		t.Errorf("Reason = %q, want offending position", result.Reason)
	}
}

func TestCheckMCP_EmptyCode(t *testing.T) {
	result, err := newService().CheckMCP(ctx(), CheckArgs{Code: "", Length: 8})
	if err != nil {
		t.Fatalf("CheckMCP should report empty codes as invalid, got error: %v", err)
	}
	if result.Valid {
		t.Error("Expected Valid=false for empty code")
	}
}

func TestCheckMCP_UnsupportedLength(t *testing.T) {
	_, err := newService().CheckMCP(ctx(), CheckArgs{Code: "1234567890", Length: 10})
	if err == nil {
		t.Error("Expected error for unsupported length")
	}
}

// =============================================================================
// FixMCP Tests
// =============================================================================

func TestFixMCP_RestoresLeadingZero(t *testing.T) {
	result, err := newService().FixMCP(ctx(), FixArgs{Code: "87248795257", Length: 12})
	if err != nil {
		t.Fatalf("FixMCP failed: %v", err)
	}

	if !result.Fixed {
		t.Fatalf("Expected Fixed=true, got error kind %q", result.Error)
	}
	if result.Code != "087248795257" {
		t.Errorf("Code = %q, want %q", result.Code, "087248795257")
	}
	if !result.Changed {
		t.Error("Expected Changed=true after padding")
	}
	if result.Input != "87248795257" {
		t.Errorf("Input = %q, want original code", result.Input)
	}
}

func TestFixMCP_AlreadyNormalized(t *testing.T) {
	result, err := newService().FixMCP(ctx(), FixArgs{Code: "49137712", Length: 8})
	if err != nil {
		t.Fatalf("FixMCP failed: %v", err)
	}

	if !result.Fixed {
		t.Fatal("Expected Fixed=true")
	}
	if result.Changed {
		t.Error("Expected Changed=false for an already normalized code")
	}
}

func TestFixMCP_TrimsWhitespace(t *testing.T) {
	result, err := newService().FixMCP(ctx(), FixArgs{Code: " 1498279802125\n", Length: 13})
	if err != nil {
		t.Fatalf("FixMCP failed: %v", err)
	}

	if result.Code != "1498279802125" {
		t.Errorf("Code = %q, want trimmed code", result.Code)
	}
	if !result.Changed {
		t.Error("Expected Changed=true after trimming")
	}
}

func TestFixMCP_Failures(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		length int
		kind   string
	}{
		{"too long", "0036000291452", 12, "too_long"},
		{"bad character", "03600x291452", 12, "bad_character"},
		{"bad checksum", "123456789013", 12, "bad_checksum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newService().FixMCP(ctx(), FixArgs{Code: tt.code, Length: tt.length})
			if err != nil {
				t.Fatalf("FixMCP failed: %v", err)
			}
			if result.Fixed {
				t.Fatalf("Expected Fixed=false, got code %q", result.Code)
			}
			if result.Error != tt.kind {
				t.Errorf("Error = %q, want %q", result.Error, tt.kind)
			}
			if result.Detail == "" {
				t.Error("Detail should not be empty on failure")
			}
		})
	}
}

func TestFixMCP_EmptyCode(t *testing.T) {
	_, err := newService().FixMCP(ctx(), FixArgs{Code: "", Length: 8})
	if err == nil {
		t.Error("Expected error for empty code")
	}
}

func TestFixMCP_UnsupportedLength(t *testing.T) {
	_, err := newService().FixMCP(ctx(), FixArgs{Code: "49137712", Length: 9})
	if err == nil {
		t.Error("Expected error for unsupported length")
	}
}

// =============================================================================
// CheckDigitMCP Tests
// =============================================================================

func TestCheckDigitMCP_Success(t *testing.T) {
	result, err := newService().CheckDigitMCP(ctx(), CheckDigitArgs{Payload: "03600029145"})
	if err != nil {
		t.Fatalf("CheckDigitMCP failed: %v", err)
	}

	if result.CheckDigit != 2 {
		t.Errorf("CheckDigit = %d, want 2", result.CheckDigit)
	}
	if result.Code != "036000291452" {
		t.Errorf("Code = %q, want %q", result.Code, "036000291452")
	}
	if result.Payload != "03600029145" {
		t.Errorf("Payload = %q, want input payload", result.Payload)
	}
}

func TestCheckDigitMCP_PadsToLength(t *testing.T) {
	result, err := newService().CheckDigitMCP(ctx(), CheckDigitArgs{Payload: "1", Length: 8})
	if err != nil {
		t.Fatalf("CheckDigitMCP failed: %v", err)
	}

	if result.Payload != "0000001" {
		t.Errorf("Payload = %q, want %q", result.Payload, "0000001")
	}
	if result.CheckDigit != 7 {
		t.Errorf("CheckDigit = %d, want 7", result.CheckDigit)
	}
	if result.Code != "00000017" {
		t.Errorf("Code = %q, want %q", result.Code, "00000017")
	}
}

func TestCheckDigitMCP_TrimsPayload(t *testing.T) {
	result, err := newService().CheckDigitMCP(ctx(), CheckDigitArgs{Payload: " 4913771 "})
	if err != nil {
		t.Fatalf("CheckDigitMCP failed: %v", err)
	}

	if result.Code != "49137712" {
		t.Errorf("Code = %q, want %q", result.Code, "49137712")
	}
}

func TestCheckDigitMCP_AllZeroPayload(t *testing.T) {
	result, err := newService().CheckDigitMCP(ctx(), CheckDigitArgs{Payload: "0000000"})
	if err != nil {
		t.Fatalf("CheckDigitMCP failed: %v", err)
	}

	if result.CheckDigit != 0 {
		t.Errorf("CheckDigit = %d, want 0", result.CheckDigit)
	}
	if result.Code != "00000000" {
		t.Errorf("Code = %q, want %q", result.Code, "00000000")
	}
}

func TestCheckDigitMCP_Errors(t *testing.T) {
	tests := []struct {
		name string
		args CheckDigitArgs
	}{
		{"empty payload", CheckDigitArgs{Payload: ""}},
		{"whitespace payload", CheckDigitArgs{Payload: "   "}},
		{"non-digit payload", CheckDigitArgs{Payload: "123x567"}},
		{"unsupported length", CheckDigitArgs{Payload: "12345678", Length: 9}},
		{"payload too long for length", CheckDigitArgs{Payload: "123456789", Length: 8}},
		{"payload beyond fourteen digits", CheckDigitArgs{Payload: "12345678901234"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := newService().CheckDigitMCP(ctx(), tt.args); err == nil {
				t.Errorf("Expected error for %+v", tt.args)
			}
		})
	}
}

// =============================================================================
// DetectMCP Tests
// =============================================================================

func TestDetectMCP_ShortCodeEmbedsUpward(t *testing.T) {
	result, err := newService().DetectMCP(ctx(), DetectArgs{Code: "49137712"})
	if err != nil {
		t.Fatalf("DetectMCP failed: %v", err)
	}

	if result.Count != 4 {
		t.Fatalf("Count = %d, want 4 (zero-padding preserves the check digit)", result.Count)
	}

	wantLengths := []int{8, 12, 13, 14}
	for i, match := range result.Matches {
		if match.Length != wantLengths[i] {
			t.Errorf("Matches[%d].Length = %d, want %d", i, match.Length, wantLengths[i])
		}
	}

	if !result.Matches[0].Exact {
		t.Error("Expected exact match at length 8")
	}
	if result.Matches[0].Code != "49137712" {
		t.Errorf("Matches[0].Code = %q, want input unchanged", result.Matches[0].Code)
	}
	if result.Matches[1].Exact {
		t.Error("Length 12 match should not be exact")
	}
	if result.Matches[1].Code != "000049137712" {
		t.Errorf("Matches[1].Code = %q, want %q", result.Matches[1].Code, "000049137712")
	}
}

func TestDetectMCP_TwelveDigitCode(t *testing.T) {
	result, err := newService().DetectMCP(ctx(), DetectArgs{Code: "999999999993"})
	if err != nil {
		t.Fatalf("DetectMCP failed: %v", err)
	}

	if result.Count != 3 {
		t.Fatalf("Count = %d, want 3", result.Count)
	}
	if result.Matches[0].Length != 12 || !result.Matches[0].Exact {
		t.Errorf("Matches[0] = %+v, want exact length 12", result.Matches[0])
	}
}

func TestDetectMCP_NoMatches(t *testing.T) {
	result, err := newService().DetectMCP(ctx(), DetectArgs{Code: "12345"})
	if err != nil {
		t.Fatalf("DetectMCP failed: %v", err)
	}

	if result.Count != 0 {
		t.Errorf("Count = %d, want 0", result.Count)
	}
	if result.Matches == nil {
		t.Error("Matches should be an empty slice, not nil")
	}
}

func TestDetectMCP_WhitespaceNeverExact(t *testing.T) {
	result, err := newService().DetectMCP(ctx(), DetectArgs{Code: "123456789012 "})
	if err != nil {
		t.Fatalf("DetectMCP failed: %v", err)
	}

	if result.Count == 0 {
		t.Fatal("Expected matches after trimming")
	}
	for _, match := range result.Matches {
		if match.Exact {
			t.Errorf("Match at length %d should not be exact for untrimmed input", match.Length)
		}
	}
}

func TestDetectMCP_EmptyCode(t *testing.T) {
	_, err := newService().DetectMCP(ctx(), DetectArgs{Code: ""})
	if err == nil {
		t.Error("Expected error for empty code")
	}
}

// =============================================================================
// BatchCheckMCP Tests
// =============================================================================

func TestBatchCheckMCP_CheckMode(t *testing.T) {
	args := BatchCheckArgs{
		Codes:  []string{"036000291452", "123456789013", "000000000000"},
		Length: 12,
	}

	result, err := newService().BatchCheckMCP(ctx(), args)
	if err != nil {
		t.Fatalf("BatchCheckMCP failed: %v", err)
	}

	if result.Total != 3 || result.Valid != 2 || result.Invalid != 1 {
		t.Errorf("counts = %d/%d/%d, want 3/2/1", result.Total, result.Valid, result.Invalid)
	}
	if len(result.Results) != 3 {
		t.Fatalf("Results count = %d, want 3", len(result.Results))
	}
	if result.Results[1].Valid {
		t.Error("Results[1] should be invalid")
	}
	if result.Results[1].Fixed != "" || result.Results[1].Error != "" {
		t.Error("check mode should not set Fixed or Error")
	}
}

func TestBatchCheckMCP_FixMode(t *testing.T) {
	args := BatchCheckArgs{
		Codes:  []string{"87248795257", "foo", "0036000291452"},
		Length: 12,
		Fix:    true,
	}

	result, err := newService().BatchCheckMCP(ctx(), args)
	if err != nil {
		t.Fatalf("BatchCheckMCP failed: %v", err)
	}

	if result.Valid != 1 || result.Invalid != 2 {
		t.Errorf("counts = %d/%d, want 1/2", result.Valid, result.Invalid)
	}
	if result.Results[0].Fixed != "087248795257" {
		t.Errorf("Results[0].Fixed = %q, want %q", result.Results[0].Fixed, "087248795257")
	}
	if result.Results[1].Error != "bad_character" {
		t.Errorf("Results[1].Error = %q, want %q", result.Results[1].Error, "bad_character")
	}
	if result.Results[2].Error != "too_long" {
		t.Errorf("Results[2].Error = %q, want %q", result.Results[2].Error, "too_long")
	}
}

func TestBatchCheckMCP_EmptyBatch(t *testing.T) {
	_, err := newService().BatchCheckMCP(ctx(), BatchCheckArgs{Codes: nil, Length: 12})
	if err == nil {
		t.Error("Expected error for empty batch")
	}
}

func TestBatchCheckMCP_OverLimit(t *testing.T) {
	svc := NewService(Config{BatchLimit: 2})

	_, err := svc.BatchCheckMCP(ctx(), BatchCheckArgs{
		Codes:  []string{"1", "2", "3"},
		Length: 12,
	})
	if err == nil {
		t.Error("Expected error for batch over the limit")
	}
}

func TestBatchCheckMCP_UnsupportedLength(t *testing.T) {
	_, err := newService().BatchCheckMCP(ctx(), BatchCheckArgs{Codes: []string{"123"}, Length: 11})
	if err == nil {
		t.Error("Expected error for unsupported length")
	}
}
