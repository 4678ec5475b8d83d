// Package gtin defines the shared error taxonomy for GTIN validation.
//
// The per-length packages (gtin8, gtin12, gtin13, gtin14) return these errors
// from their Fix functions. Every failure is one of three kinds, each with a
// sentinel value for errors.Is matching and a detail type for errors.As:
//
//	TooLong      the trimmed input has more characters than the target length
//	BadCharacter a character is not a decimal digit after trimming and padding
//	BadChecksum  the final digit does not match the computed check digit
package gtin

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three failure kinds. Detail errors unwrap to these,
// so errors.Is(err, gtin.ErrBadChecksum) matches regardless of which length
// variant produced the error.
var (
	ErrTooLong      = errors.New("code exceeds target length")
	ErrBadCharacter = errors.New("code contains a non-digit character")
	ErrBadChecksum  = errors.New("check digit does not match")
)

// LengthError reports input that is too long for the target length even
// before padding. Code is the input after whitespace trimming.
type LengthError struct {
	Code   string // trimmed input
	Length int    // target code length
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("code %q has %d characters, at most %d allowed: %v",
		e.Code, len(e.Code), e.Length, ErrTooLong)
}

func (e *LengthError) Unwrap() error { return ErrTooLong }

// CharacterError reports the first non-digit character found. Position is the
// byte offset within the trimmed and zero-padded code.
type CharacterError struct {
	Code     string // trimmed and padded code
	Position int    // byte offset of the offending character
	Char     byte   // the offending byte
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("code %q has byte %#x at position %d: %v",
		e.Code, e.Char, e.Position, ErrBadCharacter)
}

func (e *CharacterError) Unwrap() error { return ErrBadCharacter }

// ChecksumError reports a code whose final digit disagrees with the check
// digit computed from its payload. Want and Got are digit values 0-9.
type ChecksumError struct {
	Code string // trimmed and padded code
	Want int    // check digit computed from the payload
	Got  int    // final digit actually present
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("code %q has check digit %d, expected %d: %v",
		e.Code, e.Got, e.Want, ErrBadChecksum)
}

func (e *ChecksumError) Unwrap() error { return ErrBadChecksum }

// IsTooLong returns true if the error reports input longer than the target length.
func IsTooLong(err error) bool {
	return errors.Is(err, ErrTooLong)
}

// IsBadCharacter returns true if the error reports a non-digit character.
func IsBadCharacter(err error) bool {
	return errors.Is(err, ErrBadCharacter)
}

// IsBadChecksum returns true if the error reports a check digit mismatch.
func IsBadChecksum(err error) bool {
	return errors.Is(err, ErrBadChecksum)
}
