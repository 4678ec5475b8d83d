package tools

// AllTools contains all tool specifications for the GTIN MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
//
// Every tool is a pure computation over its arguments, so all of them are
// read-only, idempotent, and closed-world.
var AllTools = []ToolSpec{
	// ==========================================================================
	// VALIDATION TOOLS
	// ==========================================================================
	{
		Name:     "gtin_check",
		Method:   "Check",
		Title:    "Check GTIN",
		Category: "validate",
		Description: `Validate ONE code against a specific GTIN length (8, 12, 13 or 14).

USE WHEN: User asks "is this barcode valid", "check this EAN/UPC", "does the check digit of X match", and the expected length is known.

NOT FOR: Repairing codes that lost leading zeros or picked up whitespace (use gtin_fix). Not for codes of unknown length (use gtin_detect). Not for lists of codes (use gtin_batch_check).

PARAMETERS:
- code: The code to validate, digits only (required)
- length: Target GTIN length, one of 8, 12, 13, 14 (required)

RETURNS: A validity verdict, with the reason when the code is invalid.`,
		ReadOnly:   true,
		Idempotent: true,
	},
	{
		Name:     "gtin_batch_check",
		Method:   "BatchCheck",
		Title:    "Batch Check GTINs",
		Category: "validate",
		Description: `Validate MANY codes at once against a single GTIN length.

USE WHEN: User says "check all these barcodes", "validate this list of UPCs", "which of these codes are bad", or pastes a column of codes.

NOT FOR: A single code (use gtin_check or gtin_fix). Not for mixed lengths in one call.

PARAMETERS:
- codes: The codes to validate (required, limit 100 per call)
- length: Target GTIN length, one of 8, 12, 13, 14 (required)
- fix: Also normalize each code, restoring lost leading zeros (default false)

RETURNS: A per-code verdict plus aggregate valid/invalid counts.`,
		ReadOnly:   true,
		Idempotent: true,
	},

	// ==========================================================================
	// NORMALIZATION TOOLS
	// ==========================================================================
	{
		Name:     "gtin_fix",
		Method:   "Fix",
		Title:    "Fix GTIN",
		Category: "normalize",
		Description: `Normalize a code into a valid GTIN: trims surrounding whitespace and restores leading zeros stripped by spreadsheet number formatting.

USE WHEN: User says "fix this UPC", "Excel ate the leading zero", "clean up this barcode", or a code is shorter than expected.

NOT FOR: Plain validation of an already well-formed code (use gtin_check). The check digit is never rewritten, so codes with a wrong check digit still fail.

PARAMETERS:
- code: The code to normalize (required)
- length: Target GTIN length, one of 8, 12, 13, 14 (required)

RETURNS: The normalized code, or the failure kind (too_long, bad_character, bad_checksum) with details.`,
		ReadOnly:   true,
		Idempotent: true,
	},

	// ==========================================================================
	// COMPUTATION TOOLS
	// ==========================================================================
	{
		Name:     "gtin_check_digit",
		Method:   "CheckDigit",
		Title:    "Compute Check Digit",
		Category: "compute",
		Description: `Compute the check digit for a payload (a code WITHOUT its final digit).

USE WHEN: User asks "what is the check digit for X", "complete this barcode", "generate the last digit of this EAN".

NOT FOR: Validating a complete code that already ends in a check digit (use gtin_check). Not for repairing complete codes (use gtin_fix).

PARAMETERS:
- payload: The code digits without the final check digit (required)
- length: Target GTIN length; pads the payload with leading zeros to length-1 digits (optional)

RETURNS: The computed check digit and the completed code.`,
		ReadOnly:   true,
		Idempotent: true,
	},

	// ==========================================================================
	// IDENTIFICATION TOOLS
	// ==========================================================================
	{
		Name:     "gtin_detect",
		Method:   "Detect",
		Title:    "Detect GTIN Length",
		Category: "identify",
		Description: `Identify which GTIN lengths (8, 12, 13, 14) accept a code.

USE WHEN: User asks "what kind of barcode is this", "is this an EAN or a UPC", "which format is this code", or the target length is unknown.

NOT FOR: Validation against a known length (use gtin_check, which gives a precise failure reason).

PARAMETERS:
- code: The code to identify (required)

RETURNS: Every matching length with the normalized code at that length, flagging exact matches.`,
		ReadOnly:   true,
		Idempotent: true,
	},
}
