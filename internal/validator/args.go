package validator

// CheckArgs contains parameters for validating a single code
type CheckArgs struct {
	Code   string `json:"code" jsonschema:"required" jsonschema_description:"The code to validate, digits only"`
	Length int    `json:"length" jsonschema:"required" jsonschema_description:"Target GTIN length: 8, 12, 13 or 14"`
}

// CheckResult is the result of validating a single code
type CheckResult struct {
	Code   string `json:"code"`
	Length int    `json:"length"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"` // why the code is invalid
}

// FixArgs contains parameters for normalizing a code
type FixArgs struct {
	Code   string `json:"code" jsonschema:"required" jsonschema_description:"The code to normalize, may carry whitespace or lost leading zeros"`
	Length int    `json:"length" jsonschema:"required" jsonschema_description:"Target GTIN length: 8, 12, 13 or 14"`
}

// FixResult is the result of normalizing a code
type FixResult struct {
	Input   string `json:"input"`
	Length  int    `json:"length"`
	Fixed   bool   `json:"fixed"`
	Code    string `json:"code,omitempty"`    // normalized code (when fixed)
	Changed bool   `json:"changed,omitempty"` // normalized code differs from input
	Error   string `json:"error,omitempty"`   // failure kind: too_long, bad_character, bad_checksum
	Detail  string `json:"detail,omitempty"`  // human-readable failure description
}

// CheckDigitArgs contains parameters for computing a check digit
type CheckDigitArgs struct {
	Payload string `json:"payload" jsonschema:"required" jsonschema_description:"The code digits without the final check digit"`
	Length  int    `json:"length,omitempty" jsonschema_description:"Optional target GTIN length; pads the payload with leading zeros"`
}

// CheckDigitResult is the result of computing a check digit
type CheckDigitResult struct {
	Payload    string `json:"payload"` // payload actually used, after trimming and padding
	CheckDigit int    `json:"check_digit"`
	Code       string `json:"code"` // payload with the check digit appended
}

// DetectArgs contains parameters for detecting which GTIN lengths accept a code
type DetectArgs struct {
	Code string `json:"code" jsonschema:"required" jsonschema_description:"The code to identify"`
}

// DetectMatch is one GTIN length that accepts the code
type DetectMatch struct {
	Length int    `json:"length"`
	Code   string `json:"code"`  // normalized form at this length
	Exact  bool   `json:"exact"` // code is valid at this length without normalization
}

// DetectResult is the result of detecting GTIN lengths
type DetectResult struct {
	Input   string        `json:"input"`
	Matches []DetectMatch `json:"matches"`
	Count   int           `json:"count"`
}

// BatchCheckArgs contains parameters for validating a batch of codes
type BatchCheckArgs struct {
	Codes  []string `json:"codes" jsonschema:"required" jsonschema_description:"The codes to validate"`
	Length int      `json:"length" jsonschema:"required" jsonschema_description:"Target GTIN length: 8, 12, 13 or 14"`
	Fix    bool     `json:"fix,omitempty" jsonschema_description:"Normalize each code instead of validating as-is (default: false)"`
}

// BatchEntry is the outcome for one code in a batch
type BatchEntry struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
	Fixed string `json:"fixed,omitempty"` // normalized code (fix mode only)
	Error string `json:"error,omitempty"` // failure kind (fix mode only)
}

// BatchCheckResult is the result of validating a batch of codes
type BatchCheckResult struct {
	Length  int          `json:"length"`
	Total   int          `json:"total"`
	Valid   int          `json:"valid"`
	Invalid int          `json:"invalid"`
	Results []BatchEntry `json:"results"`
}
