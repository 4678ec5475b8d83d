package checkdigit

import (
	"errors"
	"testing"

	"github.com/olgasafonova/gtin-mcp-server/gtin"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		payload string
		want    int
	}{
		{"", 0},
		{"0000000", 0},
		{"4913771", 2},
		{"4419631", 8},
		{"1456781", 0},
		{"00000000000", 0},
		{"12345678901", 2},
		{"12345678908", 1},
		{"99999999999", 3},
		{"03600029145", 2},
		{"000000000000", 0},
		{"123412341234", 4},
		{"149827980212", 5},
		{"924987431354", 5},
		{"0000000000000", 0},
		{"0101010101010", 4},
		{"9249874313544", 7},
	}

	for _, tt := range tests {
		if got := Compute(tt.payload); got != tt.want {
			t.Errorf("Compute(%q) = %d, want %d", tt.payload, got, tt.want)
		}
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		length int
		want   bool
	}{
		{"valid 8", "49137712", 8, true},
		{"valid 12", "036000291452", 12, true},
		{"valid 13", "9249874313545", 13, true},
		{"valid 14", "92498743135447", 14, true},
		{"all zeros", "000000000000", 12, true},
		{"wrong check digit", "036000291453", 12, false},
		{"too short", "0000000", 8, false},
		{"too long", "734289412", 8, false},
		{"length mismatch across variants", "49137712", 12, false},
		{"letter", "0360002914a2", 12, false},
		{"embedded space", "036000 91452", 12, false},
		{"leading whitespace not trimmed", " 36000291452", 12, false},
		{"empty", "", 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Check(tt.code, tt.length); got != tt.want {
				t.Errorf("Check(%q, %d) = %v, want %v", tt.code, tt.length, got, tt.want)
			}
		})
	}
}

func TestFix(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		length int
		want   string
	}{
		{"already valid", "036000291452", 12, "036000291452"},
		{"trims whitespace", "  036000291452\n", 12, "036000291452"},
		{"pads short code", "87248795257", 12, "087248795257"},
		{"pads single digit", "0", 14, "00000000000000"},
		{"pads empty to zeros", "", 8, "00000000"},
		{"pad to 8", "5766796", 8, "05766796"},
		{"pad to 13", "495205944325", 13, "0495205944325"},
		{"pad to 14", "8987561651112", 14, "08987561651112"},
		{"trim then pad", " 9944220 ", 8, "09944220"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fix(tt.code, tt.length)
			if err != nil {
				t.Fatalf("Fix(%q, %d) returned error: %v", tt.code, tt.length, err)
			}
			if got != tt.want {
				t.Errorf("Fix(%q, %d) = %q, want %q", tt.code, tt.length, got, tt.want)
			}
		})
	}
}

func TestFixErrors(t *testing.T) {
	t.Run("too long", func(t *testing.T) {
		_, err := Fix("734289412", 8)
		if !errors.Is(err, gtin.ErrTooLong) {
			t.Fatalf("Fix returned %v, want ErrTooLong", err)
		}
		var lengthErr *gtin.LengthError
		if !errors.As(err, &lengthErr) {
			t.Fatalf("error %v is not a *gtin.LengthError", err)
		}
		if lengthErr.Code != "734289412" || lengthErr.Length != 8 {
			t.Errorf("LengthError = %+v, want Code %q Length 8", lengthErr, "734289412")
		}
	})

	t.Run("whitespace trimmed before length test", func(t *testing.T) {
		if _, err := Fix("  036000291452  ", 12); err != nil {
			t.Errorf("Fix trimmed input returned error: %v", err)
		}
	})

	t.Run("non-digit after padding", func(t *testing.T) {
		_, err := Fix("12345 67890", 12)
		if !errors.Is(err, gtin.ErrBadCharacter) {
			t.Fatalf("Fix returned %v, want ErrBadCharacter", err)
		}
		var charErr *gtin.CharacterError
		if !errors.As(err, &charErr) {
			t.Fatalf("error %v is not a *gtin.CharacterError", err)
		}
		if charErr.Position != 6 || charErr.Char != ' ' {
			t.Errorf("CharacterError = %+v, want Position 6 Char ' '", charErr)
		}
		if charErr.Code != "012345 67890" {
			t.Errorf("CharacterError.Code = %q, want padded code", charErr.Code)
		}
	})

	t.Run("letter", func(t *testing.T) {
		_, err := Fix("03600029145a", 12)
		var charErr *gtin.CharacterError
		if !errors.As(err, &charErr) {
			t.Fatalf("error %v is not a *gtin.CharacterError", err)
		}
		if charErr.Position != 11 || charErr.Char != 'a' {
			t.Errorf("CharacterError = %+v, want Position 11 Char 'a'", charErr)
		}
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		_, err := Fix("123456789013", 12)
		if !errors.Is(err, gtin.ErrBadChecksum) {
			t.Fatalf("Fix returned %v, want ErrBadChecksum", err)
		}
		var sumErr *gtin.ChecksumError
		if !errors.As(err, &sumErr) {
			t.Fatalf("error %v is not a *gtin.ChecksumError", err)
		}
		if sumErr.Want != 2 || sumErr.Got != 3 {
			t.Errorf("ChecksumError = %+v, want Want 2 Got 3", sumErr)
		}
	})

	t.Run("checksum mismatch after padding", func(t *testing.T) {
		_, err := Fix("1", 12)
		var sumErr *gtin.ChecksumError
		if !errors.As(err, &sumErr) {
			t.Fatalf("error %v is not a *gtin.ChecksumError", err)
		}
		if sumErr.Code != "000000000001" {
			t.Errorf("ChecksumError.Code = %q, want %q", sumErr.Code, "000000000001")
		}
	})
}

func TestZeroPad(t *testing.T) {
	tests := []struct {
		in   string
		size int
		want string
	}{
		{"", 8, "00000000"},
		{"42", 8, "00000042"},
		{"12345678", 8, "12345678"},
		{"123456789", 8, "123456789"},
	}

	for _, tt := range tests {
		if got := zeroPad(tt.in, tt.size); got != tt.want {
			t.Errorf("zeroPad(%q, %d) = %q, want %q", tt.in, tt.size, got, tt.want)
		}
	}
}

func FuzzCompute(f *testing.F) {
	f.Add("03600029145")
	f.Add("4913771")
	f.Add("9249874313544")
	f.Add("0000000")
	f.Add("99999999999")

	f.Fuzz(func(t *testing.T, payload string) {
		if nonDigit(payload) >= 0 || len(payload) > 13 {
			t.Skip()
		}
		d := Compute(payload)
		if d < 0 || d > 9 {
			t.Fatalf("Compute(%q) = %d, outside 0-9", payload, d)
		}
		code := payload + string(rune('0'+d))
		if !Check(code, len(code)) {
			t.Errorf("appending computed digit %d to %q does not validate", d, payload)
		}
		fixed, err := Fix(code, len(code))
		if err != nil || fixed != code {
			t.Errorf("Fix(%q) = %q, %v, want identity", code, fixed, err)
		}
	})
}
