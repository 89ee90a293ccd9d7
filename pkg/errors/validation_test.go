package errors

import (
	"testing"
)

func TestParseColumns(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"single", "1", 1, false},
		{"default", "6", 6, false},
		{"max", "10", 10, false},
		{"padded", " 4 ", 4, false},

		{"zero", "0", 0, true},
		{"too many", "11", 0, true},
		{"negative", "-3", 0, true},
		{"not a number", "six", 0, true},
		{"float", "2.5", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColumns(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColumns(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidColumns) {
				t.Errorf("ParseColumns(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidColumns)
			}
			if got != tt.want {
				t.Errorf("ParseColumns(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateSeparator(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"slash", "/", false},
		{"backslash", "\\", false},
		{"colon", ":", false},

		{"empty", "", true},
		{"two chars", "//", true},
		{"space", " ", true},
		{"tab", "\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeparator(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSeparator(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
