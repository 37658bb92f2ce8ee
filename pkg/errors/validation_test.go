package errors

import (
	"strings"
	"testing"
)

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "react", false},
		{"with hyphen", "js-patterns", false},
		{"with digits", "es2015-modules", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 200), true},
		{"uppercase", "React", true},
		{"underscore", "js_patterns", true},
		{"space", "js patterns", true},
		{"leading hyphen", "-react", true},
		{"trailing hyphen", "react-", true},
		{"double hyphen", "js--patterns", true},
		{"slash", "examples/react", true},
		{"dot dot", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlug(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSlug(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidContent) {
				t.Errorf("ValidateSlug(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidContent)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"index", "index.html", false},
		{"nested", "examples/react/index.html", false},
		{"asset", "assets/style.css", false},

		{"empty", "", true},
		{"absolute", "/etc/passwd", true},
		{"traversal", "examples/../../secret", true},
		{"backslash", "examples\\react", true},
		{"null byte", "index\x00.html", true},
		{"too long", strings.Repeat("a/", 300), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://example.com", false},
		{"http", "http://localhost:8080", false},
		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"javascript", "javascript:alert(1)", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
