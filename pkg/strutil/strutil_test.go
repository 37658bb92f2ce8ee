package strutil

import (
	"strings"
	"testing"
	"unicode"
)

func TestFormatName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "john doe", "John Doe"},
		{"uppercase", "JANE SMITH", "Jane Smith"},
		{"mixed", "mARY-jane o'NEIL", "Mary-jane O'neil"},
		{"single word", "ada", "Ada"},
		{"extra whitespace", "  grace \t  hopper\n", "Grace Hopper"},
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"digits", "route 66", "Route 66"},
		{"unicode", "élodie ÉCLAIR", "Élodie Éclair"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatName(tt.input); got != tt.want {
				t.Errorf("FormatName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// formatInputs is shared by the property tests below.
var formatInputs = []string{
	"", " ", "john doe", "JANE SMITH", "a", "aB cD eF", "  leading", "trailing  ",
	"many   spaces   here", "tab\tseparated\twords", "HelloWorld", "hello_world",
	"x y z", "ALLCAPS", "already Title Case", "snake_case_words", "kebab-case-words",
	"v2Api endpoint", "123 go", "camelCaseInput", "__init__", "--flag-name",
}

func TestFormatNameProperties(t *testing.T) {
	for _, in := range formatInputs {
		got := FormatName(in)

		if again := FormatName(got); again != got {
			t.Errorf("FormatName not idempotent for %q: %q then %q", in, got, again)
		}
		if strings.Contains(got, "  ") || strings.TrimSpace(got) != got {
			t.Errorf("FormatName(%q) = %q has irregular spacing", in, got)
		}
		for _, word := range strings.Fields(got) {
			runes := []rune(word)
			if unicode.IsLetter(runes[0]) && !unicode.IsUpper(runes[0]) {
				t.Errorf("FormatName(%q): word %q does not start uppercase", in, word)
			}
			for _, r := range runes[1:] {
				if unicode.IsUpper(r) {
					t.Errorf("FormatName(%q): word %q has uppercase after first letter", in, word)
				}
			}
		}
	}
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"pascal", "HelloWorld", "hello-world"},
		{"camel", "helloWorld", "hello-world"},
		{"spaces", "hello world", "hello-world"},
		{"underscore", "hello_world", "hello-world"},
		{"already kebab", "hello-world", "hello-world"},
		{"mixed separators", "Hello _ World-Wide  Web", "hello-world-wide-web"},
		{"leading and trailing", "  __Hello__  ", "hello"},
		{"repeated separators", "a__b--c  d", "a-b-c-d"},
		{"digit boundary", "v2Api", "v2-api"},
		{"acronym", "JSONParser", "jsonparser"},
		{"title", "JavaScript Patterns", "java-script-patterns"},
		{"empty", "", ""},
		{"only separators", "_- _", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToKebabCase(tt.input); got != tt.want {
				t.Errorf("ToKebabCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToKebabCaseProperties(t *testing.T) {
	for _, in := range formatInputs {
		got := ToKebabCase(in)

		if strings.ContainsAny(got, " _\t\n") {
			t.Errorf("ToKebabCase(%q) = %q contains a separator", in, got)
		}
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			t.Errorf("ToKebabCase(%q) = %q has leading/trailing hyphen", in, got)
		}
		if strings.Contains(got, "--") {
			t.Errorf("ToKebabCase(%q) = %q has repeated hyphens", in, got)
		}
		if strings.ToLower(got) != got {
			t.Errorf("ToKebabCase(%q) = %q contains uppercase", in, got)
		}
		if got != "" && !IsKebabCase(got) {
			t.Errorf("IsKebabCase(ToKebabCase(%q)) = false for %q", in, got)
		}
		if again := ToKebabCase(got); again != got {
			t.Errorf("ToKebabCase not idempotent for %q: %q then %q", in, got, again)
		}
	}
}

func TestIsKebabCase(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"react", true},
		{"js-patterns", true},
		{"a1-b2", true},
		{"", false},
		{"-react", false},
		{"react-", false},
		{"js--patterns", false},
		{"JS-patterns", false},
		{"js_patterns", false},
		{"js patterns", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsKebabCase(tt.input); got != tt.want {
				t.Errorf("IsKebabCase(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
