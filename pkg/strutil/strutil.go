package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatName lower-cases every whitespace-separated word of s, upper-cases
// its first letter and joins the words with a single space.
// Leading, trailing and repeated whitespace is dropped; an empty or blank
// input yields "". FormatName is idempotent.
func FormatName(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}

// ToKebabCase converts s to lowercase words joined by single hyphens.
//
// Word boundaries are spaces, underscores, existing hyphens and any other
// whitespace, plus a lower-to-upper case change ("helloWorld") or a digit
// followed by an uppercase letter ("v2Api"). The result never starts or ends
// with a hyphen and never contains two hyphens in a row.
func ToKebabCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	var prev rune
	pendingSep := false
	for _, r := range s {
		if isSeparator(r) {
			pendingSep = b.Len() > 0
			prev = r
			continue
		}
		if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			pendingSep = b.Len() > 0
		}
		if pendingSep {
			b.WriteByte('-')
			pendingSep = false
		}
		b.WriteRune(unicode.ToLower(r))
		prev = r
	}
	return b.String()
}

func isSeparator(r rune) bool {
	return r == '-' || r == '_' || unicode.IsSpace(r)
}

// IsKebabCase reports whether s is already in the form ToKebabCase produces
// for ASCII input: non-empty runs of [a-z0-9] separated by single hyphens.
func IsKebabCase(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	prevHyphen := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '-':
			if prevHyphen {
				return false
			}
			prevHyphen = true
		case (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9'):
			prevHyphen = false
		default:
			return false
		}
	}
	return true
}
