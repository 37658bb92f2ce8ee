package ui

import (
	"strings"

	"github.com/matzehuels/cheatsheet/pkg/errors"
)

// Variant selects one of the fixed button style bundles.
type Variant int

const (
	// Primary is the default variant.
	Primary Variant = iota
	Secondary
	Outline
)

var variantNames = [...]string{
	Primary:   "primary",
	Secondary: "secondary",
	Outline:   "outline",
}

// Variants lists every variant in declaration order.
func Variants() []Variant {
	return []Variant{Primary, Secondary, Outline}
}

// String returns the lowercase variant name. Out-of-range values report
// "primary", matching how they are styled.
func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return variantNames[Primary]
	}
	return variantNames[v]
}

// ParseVariant parses a variant name case-insensitively. The empty string
// selects Primary.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Primary, nil
	}
	for i, n := range variantNames {
		if n == name {
			return Variant(i), nil
		}
	}
	return Primary, errors.New(errors.ErrCodeInvalidVariant,
		"invalid variant: %s (must be 'primary', 'secondary', or 'outline')", s)
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so variants can be
// written by name in TOML and YAML content files.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
