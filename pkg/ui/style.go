package ui

import "strings"

// baseButtonClass is shared by every button regardless of variant.
const baseButtonClass = "px-4 py-2 rounded font-medium transition-colors focus:outline-none focus:ring-2 focus:ring-offset-2"

// StyleBundle is the set of presentation attributes for one variant.
// Border is empty for variants without an outline.
type StyleBundle struct {
	Background string
	Text       string
	Hover      string
	Ring       string
	Border     string
}

// styleTable holds exactly one bundle per variant.
var styleTable = map[Variant]StyleBundle{
	Primary: {
		Background: "bg-blue-600",
		Text:       "text-white",
		Hover:      "hover:bg-blue-700",
		Ring:       "focus:ring-blue-500",
	},
	Secondary: {
		Background: "bg-gray-600",
		Text:       "text-white",
		Hover:      "hover:bg-gray-700",
		Ring:       "focus:ring-gray-500",
	},
	Outline: {
		Border: "border border-gray-300",
		Text:   "text-gray-700",
		Hover:  "hover:bg-gray-50",
		Ring:   "focus:ring-gray-500",
	},
}

// ResolveStyle returns the style bundle for v. Values outside the enum
// resolve to the Primary bundle.
func ResolveStyle(v Variant) StyleBundle {
	if b, ok := styleTable[v]; ok {
		return b
	}
	return styleTable[Primary]
}

// HasBorder reports whether the bundle draws a border.
func (b StyleBundle) HasBorder() bool {
	return b.Border != ""
}

// VariantClass returns the variant-specific classes, in a stable order.
func (b StyleBundle) VariantClass() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{b.Border, b.Background, b.Text, b.Hover, b.Ring} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Class returns the full button class list: base classes followed by the
// variant classes.
func (b StyleBundle) Class() string {
	return baseButtonClass + " " + b.VariantClass()
}
