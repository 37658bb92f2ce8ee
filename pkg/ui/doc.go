// Package ui provides the two presentational primitives every cheat sheet
// page is composed from: [Button] and [Card].
//
// # Variants
//
// Buttons are styled by a closed [Variant] enum. [ResolveStyle] maps each
// variant to exactly one [StyleBundle]; the zero value is [Primary], so an
// unset variant renders as a primary button:
//
//	ui.ResolveStyle(ui.Outline).HasBorder() // true
//	ui.ResolveStyle(0) == ui.ResolveStyle(ui.Primary)
//
// # Cards
//
// A [Card] always renders its body. The header region is present only when
// a title is set, the footer region only when footer content is set.
//
// Both components render to html/template.HTML so they can be embedded in
// page templates without double escaping. Labels and titles are escaped;
// Body and Footer are trusted markup supplied by the caller.
package ui
