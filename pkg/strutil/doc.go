// Package strutil provides the string helpers shared by the catalog, the
// site builder and the CLI.
//
// # Names
//
// [FormatName] normalizes free text to title case, one space between words:
//
//	strutil.FormatName("john doe")   // "John Doe"
//	strutil.FormatName("JANE SMITH") // "Jane Smith"
//
// # Identifiers
//
// [ToKebabCase] turns identifiers and phrases into URL-safe slugs. Camel and
// Pascal case boundaries, spaces and underscores all become single hyphens:
//
//	strutil.ToKebabCase("HelloWorld")  // "hello-world"
//	strutil.ToKebabCase("hello_world") // "hello-world"
//
// Both functions are total over all strings and never return an error.
package strutil
