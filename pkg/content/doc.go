// Package content models the cheat sheet catalog: sections of code examples
// loaded from TOML or YAML files.
//
// Each file at the root of a content directory describes one section:
//
//	slug = "react"
//	title = "React Patterns"
//	heading = "React Patterns & Hooks"
//	order = 1
//
//	[[examples]]
//	id = "use-state"
//	title = "useState Example"
//	language = "tsx"
//	code = '''const [count, setCount] = useState(0);'''
//
// Missing slugs and example IDs are derived from titles with
// [strutil.ToKebabCase]; a missing title is derived from the slug with
// [strutil.FormatName]. [Builtin] returns the catalog compiled into the
// binary, used when no content directory is configured.
package content
