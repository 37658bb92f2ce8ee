// Package clone deep-copies plain data: the nil/primitive/[]any/map[string]any
// trees produced by decoding JSON, TOML or YAML, including the
// []map[string]any that TOML uses for arrays of tables.
//
// Every container reachable from a clone is a fresh allocation, so mutating a
// clone never affects the source. Primitives are copied by value.
//
// Cyclic structures are not supported; cloning one does not terminate.
// Values outside the plain domain (pointers, funcs, structs, typed slices
// and maps) are returned unchanged rather than copied.
package clone

// Value returns a deep copy of v.
//
// Containers of type []any, map[string]any, []map[string]any (TOML arrays
// of tables) and the map[any]any some YAML decoders produce are copied
// recursively; nil containers stay nil. All other values are returned as-is.
func Value(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Map(t)
	case []any:
		return Slice(t)
	case []map[string]any:
		if t == nil {
			return t
		}
		out := make([]map[string]any, len(t))
		for i, m := range t {
			out[i] = Map(m)
		}
		return out
	case map[any]any:
		if t == nil {
			return t
		}
		out := make(map[any]any, len(t))
		for k, e := range t {
			out[k] = Value(e)
		}
		return out
	default:
		return v
	}
}

// Map returns a deep copy of m. A nil map yields nil.
func Map(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, e := range m {
		out[k] = Value(e)
	}
	return out
}

// Slice returns a deep copy of s. A nil slice yields nil.
func Slice(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, e := range s {
		out[i] = Value(e)
	}
	return out
}
