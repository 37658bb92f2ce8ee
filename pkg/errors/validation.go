package errors

import (
	"strings"
	"unicode"
)

// ValidateSlug validates a section slug or example ID.
// Slugs become URL path segments and output directory names, so they must be
// non-empty lowercase kebab-case: [a-z0-9] runs separated by single hyphens.
func ValidateSlug(slug string) error {
	if slug == "" {
		return New(ErrCodeInvalidContent, "slug cannot be empty")
	}

	const maxSlugLength = 128
	if len(slug) > maxSlugLength {
		return New(ErrCodeInvalidContent, "slug too long (max %d characters)", maxSlugLength)
	}

	if slug[0] == '-' || slug[len(slug)-1] == '-' {
		return New(ErrCodeInvalidContent, "slug cannot start or end with a hyphen: %q", slug)
	}
	if strings.Contains(slug, "--") {
		return New(ErrCodeInvalidContent, "slug cannot contain repeated hyphens: %q", slug)
	}

	for _, r := range slug {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '-' {
			return New(ErrCodeInvalidContent, "slug contains invalid character %q: %q", r, slug)
		}
	}

	return nil
}

// ValidatePath validates a relative output path for safety.
// It prevents path traversal when writing a build to disk.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
