package menueditor

import "strings"

// CanonicalMenuCode normalizes user input into a menu code: lowercase
// letters, digits, hyphen and underscore. Dots become underscores and runs of
// other characters collapse into a single hyphen.
func CanonicalMenuCode(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(trimmed))

	lastDash := false
	for _, r := range trimmed {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			lastDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			lastDash = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == '_' || r == '-':
			b.WriteRune(r)
			lastDash = false
		case r == '.':
			b.WriteRune('_')
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-_")
}

// CanonicalRoutePath cleans a node path: one leading slash, no empty or
// trailing segments. Absolute URLs are returned trimmed but otherwise as is.
func CanonicalRoutePath(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if strings.Contains(trimmed, "://") || strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	parts := strings.Split(trimmed, "/")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || part == "." {
			continue
		}
		out = append(out, part)
	}
	return "/" + strings.Join(out, "/")
}
