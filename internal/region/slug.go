package region

import "strings"

// Slug converts a display name to the lower_snake_case key used in every
// export dialect: lowercased, spaces become underscores, anything outside
// [a-z0-9_] is dropped. Names are never persisted in slug form.
func Slug(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteByte('_')
		}
	}
	return b.String()
}
