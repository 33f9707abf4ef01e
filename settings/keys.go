package settings

import "strings"

const delimiter = "."

// Key joins parts into one dotted key, skipping empty parts.
func Key(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, delimiter)
}
