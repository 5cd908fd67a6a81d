package settings

import (
	"strings"
	"unicode"
)

// DeriveInitials takes the first letter of each whitespace-separated token,
// uppercased, truncated to 2 characters. One rune per token, so no token can
// consume both slots. One rule for every caller.
func DeriveInitials(name string) string {
	var initials []rune
	for _, part := range strings.Fields(name) {
		initials = append(initials, unicode.ToUpper([]rune(part)[0]))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}
