package listview

import "strings"

// Contains is the case-insensitive substring match every free-text and
// date-substring filter in the app uses.
func Contains(value, term string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(strings.TrimSpace(term)))
}
