package util

import "strings"

// Enquote wraps a string in double quotes, doubling any quotes it contains
// (CSV-style escaping).
func Enquote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func TruncateAt(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	} else {
		return string(append(r[:length-3], []rune("...")...))
	}
}
