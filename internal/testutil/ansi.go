// Package testutil holds helpers shared by tests across packages.
package testutil

import "regexp"

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripAnsiCodes removes CSI escape sequences so coloured output can be
// compared against plain strings.
func StripAnsiCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
