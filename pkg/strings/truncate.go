package strings

import (
	"strings"
)

// DefaultLogFieldMaxLen is the default maximum length for free-form values
// quoted in log output. Stored values and tool arguments are caller-supplied
// and can be arbitrarily long; log lines should not be.
const DefaultLogFieldMaxLen = 60

// MinTruncateLen is the smallest usable maxLen: one character plus "...".
const MinTruncateLen = 4

// TruncateOneLine collapses s onto a single line and truncates it to maxLen
// runes, appending "..." when it cuts. Newlines and runs of whitespace become
// single spaces. Operating on runes keeps multi-byte characters intact.
//
// A maxLen below MinTruncateLen is clamped so the ellipsis always fits.
func TruncateOneLine(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
