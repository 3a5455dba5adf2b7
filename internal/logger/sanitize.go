package logger

import (
	"strings"
	"unicode"
)

// Log field limits. Anything longer is clipped with a trailing ellipsis
// so one hostile value cannot flood a log line.
const (
	MaxPathLength          = 500
	MaxErrorMessageLength  = 1000
	MaxGeneralStringLength = 2000
)

// SanitizePath prepares a URL path for logging: invalid UTF-8 and
// control characters are dropped, overlong paths clipped.
func SanitizePath(path string) string {
	return clip(stripUnprintable(path), MaxPathLength)
}

// SanitizeString prepares an arbitrary string for logging, clipped to
// maxLength (MaxGeneralStringLength when maxLength is not positive).
func SanitizeString(s string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = MaxGeneralStringLength
	}
	return clip(stripUnprintable(s), maxLength)
}

// SanitizeError prepares an error message for logging
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return SanitizeString(err.Error(), MaxErrorMessageLength)
}

// stripUnprintable drops invalid UTF-8 and control characters, keeping
// printable runes plus tab, newline and carriage return.
func stripUnprintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		return -1
	}, strings.ToValidUTF8(s, ""))
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
