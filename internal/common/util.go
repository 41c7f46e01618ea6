package common

// TruncateRunes shortens s to at most max runes. Multi-byte characters are
// never split in half, so the result is always valid UTF-8.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
