// ABOUTME: Text utilities for shaping summaries to display length
// ABOUTME: Rune-aware truncation that never splits multibyte characters

package text

// TruncationMarker is appended to text that was cut at the length cap.
const TruncationMarker = "..."

// Truncate caps s at max runes. When the text is cut, the marker is
// appended so the result is still at most max runes long. Inputs at or
// under the cap are returned unchanged.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	markerLen := len([]rune(TruncationMarker))
	if max <= markerLen {
		return string(runes[:max])
	}

	return string(runes[:max-markerLen]) + TruncationMarker
}
