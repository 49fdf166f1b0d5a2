package platform

import (
	"math"
	"strconv"
	"strings"
)

// ScanProgress returns the last percentage reported in a chunk of tool output.
// yt-dlp redraws its progress line with carriage returns, so both \r and \n
// separate lines. A token counts only when it ends in '%' and its prefix is a
// finite non-negative number; the value is truncated toward zero.
func ScanProgress(chunk string) (int, bool) {
	percent, found := 0, false

	lines := strings.FieldsFunc(chunk, func(r rune) bool { return r == '\n' || r == '\r' })
	for _, line := range lines {
		if !strings.Contains(line, "%") {
			continue
		}
		for _, token := range strings.Fields(line) {
			if p, ok := parsePercentToken(token); ok {
				percent, found = p, true
			}
		}
	}

	return percent, found
}

func parsePercentToken(token string) (int, bool) {
	num, ok := strings.CutSuffix(token, "%")
	if !ok || num == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	if v > float64(math.MaxInt32) {
		return math.MaxInt32, true
	}
	return int(v), true
}
