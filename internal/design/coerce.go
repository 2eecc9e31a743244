package design

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseCoordinate reads a coordinate typed into a position field. It takes an
// optional sign and the leading run of digits, ignoring whatever follows
// ("12px" is 12, "3.9" is 3). Input without leading digits yields 0.
func ParseCoordinate(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// Out of range: clamp rather than fail.
		if strings.HasPrefix(s, "-") {
			return math.MinInt32
		}
		return math.MaxInt32
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	if n < math.MinInt32 {
		return math.MinInt32
	}
	return int(n)
}
