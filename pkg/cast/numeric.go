package cast

import (
	"math"
	"strconv"
	"strings"
)

// leadingInt parses the longest base-10 integer prefix of s after leading
// whitespace. Text without a numeric prefix yields 0; values outside the
// int64 range saturate.
func leadingInt(s string) int64 {
	s = strings.TrimLeft(s, " \t\r\n")
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
		if s[0] == '-' {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return n
}

// leadingFloat parses the longest decimal floating point prefix of s after
// leading whitespace, accepting an optional fraction and exponent. Text
// without a numeric prefix yields 0.
func leadingFloat(s string) float64 {
	s = strings.TrimLeft(s, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	mantissa := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		mantissa++
	}
	if end < len(s) && s[end] == '.' {
		frac := end + 1
		for frac < len(s) && isDigit(s[frac]) {
			frac++
		}
		if frac > end+1 || mantissa > 0 {
			mantissa += frac - end - 1
			end = frac
		}
	}
	if mantissa == 0 {
		return 0
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		start := exp
		for exp < len(s) && isDigit(s[exp]) {
			exp++
		}
		if exp > start {
			end = exp
		}
	}
	// out of range values come back as ±Inf together with ErrRange
	f, _ := strconv.ParseFloat(s[:end], 64)
	return f
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
