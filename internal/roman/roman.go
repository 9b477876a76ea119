// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package roman converts licence levels between roman numerals and integers.
// Decoding is total: malformed input degrades to 0 instead of failing.
package roman

import (
	"strconv"
	"strings"
)

var values = map[rune]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// Decode converts a level string to an integer. Decimal strings ("0", "7")
// decode as integers. Roman numerals are scanned right to left with
// subtractive notation; characters that are not numerals, such as a
// trailing "+", are skipped. The boolean is false when the input held no
// usable digits and the result degraded to 0.
func Decode(level string) (int, bool) {
	s := strings.TrimSpace(level)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, false
		}
		return n, true
	}

	total, maxSeen, digits := 0, 0, 0
	runes := []rune(strings.ToUpper(s))
	for i := len(runes) - 1; i >= 0; i-- {
		v, ok := values[runes[i]]
		if !ok {
			continue
		}
		digits++
		if v < maxSeen {
			total -= v
		} else {
			total += v
			maxSeen = v
		}
	}
	if digits == 0 || total <= 0 {
		return 0, false
	}
	return total, true
}

// LevelToInt converts a level of any extracted shape to an integer.
// Integers are returned unchanged; strings go through Decode.
func LevelToInt(level any) int {
	switch v := level.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, _ := Decode(v)
		return n
	case interface{ String() string }:
		n, _ := Decode(v.String())
		return n
	default:
		return 0
	}
}

var numerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Encode returns the roman numeral for n. Values below 1 encode as "0".
func Encode(n int) string {
	if n < 1 {
		return "0"
	}
	var b strings.Builder
	for _, num := range numerals {
		for n >= num.value {
			b.WriteString(num.symbol)
			n -= num.value
		}
	}
	return b.String()
}
