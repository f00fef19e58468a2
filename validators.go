package ux3270

import (
	"regexp"
	"strconv"
	"strings"
)

// Ready-made validators for Field.Validator. Validators see only non-blank
// values; Required handles blanks.

// VInteger accepts whole numbers, signed or not.
func VInteger(s string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil
}

// VDecimal accepts any number a Numeric field can hold.
func VDecimal(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// VRange accepts numbers within [min, max].
func VRange(min, max float64) func(string) bool {
	return func(s string) bool {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return err == nil && v >= min && v <= max
	}
}

// VMaxLen accepts values of at most n characters.
func VMaxLen(n int) func(string) bool {
	return func(s string) bool {
		return len([]rune(s)) <= n
	}
}

// VMatch accepts values matching the pattern. The pattern must compile.
func VMatch(pattern string) func(string) bool {
	re := regexp.MustCompile(pattern)
	return re.MatchString
}

// VOneOf accepts only the listed values, case-insensitively.
func VOneOf(values ...string) func(string) bool {
	return func(s string) bool {
		for _, v := range values {
			if strings.EqualFold(s, v) {
				return true
			}
		}
		return false
	}
}
