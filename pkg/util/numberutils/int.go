package numberutils

import (
	"strconv"
	"strings"
)

// IsDigits reports whether str is non-empty and only contains ASCII digits.
func IsDigits(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ToIntWithDefault converts the given string to an integer.
// If the string cannot be converted, it returns the provided default value.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return i
	}
	return defaultVal
}

// ToPositiveIntWithDefault is ToIntWithDefault that also falls back for values below 1.
func ToPositiveIntWithDefault(s string, defaultVal int) int {
	if i := ToIntWithDefault(s, defaultVal); i > 0 {
		return i
	}
	return defaultVal
}

// ToInt64WithError converts the given string to an int64 and returns any error that occurred during conversion.
func ToInt64WithError(str string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(str), 10, 64)
}

// ClampInt returns num limited to the inclusive range [min, max].
func ClampInt(num, min, max int) int {
	if num < min {
		return min
	}
	if num > max {
		return max
	}
	return num
}

// Itoa formats num in base 10.
func Itoa(num int) string {
	return strconv.Itoa(num)
}
