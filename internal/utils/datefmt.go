package utils

import (
	"strconv"
	"strings"
	"time"
)

// ToTwoDigits renders n with a leading zero when it is a single digit.
func ToTwoDigits(n int) string {
	if n > 9 {
		return strconv.Itoa(n)
	}
	return "0" + strconv.Itoa(n)
}

// FormatDate renders t as day/month/year joined by sep, e.g. "20/06/2024".
// The window filters operate on this representation, so it must stay
// DD sep MM sep YYYY.
func FormatDate(t time.Time, sep string) string {
	parts := []string{
		ToTwoDigits(t.Day()),
		ToTwoDigits(int(t.Month())),
		ToTwoDigits(t.Year()),
	}
	return strings.Join(parts, sep)
}

// FormatClock renders the time of day joined by sep, e.g. "14:05:09".
func FormatClock(t time.Time, sep string) string {
	parts := []string{
		ToTwoDigits(t.Hour()),
		ToTwoDigits(t.Minute()),
		ToTwoDigits(t.Second()),
	}
	return strings.Join(parts, sep)
}
