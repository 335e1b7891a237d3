package abcors

import (
	"fmt"
	"math"
	"strings"
)

// Calendar defines the length of days and years used to print durations.
type Calendar struct {
	HoursPerDay int
	DaysPerYear int
}

var (
	// KerbinCalendar has six hour days and 426 day years.
	KerbinCalendar = Calendar{HoursPerDay: 6, DaysPerYear: 426}
	// EarthCalendar has 24 hour days and 365 day years.
	EarthCalendar = Calendar{HoursPerDay: 24, DaysPerYear: 365}
)

// PrintTime prints a duration in seconds as years, days, hours, minutes and seconds, keeping at
// most units non-zero values starting from the largest one. Negative durations are prefixed
// with "- " and, if explicitPositive is set, positive ones with "+ ".
func PrintTime(seconds float64, units int, explicitPositive bool, cal Calendar) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "NaN"
	}
	s := int64(seconds) // truncated toward zero
	if s == 0 {
		return "0s"
	}
	if units < 1 {
		units = 1
	}
	prefix := ""
	if s < 0 {
		prefix = "- "
		s = -s
	} else if explicitPositive {
		prefix = "+ "
	}

	minute := int64(60)
	hour := 60 * minute
	day := int64(cal.HoursPerDay) * hour
	year := int64(cal.DaysPerYear) * day
	values := []struct {
		n      int64
		suffix string
	}{
		{s / year, "y"},
		{s % year / day, "d"},
		{s % day / hour, "h"},
		{s % hour / minute, "m"},
		{s % minute, "s"},
	}

	parts := make([]string, 0, len(values))
	for _, v := range values {
		if len(parts) >= units {
			break
		}
		if v.n == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d%s", v.n, v.suffix))
	}
	return prefix + strings.Join(parts, ", ")
}
