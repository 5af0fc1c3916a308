package patterns

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateResult is the outcome of parsing a free-form date string. A Current
// result has an empty Date: the role or course is ongoing. Confidence ranks
// how literal the match was (ISO > full date > month-year > bare year).
type DateResult struct {
	Date       string
	Current    bool
	Confidence int
	Original   string
}

var monthNumbers = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may":  5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

func isoDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func validCalendarDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// ParseDate normalizes dateString to ISO YYYY-MM-DD. It recognizes, in order
// of confidence: current/present markers, ISO dates, MM/DD/YYYY, "Jan 2020" or
// "01/2020" (day defaults to 01), and bare years between 1980 and five years
// from now (month and day default to January 1).
func ParseDate(dateString string) DateResult {
	original := strings.TrimSpace(dateString)
	if original == "" {
		return DateResult{Original: original}
	}

	if CurrentPattern.MatchString(original) {
		return DateResult{Current: true, Confidence: 95, Original: original}
	}

	if m := ISODatePattern.FindStringSubmatch(original); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if validCalendarDate(year, month, day) {
			return DateResult{Date: isoDate(year, month, day), Confidence: 90, Original: original}
		}
	}

	if m := FullDatePattern.FindStringSubmatch(original); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if validCalendarDate(year, month, day) {
			return DateResult{Date: isoDate(year, month, day), Confidence: 85, Original: original}
		}
	}

	if m := MonthYearPattern.FindStringSubmatch(original); m != nil {
		var month, year int
		switch {
		case m[1] != "" && m[2] != "":
			month = monthNumbers[strings.ToLower(m[1])]
			year, _ = strconv.Atoi(m[2])
		case m[3] != "" && m[4] != "":
			month, _ = strconv.Atoi(m[3])
			year, _ = strconv.Atoi(m[4])
		}
		if validCalendarDate(year, month, 1) {
			return DateResult{Date: isoDate(year, month, 1), Confidence: 80, Original: original}
		}
	}

	if m := YearOnlyPattern.FindString(original); m != "" {
		year, _ := strconv.Atoi(m)
		if year >= 1980 && year <= time.Now().Year()+5 {
			return DateResult{Date: isoDate(year, 1, 1), Confidence: 60, Original: original}
		}
	}

	return DateResult{Original: original}
}
