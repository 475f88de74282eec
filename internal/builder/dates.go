package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// Date strings are stored as "MM/YYYY" or "MM/DD/YYYY"; the day is optional
// everywhere a date appears.

// DateParts is a date string split into its editor sub-fields.
type DateParts struct {
	Month string `json:"month"`
	Day   string `json:"day"`
	Year  string `json:"year"`
}

var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ParseDate splits a stored date string into its parts. Anything that is not
// two or three slash-separated fields parses as empty.
func ParseDate(dateString string) DateParts {
	if dateString == "" {
		return DateParts{}
	}

	parts := strings.Split(dateString, "/")
	switch len(parts) {
	case 2:
		return DateParts{Month: parts[0], Year: parts[1]}
	case 3:
		return DateParts{Month: parts[0], Day: parts[1], Year: parts[2]}
	default:
		return DateParts{}
	}
}

// BuildDate recombines editor sub-fields into the stored form, zero-padding
// month and day. Year and month are required; without them the result is "".
func BuildDate(year, month, day string) string {
	if year == "" || month == "" {
		return ""
	}

	mm := padStart(month, 2)
	if day != "" {
		return fmt.Sprintf("%s/%s/%s", mm, padStart(day, 2), year)
	}
	return fmt.Sprintf("%s/%s", mm, year)
}

// FormatDate renders a stored date for display: "Mon YYYY", or "Mon D YYYY"
// when a day is present. Unparseable input renders as "".
func FormatDate(dateString string) string {
	if dateString == "" {
		return ""
	}

	parts := ParseDate(dateString)
	if parts.Month == "" || parts.Year == "" {
		return ""
	}

	monthIndex, err := strconv.Atoi(parts.Month)
	if err != nil || monthIndex < 1 || monthIndex > 12 {
		return ""
	}
	name := monthNames[monthIndex-1]

	if parts.Day != "" {
		day, err := strconv.Atoi(parts.Day)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("%s %d %s", name, day, parts.Year)
	}
	return fmt.Sprintf("%s %s", name, parts.Year)
}

func padStart(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
