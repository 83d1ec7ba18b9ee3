package schedule

import (
	"regexp"
	"strconv"
)

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(AM|PM)$`)

// TimeToMinutes converts a 12-hour display time such as "8:30AM" into minutes
// since midnight. Strings that do not match the display form map to 0, which
// keeps comparisons total without surfacing parse failures.
func TimeToMinutes(value string) int {
	match := clockPattern.FindStringSubmatch(value)
	if match == nil {
		return 0
	}
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	period := match[3]

	if period == "PM" && hours != 12 {
		hours += 12
	} else if period == "AM" && hours == 12 {
		hours = 0
	}
	return hours*60 + minutes
}

// MinutesToTime renders minutes since midnight in the 12-hour display form
// used throughout the listings.
func MinutesToTime(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours
	switch {
	case hours == 0:
		display = 12
	case hours > 12:
		display = hours - 12
	}
	text := strconv.Itoa(display) + ":"
	if mins < 10 {
		text += "0"
	}
	return text + strconv.Itoa(mins) + period
}
