// Package horario converts event wall-clock times between the 24-hour wire
// format and the 12-hour AM/PM form shown in the form inputs.
package horario

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// twelveHour matches "H:MM AM" / "H:MM PM" with optional spacing, any case.
var twelveHour = regexp.MustCompile(`(?i)(\d+):(\d+)\s*(AM|PM)`)

// To24Hour converts a 12-hour "H:MM AM/PM" string to "HH:MM". Input that
// carries no AM/PM marker is returned unchanged. Hour 12 maps to 00 before
// the PM adjustment, so "12:30 AM" becomes "00:30" and "12:30 PM" stays
// "12:30".
func To24Hour(s string) string {
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "AM") && !strings.Contains(s, "PM") {
		return s
	}
	parts := strings.SplitN(s, " ", 2)
	if len(parts) != 2 {
		return s
	}
	hm := strings.SplitN(parts[0], ":", 2)
	if len(hm) != 2 {
		return s
	}
	hours, minutes := hm[0], hm[1]
	if hours == "12" {
		hours = "00"
	}
	if parts[1] == "PM" {
		h, _ := strconv.Atoi(hours)
		hours = strconv.Itoa(h + 12)
	}
	return hours + ":" + minutes
}

// To12Hour converts a 24-hour "HH:MM" string to "H:MM AM/PM". Hour 0 maps
// to 12 AM, hour 12 stays 12 PM.
func To12Hour(s string) string {
	if s == "" {
		return ""
	}
	hm := strings.SplitN(s, ":", 2)
	if len(hm) != 2 {
		return s
	}
	h, err := strconv.Atoi(hm[0])
	if err != nil {
		return s
	}
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%s %s", h, hm[1], period)
}

// ToMinutes returns minutes since midnight for either textual form. The
// 12-hour pattern is tried first; anything else is parsed as 24-hour
// components. Empty input yields 0.
func ToMinutes(s string) int {
	if s == "" {
		return 0
	}
	if m := twelveHour.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		period := strings.ToUpper(m[3])
		if period == "PM" && hours != 12 {
			hours += 12
		}
		if period == "AM" && hours == 12 {
			hours = 0
		}
		return hours*60 + minutes
	}
	hm := strings.SplitN(s, ":", 2)
	if len(hm) != 2 {
		return 0
	}
	hours, _ := strconv.Atoi(hm[0])
	minutes, _ := strconv.Atoi(hm[1])
	return hours*60 + minutes
}
