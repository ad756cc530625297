package dateinput

import (
	"strings"
	"time"

	"github.com/td0m/taskboard/pkg/task/date"
)

// Parse reads what a user typed in the prompt: anything date.ParseRelative
// understands, or a weekday name (at least its first three letters) meaning
// the next such day. A trailing HH:MM or HH:MM:SS sets the time, otherwise
// clock is used.
func Parse(s string, from date.Date, clock date.Clock) (date.Moment, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.LastIndexByte(s, ' '); i > 0 {
		if c, err := date.ParseClock(s[i+1:]); err == nil {
			clock = c
			s = strings.TrimSpace(s[:i])
		}
	}
	if d, ok := weekday(s, from); ok {
		return date.Moment{Date: d, Clock: clock}, nil
	}
	d, err := date.ParseRelative(s, from)
	if err != nil {
		return date.Moment{}, err
	}
	return date.Moment{Date: d, Clock: clock}, nil
}

func weekday(s string, from date.Date) (date.Date, bool) {
	if len(s) < 3 {
		return date.Date{}, false
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if strings.HasPrefix(name, s) {
			return nextWeekday(from, wd), true
		}
	}
	return date.Date{}, false
}

// nextWeekday returns the first day on or after from falling on d
func nextWeekday(from date.Date, d time.Weekday) date.Date {
	day := d - from.Weekday()
	if day < 0 {
		day += 7
	}
	return from.AddDays(int(day))
}

// describe renders the distance from from to d the way the prompt shows it
func describe(from, d date.Date) string {
	switch days := from.DaysUntil(d); {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days < 0:
		return plural(-days, "day") + " ago"
	case days < 14:
		return "in " + plural(days, "day")
	// max 1 month
	case days <= 31:
		return "in " + plural(days/7, "week")
	default:
		return "in " + plural(days/31, "month")
	}
}

func plural(n int, unit string) string {
	s := itoa(n) + " " + unit
	if n != 1 {
		s += "s"
	}
	return s
}
