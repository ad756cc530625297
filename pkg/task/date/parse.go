package date

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse reads a date written as dd-mm-yyyy
func Parse(s string) (Date, error) {
	nums, err := fields(s, "-", 3)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q: expected dd-mm-yyyy", ErrInvalidDate, s)
	}
	return New(nums[0], time.Month(nums[1]), nums[2])
}

// ParseClock reads a time written as HH:MM:SS. Seconds may be left out.
func ParseClock(s string) (Clock, error) {
	nums, err := fields(s, ":", 3)
	if err != nil {
		nums, err = fields(s, ":", 2)
		if err != nil {
			return Clock{}, fmt.Errorf("%w: %q: expected HH:MM:SS", ErrInvalidTime, s)
		}
		nums = append(nums, 0)
	}
	return NewClock(nums[0], nums[1], nums[2])
}

func fields(s, sep string, n int) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(s), sep)
	if len(parts) != n {
		return nil, errors.New("wrong number of fields")
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ParseRelative reads a date either in absolute form (dd-mm-yyyy) or relative
// to from: "today", "tomorrow", "yesterday", "in 3 days", "2 weeks ago", "+1w".
func ParseRelative(s string, from Date) (Date, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "today", "tod", "now":
		return from, nil
	case "tomorrow", "tom":
		return from.AddDays(1), nil
	case "yesterday", "yday":
		return from.AddDays(-1), nil
	}
	if d, err := Parse(s); err == nil {
		return d, nil
	}
	n, err := parseDayOffset(s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return from.AddDays(n), nil
}

type multiplier struct {
	key   string
	value int
}

var multipliers = []multiplier{
	{"days", 1},
	{"weeks", 7},
	{"months", 30},
	{"years", 365},
}

func parseDayOffset(s string) (int, error) {
	s = strings.TrimPrefix(s, "in")
	s = strings.TrimSpace(s)
	var (
		n        int
		negative bool
	)
	if len(s) >= 1 {
		if s[0] == '-' {
			negative = true
			s = s[1:]
		} else if s[0] == '+' {
			s = s[1:]
		}
	}
	// parse quantity
	{
		rest, n1, err := parseInt(s)
		if err != nil {
			return 0, err
		}
		n = n1
		s = strings.TrimSpace(rest)
	}

	multiplier := 1
	if len(s) > 0 {
		multiplier = 0
		endOfWord := len(s)
		for i, c := range s {
			if c == ' ' {
				endOfWord = i
				break
			}
		}
		for _, m := range multipliers {
			end := min(len(m.key), endOfWord)
			if m.key[:end] == s[:end] {
				multiplier = m.value
				s = s[endOfWord:]
				break
			}
		}
		s = strings.TrimSpace(s)
		if multiplier == 0 {
			return 0, errors.New("invalid suffix, expected 'days', 'weeks', 'months', or 'years'")
		}
		switch s {
		case "":
		case "ago":
			negative = true
		default:
			return 0, fmt.Errorf("unexpected %q", s)
		}
	}

	if negative {
		n *= -1
	}
	return n * multiplier, nil
}

func parseInt(s string) (string, int, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return s, 0, errors.New("failed to parse")
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return s, 0, err
	}
	return s[i:], n, nil
}
