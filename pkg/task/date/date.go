package date

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidTime = errors.New("invalid time")
)

// Date is a calendar day. The zero value is not a valid date.
type Date struct {
	Day   int
	Month time.Month
	Year  int
}

// New validates the given day, month and year
func New(day int, month time.Month, year int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d must be between 1 and 12", ErrInvalidDate, month)
	}
	if last := DaysIn(month, year); day < 1 || day > last {
		return Date{}, fmt.Errorf("%w: day %d out of range for %s %d", ErrInvalidDate, day, month, year)
	}
	return Date{Day: day, Month: month, Year: year}, nil
}

// MustNew is like New but panics on invalid input. Meant for fixtures.
func MustNew(day int, month time.Month, year int) Date {
	d, err := New(day, month, year)
	if err != nil {
		panic(err)
	}
	return d
}

func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

var monthDays = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysIn returns the length of month in the given year
func DaysIn(month time.Month, year int) int {
	if month == time.February && IsLeap(year) {
		return 29
	}
	return monthDays[month-1]
}

// YearDay returns the ordinal day of the year, starting at 1 for Jan 1
func (d Date) YearDay() int {
	n := d.Day
	for m := time.January; m < d.Month; m++ {
		n += DaysIn(m, d.Year)
	}
	return n
}

func (d Date) Valid() bool {
	_, err := New(d.Day, d.Month, d.Year)
	return err == nil
}

// Compare orders dates by year and then by day of the year.
// It returns -1, 0 or +1.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year < o.Year:
		return -1
	case d.Year > o.Year:
		return 1
	}
	a, b := d.YearDay(), o.YearDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }
func (d Date) Equal(o Date) bool  { return d.Compare(o) == 0 }

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func fromTime(t time.Time) Date {
	return Date{Day: t.Day(), Month: t.Month(), Year: t.Year()}
}

// Today returns the current local date
func Today() Date {
	return fromTime(time.Now())
}

// AddDays moves the date by n days, crossing month and year boundaries
func (d Date) AddDays(n int) Date {
	return fromTime(d.time().AddDate(0, 0, n))
}

// DaysUntil returns how many days lie between d and o. It is negative when
// o is before d.
func (d Date) DaysUntil(o Date) int {
	return int(o.time().Sub(d.time()).Hours() / 24)
}

func (d Date) Weekday() time.Weekday {
	return d.time().Weekday()
}

// String formats the date as dd-mm-yyyy
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, int(d.Month), d.Year)
}

// Clock is a time of day
type Clock struct {
	Hour   int
	Minute int
	Second int
}

func NewClock(hour, minute, second int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return Clock{}, fmt.Errorf("%w: %02d:%02d:%02d", ErrInvalidTime, hour, minute, second)
	}
	return Clock{Hour: hour, Minute: minute, Second: second}, nil
}

func (c Clock) seconds() int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

func (c Clock) Compare(o Clock) int {
	a, b := c.seconds(), o.seconds()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// String formats the clock as HH:MM:SS
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// Moment is a date with a time of day
type Moment struct {
	Date
	Clock
}

func (m Moment) Compare(o Moment) int {
	if c := m.Date.Compare(o.Date); c != 0 {
		return c
	}
	return m.Clock.Compare(o.Clock)
}

func (m Moment) Before(o Moment) bool {
	return m.Compare(o) < 0
}

func (m Moment) String() string {
	return m.Date.String() + " " + m.Clock.String()
}
