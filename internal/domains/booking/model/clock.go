package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"roomio/shared/constant"
)

const minutesPerHour = 60

// Clock is a time of day in minutes since midnight.
type Clock int

func ParseClock(value string) (Clock, error) {
	parsed, err := time.Parse(constant.ClockFormat, value)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", value, err)
	}

	return Clock(parsed.Hour()*minutesPerHour + parsed.Minute()), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/minutesPerHour, int(c)%minutesPerHour)
}

func (c Clock) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *Clock) Scan(src any) error {
	switch value := src.(type) {
	case int64:
		*c = Clock(value)
	case int32:
		*c = Clock(value)
	case nil:
		*c = 0
	default:
		return fmt.Errorf("unsupported clock source %T", src)
	}

	return nil
}

// Date is a calendar day in YYYY-MM-DD form.
type Date string

func ParseDate(value string) (Date, error) {
	parsed, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", value, err)
	}

	return Date(parsed.Format(constant.DateFormat)), nil
}

func (d Date) String() string {
	return string(d)
}

func (d Date) Value() (driver.Value, error) {
	return string(d), nil
}

// Scan accepts the DATE column as lib/pq returns it, either a time.Time or its text form.
func (d *Date) Scan(src any) error {
	switch value := src.(type) {
	case time.Time:
		*d = Date(value.Format(constant.DateFormat))
	case []byte:
		*d = Date(trimDate(string(value)))
	case string:
		*d = Date(trimDate(value))
	case nil:
		*d = ""
	default:
		return fmt.Errorf("unsupported date source %T", src)
	}

	return nil
}

func trimDate(value string) string {
	day, _, _ := strings.Cut(value, "T")

	return day
}
