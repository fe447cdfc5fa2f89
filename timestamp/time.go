package timestamp

import (
	"fmt"
	"time"
)

// Time is a calendar instant broken into components, convertible to and from
// Unix-epoch timestamps.
type Time struct {
	Year        int `json:"year"`
	Month       int `json:"month"`
	Day         int `json:"day"`
	Hour        int `json:"hour"`
	Minute      int `json:"minute"`
	Second      int `json:"second"`
	Millisecond int `json:"millisecond"`
	Microsecond int `json:"microsecond"`
	Nanosecond  int `json:"nanosecond"`
}

// NewTime validates components and returns the calendar instant they name.
func NewTime(year, month, day, hour, minute, second, millisecond, microsecond, nanosecond int) (Time, error) {
	if year < 1970 || year > 3000 {
		return Time{}, fmt.Errorf("year value is limited in range from 1970 to 3000: %d", year)
	}
	if month < 1 || month > 12 {
		return Time{}, fmt.Errorf("month value is limited in range from 1 to 12: %d", month)
	}
	if day < 1 || day > 31 {
		return Time{}, fmt.Errorf("day value is limited in range from 1 to 31: %d", day)
	}
	if hour < 0 || hour > 23 {
		return Time{}, fmt.Errorf("hour value is limited in range from 0 to 23: %d", hour)
	}
	if minute < 0 || minute > 59 {
		return Time{}, fmt.Errorf("minute value is limited in range from 0 to 59: %d", minute)
	}
	if second < 0 || second > 59 {
		return Time{}, fmt.Errorf("second value is limited in range from 0 to 59: %d", second)
	}
	if millisecond < 0 || millisecond > 999 {
		return Time{}, fmt.Errorf("millisecond value is limited in range from 0 to 999: %d", millisecond)
	}
	if microsecond < 0 || microsecond > 999 {
		return Time{}, fmt.Errorf("microsecond value is limited in range from 0 to 999: %d", microsecond)
	}
	if nanosecond < 0 || nanosecond > 999 {
		return Time{}, fmt.Errorf("nanosecond value is limited in range from 0 to 999: %d", nanosecond)
	}
	return Time{
		Year:        year,
		Month:       month,
		Day:         day,
		Hour:        hour,
		Minute:      minute,
		Second:      second,
		Millisecond: millisecond,
		Microsecond: microsecond,
		Nanosecond:  nanosecond,
	}, nil
}

// TimeOf breaks a Unix-epoch timestamp into UTC calendar components.
func TimeOf(t Timestamp) Time {
	u := time.Unix(int64(t.Seconds()), 0).UTC()
	return Time{
		Year:        u.Year(),
		Month:       int(u.Month()),
		Day:         u.Day(),
		Hour:        u.Hour(),
		Minute:      u.Minute(),
		Second:      u.Second() % 60,
		Millisecond: int(t.Milliseconds() % 1000),
		Microsecond: int(t.Microseconds() % 1000),
		Nanosecond:  int(t.Nanoseconds() % 1000),
	}
}

func (t Time) subsecond() uint64 {
	return uint64(t.Millisecond)*uint64(Millisecond) +
		uint64(t.Microsecond)*uint64(Microsecond) +
		uint64(t.Nanosecond)
}

// UTCStamp converts the calendar components, read as UTC, into a timestamp.
func (t Time) UTCStamp() Timestamp {
	sec := time.Date(t.Year, time.Month(t.Month), t.Day, t.Hour, t.Minute, t.Second, 0, time.UTC).Unix()
	return Timestamp(uint64(sec)*uint64(Second) + t.subsecond())
}

// LocalStamp converts the calendar components, read as local time, into a
// timestamp.
func (t Time) LocalStamp() Timestamp {
	sec := time.Date(t.Year, time.Month(t.Month), t.Day, t.Hour, t.Minute, t.Second, 0, time.Local).Unix()
	return Timestamp(uint64(sec)*uint64(Second) + t.subsecond())
}
