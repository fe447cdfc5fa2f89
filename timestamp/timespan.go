package timestamp

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Timespan is a signed duration in nanoseconds, used to compute an absolute
// deadline from "now".
type Timespan int64

const (
	Nanosecond  Timespan = 1
	Microsecond          = 1000 * Nanosecond
	Millisecond          = 1000 * Microsecond
	Second               = 1000 * Millisecond
	Minute               = 60 * Second
	Hour                 = 60 * Minute
	Day                  = 24 * Hour
)

func Days(n int64) Timespan         { return Timespan(n) * Day }
func Hours(n int64) Timespan        { return Timespan(n) * Hour }
func Minutes(n int64) Timespan      { return Timespan(n) * Minute }
func Seconds(n int64) Timespan      { return Timespan(n) * Second }
func Milliseconds(n int64) Timespan { return Timespan(n) * Millisecond }
func Microseconds(n int64) Timespan { return Timespan(n) * Microsecond }
func Nanoseconds(n int64) Timespan  { return Timespan(n) }

// FromDuration converts a time.Duration into a Timespan.
func FromDuration(d time.Duration) Timespan { return Timespan(d) }

// Since returns the span elapsed since t, read from the same source t came
// from (monotonic for Nano readings).
func Since(t Timestamp) Timespan {
	return Nano().Sub(t)
}

// Total returns the span as a raw nanosecond count.
func (s Timespan) Total() int64 { return int64(s) }

func (s Timespan) Days() int64         { return int64(s / Day) }
func (s Timespan) Hours() int64        { return int64(s / Hour) }
func (s Timespan) Minutes() int64      { return int64(s / Minute) }
func (s Timespan) Seconds() int64      { return int64(s / Second) }
func (s Timespan) Milliseconds() int64 { return int64(s / Millisecond) }
func (s Timespan) Microseconds() int64 { return int64(s / Microsecond) }
func (s Timespan) Nanoseconds() int64  { return int64(s) }

// Duration converts the span into a time.Duration.
func (s Timespan) Duration() time.Duration { return time.Duration(s) }

func (s Timespan) String() string {
	return time.Duration(s).String()
}

func (s Timespan) Value() (driver.Value, error) {
	return s.String(), nil
}

// Scan converts the received string in the format hh:mm:ss, or any format
// accepted by time.ParseDuration, into a Timespan.
func (s *Timespan) Scan(value interface{}) error {
	var in string
	switch v := value.(type) {
	case []byte:
		in = string(v)
	case string:
		in = v
	case int64:
		*s = Timespan(v)
		return nil
	default:
		return fmt.Errorf("cannot sql.Scan() Timespan from: %#v", v)
	}
	if len(in) == 0 {
		return fmt.Errorf("cannot sql.Scan() Timespan from empty string")
	}
	// Convert format of hh:mm:ss into format parseable by time.ParseDuration()
	in = strings.Replace(in, ":", "h", 1)
	in = strings.Replace(in, ":", "m", 1)
	if in[len(in)-1] != 's' {
		in += "s"
	}
	dur, err := time.ParseDuration(in)
	if err != nil {
		return err
	}
	*s = Timespan(dur)
	return nil
}

func (s Timespan) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, s.String())), nil
}

func (s *Timespan) UnmarshalJSON(b []byte) error {
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		return s.UnmarshalJSON(b[1 : len(b)-1])
	}
	return s.Scan(string(b))
}
