// Package timestamp provides nanosecond-resolution timestamp and duration
// values for interval arithmetic, deadline computation and calendar
// conversions.
package timestamp

import "time"

// Timestamp is a count of nanoseconds since a fixed epoch. Wall-clock sources
// count from the Unix epoch; the monotonic source counts from an arbitrary
// start point and is only meaningful for interval and deadline arithmetic.
type Timestamp uint64

// Epoch is the zero timestamp.
const Epoch Timestamp = 0

// Nano returns the current instant from the monotonic high-resolution clock.
// Successive reads are non-decreasing and unaffected by wall-clock
// adjustment. There are no constraints on the absolute value, only on its
// increments, so Nano readings must not be mixed with UTC or Local readings.
func Nano() Timestamp {
	return Timestamp(nanotime())
}

// UTC returns the current wall-clock instant as nanoseconds since the Unix
// epoch.
func UTC() Timestamp {
	return Timestamp(time.Now().UnixNano())
}

// Local returns the current wall-clock instant shifted by the local time zone
// offset, so that its calendar components read as local time.
func Local() Timestamp {
	now := time.Now()
	_, offset := now.Zone()
	return Timestamp(now.UnixNano() + int64(offset)*int64(Second))
}

// Total returns the timestamp as a raw nanosecond count.
func (t Timestamp) Total() uint64 { return uint64(t) }

func (t Timestamp) Days() uint64         { return uint64(t) / uint64(Day) }
func (t Timestamp) Hours() uint64        { return uint64(t) / uint64(Hour) }
func (t Timestamp) Minutes() uint64      { return uint64(t) / uint64(Minute) }
func (t Timestamp) Seconds() uint64      { return uint64(t) / uint64(Second) }
func (t Timestamp) Milliseconds() uint64 { return uint64(t) / uint64(Millisecond) }
func (t Timestamp) Microseconds() uint64 { return uint64(t) / uint64(Microsecond) }
func (t Timestamp) Nanoseconds() uint64  { return uint64(t) }

// Add returns the timestamp shifted by span, which may be negative.
func (t Timestamp) Add(span Timespan) Timestamp {
	return Timestamp(int64(t) + int64(span))
}

// Sub returns the span from o to t.
func (t Timestamp) Sub(o Timestamp) Timespan {
	return Timespan(int64(t) - int64(o))
}

func (t Timestamp) Before(o Timestamp) bool { return t < o }
func (t Timestamp) After(o Timestamp) bool  { return t > o }

// Time converts a Unix-epoch timestamp into a time.Time in UTC. Only
// UTC-sourced stamps convert correctly: Nano readings count from an
// arbitrary start point and Local readings are already shifted by the zone
// offset, so both render skewed components.
func (t Timestamp) Time() time.Time {
	return time.Unix(0, int64(t)).UTC()
}
