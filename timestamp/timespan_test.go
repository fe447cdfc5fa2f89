package timestamp_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xpd54/gocommon/timestamp"
)

func TestTimespanConstructors(t *testing.T) {
	assert.Equal(t, timestamp.Timespan(2*24*60*60*1e9), timestamp.Days(2))
	assert.Equal(t, timestamp.Timespan(3*60*60*1e9), timestamp.Hours(3))
	assert.Equal(t, timestamp.Timespan(4*60*1e9), timestamp.Minutes(4))
	assert.Equal(t, timestamp.Timespan(5*1e9), timestamp.Seconds(5))
	assert.Equal(t, timestamp.Timespan(6*1e6), timestamp.Milliseconds(6))
	assert.Equal(t, timestamp.Timespan(7*1e3), timestamp.Microseconds(7))
	assert.Equal(t, timestamp.Timespan(8), timestamp.Nanoseconds(8))
}

func TestTimespanAccessors(t *testing.T) {
	span := timestamp.Hours(25) + timestamp.Minutes(1) + timestamp.Seconds(1)
	assert.Equal(t, int64(1), span.Days())
	assert.Equal(t, int64(25), span.Hours())
	assert.Equal(t, int64(1501), span.Minutes())
	assert.Equal(t, int64(90061), span.Seconds())
	assert.Equal(t, int64(90_061_000_000_000), span.Total())
}

func TestTimespanDurationBridge(t *testing.T) {
	span := timestamp.FromDuration(1500 * time.Millisecond)
	assert.Equal(t, timestamp.Milliseconds(1500), span)
	assert.Equal(t, 1500*time.Millisecond, span.Duration())
	assert.Equal(t, "1.5s", span.String())
}

func TestTimespanScan(t *testing.T) {
	var span timestamp.Timespan
	require.NoError(t, span.Scan("01:02:03"))
	assert.Equal(t, timestamp.Hours(1)+timestamp.Minutes(2)+timestamp.Seconds(3), span)

	require.NoError(t, span.Scan([]byte("250ms")))
	assert.Equal(t, timestamp.Milliseconds(250), span)

	require.NoError(t, span.Scan(int64(42)))
	assert.Equal(t, timestamp.Nanoseconds(42), span)

	assert.Error(t, span.Scan(3.14))
	assert.Error(t, span.Scan(""))
}

func TestTimespanJSON(t *testing.T) {
	out, err := json.Marshal(timestamp.Milliseconds(150))
	require.NoError(t, err)
	assert.Equal(t, `"150ms"`, string(out))

	var span timestamp.Timespan
	require.NoError(t, json.Unmarshal([]byte(`"2h45m0s"`), &span))
	assert.Equal(t, timestamp.Hours(2)+timestamp.Minutes(45), span)
}

func TestTimespanValue(t *testing.T) {
	v, err := timestamp.Seconds(90).Value()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", v)
}
