package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "1s ago", relTime(now.Add(-time.Second), now, "ago", "from now"))
	assert.Equal(t, "30s ago", relTime(now.Add(-30*time.Second), now, "ago", "from now"))
	assert.Equal(t, "1m ago", relTime(now.Add(-90*time.Second), now, "ago", "from now"))
	assert.Equal(t, "5m ago", relTime(now.Add(-5*time.Minute), now, "ago", "from now"))
	assert.Equal(t, "1h ago", relTime(now.Add(-time.Hour), now, "ago", "from now"))
	assert.Equal(t, "3h ago", relTime(now.Add(-3*time.Hour), now, "ago", "from now"))
	assert.Equal(t, "1d ago", relTime(now.Add(-25*time.Hour), now, "ago", "from now"))
	assert.Equal(t, "3d ago", relTime(now.Add(-3*day), now, "ago", "from now"))
	assert.Equal(t, "1w ago", relTime(now.Add(-8*day), now, "ago", "from now"))
	assert.Equal(t, "2w ago", relTime(now.Add(-2*week), now, "ago", "from now"))
}

func TestRelTimeFuture(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "5m from now", relTime(now.Add(5*time.Minute), now, "ago", "from now"))
}

func TestRelTimeFallsBackToDate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	then := now.Add(-2 * month)

	assert.Equal(t, then.Local().Format("Jan 2 2006"), relTime(then, now, "ago", "from now"))
}

func TestDate(t *testing.T) {
	ts := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, ts.Local().Format("Jan 2 2006"), Date(ts))
}
