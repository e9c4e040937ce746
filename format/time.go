// Adapted from https://raw.githubusercontent.com/dustin/go-humanize/master/times.go

package format

import (
	"fmt"
	"sort"
	"time"
)

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
)

// Time formats a time into a relative string.
//
// Time(someT) -> "3 weeks ago"
func Time(then time.Time) string {
	return relTime(then.UTC(), time.Now().UTC(), "ago", "from now")
}

type relTimeMagnitude struct {
	D      time.Duration
	Format string
	DivBy  time.Duration
}

var defaultMagnitudes = []relTimeMagnitude{
	{time.Second, "just now", time.Second},
	{2 * time.Second, "1s %s", 1},
	{time.Minute, "%ds %s", time.Second},
	{2 * time.Minute, "1m %s", 1},
	{time.Hour, "%dm %s", time.Minute},
	{2 * time.Hour, "1h %s", 1},
	{day, "%dh %s", time.Hour},
	{2 * day, "1d %s", 1},
	{week, "%dd %s", day},
	{2 * week, "1w %s", 1},
	{month, "%dw %s", week},
}

func relTime(a, b time.Time, albl, blbl string) string {
	lbl := albl
	diff := b.Sub(a)

	if a.After(b) {
		lbl = blbl
		diff = a.Sub(b)
	}

	largestMagnitude := defaultMagnitudes[len(defaultMagnitudes)-1].D

	// beyond the largest magnitude, show the date instead
	if diff >= largestMagnitude {
		return a.Local().Format("Jan 2 2006")
	}

	n := sort.Search(len(defaultMagnitudes), func(i int) bool {
		return defaultMagnitudes[i].D > diff
	})

	if n >= len(defaultMagnitudes) {
		n = len(defaultMagnitudes) - 1
	}
	mag := defaultMagnitudes[n]

	if mag.DivBy == 1 {
		return fmt.Sprintf(mag.Format, lbl)
	}

	return fmt.Sprintf(mag.Format, diff/mag.DivBy, lbl)
}

// Date formats an absolute timestamp for cards and tables.
func Date(t time.Time) string {
	return t.Local().Format("Jan 2 2006")
}
