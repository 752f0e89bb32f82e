package domain

import "time"

// Clock supplies the current time to services so that timestamp assignment
// is a single injected collaborator instead of scattered time.Now calls.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// EpochMillis converts a time to the epoch-millisecond representation used
// by every timestamp field in the data model.
func EpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}
