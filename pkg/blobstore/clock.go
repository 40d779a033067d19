package blobstore

import "time"

// Clock supplies the timestamps stamped onto blob metadata. Injecting a
// Clock lets tests pin last-modified times.
type Clock interface {
	Now() time.Time
}

// SystemClock returns a Clock backed by time.Now in UTC.
func SystemClock() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
