package service

import "time"

// Clock supplies the clinic's local wall-clock time. All date comparisons
// (appointment scheduling, vaccination stamps, billing windows) go through
// this interface so tests can pin the current moment.
type Clock interface {
	// Now returns the current instant in the clinic timezone.
	Now() time.Time

	// Today returns midnight of the current day in the clinic timezone.
	Today() time.Time

	// Location returns the clinic timezone.
	Location() *time.Location
}
