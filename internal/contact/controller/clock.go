package controller

import "time"

// Clock is the time source of a controller. Tests substitute a manual one
// to drive the acknowledgement delay.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	Stop() bool
}

type systemClock struct{}

func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Selectable reports whether date may be picked in the calendar at now:
// the day has to start after now and fall on a weekday.
func Selectable(date, now time.Time) bool {
	y, m, d := date.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	if !dayStart.After(now) {
		return false
	}

	switch dayStart.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}
