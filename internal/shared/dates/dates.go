// Package dates provides calendar helpers shared by the aggregation engines.
package dates

import "time"

// DateOf truncates a time to midnight in its own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekBounds returns the Monday and Sunday of the ISO week containing d.
func WeekBounds(d time.Time) (monday, sunday time.Time) {
	d = DateOf(d)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	monday = d.AddDate(0, 0, -offset)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}
