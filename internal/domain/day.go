package domain

import "time"

// Day is a calendar day in process-local time
type Day struct {
	Date time.Time
}

// DayOf truncates t to its calendar day
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Date: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// DateString returns date in YYYYMMDD format
func (d Day) DateString() string {
	return d.Date.Format("20060102")
}

// Before reports whether d is an earlier calendar day than other
func (d Day) Before(other Day) bool {
	return d.DateString() < other.DateString()
}

// DisplayString renders d relative to today. Days other than today and
// yesterday use the numeric DD.MM.YYYY form, which reads the same in every locale.
func (d Day) DisplayString(today Day, todayWord, yesterdayWord string) string {
	switch d.DateString() {
	case today.DateString():
		return todayWord
	case today.Date.AddDate(0, 0, -1).Format("20060102"):
		return yesterdayWord
	}
	if d.Date.IsZero() {
		return "-"
	}
	return d.Date.Format("02.01.2006")
}
