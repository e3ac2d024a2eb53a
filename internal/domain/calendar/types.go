package calendar

import (
	"errors"
	"fmt"
	"time"

	"calldesk-booking/internal/pkg/errs"
)

var (
	ErrInvalidCalendar  = errors.New("invalid calendar")
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrInvalidWallClock = errors.New("wall clock must be formatted as HH:mm")
)

// DaysPerWeek is the number of entries of a WeeklyCalendar, Monday first.
const DaysPerWeek = 7

// WallClock is a time of day with minute precision.
type WallClock struct {
	hour   int
	minute int
}

func NewWallClock(hour, minute int) (WallClock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return WallClock{}, ErrInvalidWallClock
	}
	return WallClock{hour: hour, minute: minute}, nil
}

func MustWallClock(s string) WallClock {
	wc, err := ParseWallClock(s)
	if err != nil {
		panic(err)
	}
	return wc
}

func ParseWallClock(s string) (WallClock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil || len(s) != 5 {
		return WallClock{}, ErrInvalidWallClock
	}
	return WallClock{hour: t.Hour(), minute: t.Minute()}, nil
}

func (w WallClock) Hour() int   { return w.hour }
func (w WallClock) Minute() int { return w.minute }

func (w WallClock) String() string {
	return fmt.Sprintf("%02d:%02d", w.hour, w.minute)
}

func (w WallClock) Before(other WallClock) bool {
	return w.minutesOfDay() < other.minutesOfDay()
}

func (w WallClock) minutesOfDay() int {
	return w.hour*60 + w.minute
}

// On returns the wall clock on the given date in loc.
func (w WallClock) On(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, w.hour, w.minute, 0, 0, loc)
}

func (w WallClock) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w *WallClock) UnmarshalText(text []byte) error {
	parsed, err := ParseWallClock(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// OpeningWindow is a recurring daily interval split into slots of Duration minutes.
// Each slot is offered with probability Prob.
type OpeningWindow struct {
	Start    WallClock `json:"start" yaml:"start"`
	End      WallClock `json:"end" yaml:"end"`
	Duration int       `json:"duration" yaml:"duration"`
	Prob     float64   `json:"prob" yaml:"prob"`
}

func (w OpeningWindow) SlotLength() time.Duration {
	return time.Duration(w.Duration) * time.Minute
}

func (w OpeningWindow) Validate() error {
	if !w.Start.Before(w.End) {
		return errs.Wrapf(ErrInvalidCalendar, "window %s-%s: end must be after start", w.Start, w.End)
	}
	if w.Duration <= 0 {
		return errs.Wrapf(ErrInvalidCalendar, "window %s-%s: duration must be positive", w.Start, w.End)
	}
	if w.Prob < 0 || w.Prob > 1 {
		return errs.Wrapf(ErrInvalidCalendar, "window %s-%s: prob must be within [0,1]", w.Start, w.End)
	}
	return nil
}

// WeeklyCalendar holds the opening windows of each weekday, index 0 is Monday.
// An empty day is closed.
type WeeklyCalendar [][]OpeningWindow

// Validate checks the shape of the calendar and that windows of a day are
// well formed, ascending and non-overlapping.
func (c WeeklyCalendar) Validate() error {
	if len(c) != DaysPerWeek {
		return errs.Wrapf(ErrInvalidCalendar, "expected %d days, got %d", DaysPerWeek, len(c))
	}
	for day, windows := range c {
		for i, w := range windows {
			if err := w.Validate(); err != nil {
				return errs.Wrapf(err, "%s", time.Weekday((day+1)%DaysPerWeek))
			}
			if i > 0 && w.Start.Before(windows[i-1].End) {
				return errs.Wrapf(ErrInvalidCalendar, "%s: window %s-%s overlaps or precedes %s-%s",
					time.Weekday((day+1)%DaysPerWeek), w.Start, w.End, windows[i-1].Start, windows[i-1].End)
			}
		}
	}
	return nil
}

// IsClosed reports whether no window is open on the given weekday.
func (c WeeklyCalendar) IsClosed(wd time.Weekday) bool {
	idx := ISOWeekday(wd)
	return idx >= len(c) || len(c[idx]) == 0
}

// ISOWeekday converts a time.Weekday to a calendar index, Monday being 0.
func ISOWeekday(wd time.Weekday) int {
	return (int(wd) + 6) % DaysPerWeek
}
