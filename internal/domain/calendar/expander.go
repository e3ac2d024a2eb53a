package calendar

import (
	"math/rand/v2"
	"time"

	"calldesk-booking/internal/pkg/errs"
)

// Rand is the source of the availability draws.
type Rand interface {
	Float64() float64
}

type options struct {
	rand       Rand
	ignoreProb bool
}

type Option func(*options)

// WithRand sets the random source used for the per-slot draws.
func WithRand(r Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// IgnoreProbability offers every aligned slot regardless of the window's prob.
func IgnoreProbability() Option {
	return func(o *options) {
		o.ignoreProb = true
	}
}

// Expand lists the slot start times offered by cal between start and end.
//
// Days are visited from start's weekday for one week. The scan stops for good
// at the first window opening after end. Every slot carries start's UTC offset.
func Expand(start, end time.Time, cal WeeklyCalendar, opts ...Option) ([]time.Time, error) {
	if len(cal) != DaysPerWeek {
		return nil, errs.Wrapf(ErrInvalidCalendar, "expected %d days, got %d", DaysPerWeek, len(cal))
	}
	if start.IsZero() || end.IsZero() {
		return nil, ErrInvalidTimeRange
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand == nil {
		o.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	origin := start.In(offsetOf(start))
	startWD := ISOWeekday(origin.Weekday())

	var slots []time.Time
	for i := 0; i < DaysPerWeek; i++ {
		y, m, d := origin.AddDate(0, 0, i).Date()
		for _, w := range cal[(startWD+i)%DaysPerWeek] {
			windowStart := w.Start.On(y, m, d, origin.Location())
			if windowStart.After(end) {
				return slots, nil
			}
			windowEnd := w.End.On(y, m, d, origin.Location())
			if !windowEnd.After(windowStart) {
				return nil, errs.Wrapf(ErrInvalidCalendar, "window %s-%s: end must be after start", w.Start, w.End)
			}
			if w.Duration <= 0 {
				return nil, errs.Wrapf(ErrInvalidCalendar, "window %s-%s: duration must be positive", w.Start, w.End)
			}

			step := w.SlotLength()
			for cursor := alignAfter(windowStart, start, step); !cursor.Add(step).After(windowEnd); cursor = cursor.Add(step) {
				if cursor.Add(step).After(end) {
					break
				}
				if o.ignoreProb || o.rand.Float64() < w.Prob {
					slots = append(slots, cursor)
				}
			}
		}
	}
	return slots, nil
}

// ExpandStrings is Expand over RFC 3339 instants.
func ExpandStrings(start, end string, cal WeeklyCalendar, opts ...Option) ([]time.Time, error) {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "start %q", start), ErrInvalidTimeRange)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "end %q", end), ErrInvalidTimeRange)
	}
	return Expand(s, e, cal, opts...)
}

// Locate finds the window of cal that offers a slot starting exactly at slot.
// Probabilities are not taken into account.
func Locate(cal WeeklyCalendar, slot time.Time) (OpeningWindow, bool) {
	local := slot.In(offsetOf(slot))
	if len(cal) != DaysPerWeek || cal.IsClosed(local.Weekday()) {
		return OpeningWindow{}, false
	}
	y, m, d := local.Date()
	for _, w := range cal[ISOWeekday(local.Weekday())] {
		if w.Duration <= 0 {
			continue
		}
		windowStart := w.Start.On(y, m, d, local.Location())
		windowEnd := w.End.On(y, m, d, local.Location())
		if local.Before(windowStart) || local.Add(w.SlotLength()).After(windowEnd) {
			continue
		}
		if local.Sub(windowStart)%w.SlotLength() == 0 {
			return w, true
		}
	}
	return OpeningWindow{}, false
}

// alignAfter returns the first point of the windowStart + k*step grid that is
// not before t.
func alignAfter(windowStart, t time.Time, step time.Duration) time.Time {
	if !windowStart.Before(t) {
		return windowStart
	}
	n := (t.Sub(windowStart) + step - 1) / step
	return windowStart.Add(n * step)
}

func offsetOf(t time.Time) *time.Location {
	name, offset := t.Zone()
	return time.FixedZone(name, offset)
}
