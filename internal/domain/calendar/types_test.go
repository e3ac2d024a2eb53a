//go:build unit

package calendar_test

import (
	"encoding/json"
	"testing"
	"time"

	"calldesk-booking/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWallClock(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		cases := []struct {
			in      string
			wantErr bool
		}{
			{in: "00:00"},
			{in: "09:30"},
			{in: "23:59"},
			{in: "9:30", wantErr: true},
			{in: "24:00", wantErr: true},
			{in: "12:60", wantErr: true},
			{in: "noon", wantErr: true},
			{in: "", wantErr: true},
		}
		for _, tc := range cases {
			t.Run(tc.in, func(t *testing.T) {
				wc, err := calendar.ParseWallClock(tc.in)
				if tc.wantErr {
					assert.ErrorIs(t, err, calendar.ErrInvalidWallClock)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tc.in, wc.String())
			})
		}
	})

	t.Run("ordering", func(t *testing.T) {
		assert.True(t, calendar.MustWallClock("09:00").Before(calendar.MustWallClock("09:01")))
		assert.False(t, calendar.MustWallClock("09:00").Before(calendar.MustWallClock("09:00")))
	})

	t.Run("on a date", func(t *testing.T) {
		loc := time.FixedZone("", -5*60*60)
		got := calendar.MustWallClock("18:30").On(2016, time.June, 21, loc)
		assert.Equal(t, "2016-06-21T18:30:00-05:00", got.Format(time.RFC3339))
	})
}

func TestOpeningWindowDecoding(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var w calendar.OpeningWindow
		err := json.Unmarshal([]byte(`{"start":"11:30","end":"14:30","duration":60,"prob":0.5}`), &w)
		require.NoError(t, err)
		assert.Equal(t, window("11:30", "14:30", 60, 0.5), w)

		out, err := json.Marshal(w)
		require.NoError(t, err)
		assert.JSONEq(t, `{"start":"11:30","end":"14:30","duration":60,"prob":0.5}`, string(out))
	})

	t.Run("yaml", func(t *testing.T) {
		var cal calendar.WeeklyCalendar
		doc := `
- []
- [{start: "09:00", end: "18:00", duration: 30, prob: 1}]
- [{start: "09:00", end: "18:00", duration: 60, prob: 1}]
- []
- []
- []
- []
`
		require.NoError(t, yaml.Unmarshal([]byte(doc), &cal))
		require.NoError(t, cal.Validate())
		assert.Empty(t, cal[0])
		assert.Equal(t, tuesdayWednesday[1], cal[1])
		assert.Equal(t, tuesdayWednesday[2], cal[2])
	})

	t.Run("bad wall clock", func(t *testing.T) {
		var w calendar.OpeningWindow
		err := json.Unmarshal([]byte(`{"start":"9h","end":"14:30","duration":60,"prob":0.5}`), &w)
		assert.Error(t, err)
	})
}

func TestWeeklyCalendarValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(calendar.WeeklyCalendar) calendar.WeeklyCalendar
		errIs  error
	}{
		{
			name:   "valid",
			mutate: func(c calendar.WeeklyCalendar) calendar.WeeklyCalendar { return c },
		},
		{
			name:   "six days",
			mutate: func(c calendar.WeeklyCalendar) calendar.WeeklyCalendar { return c[:6] },
			errIs:  calendar.ErrInvalidCalendar,
		},
		{
			name: "eight days",
			mutate: func(c calendar.WeeklyCalendar) calendar.WeeklyCalendar {
				return append(c, []calendar.OpeningWindow{})
			},
			errIs: calendar.ErrInvalidCalendar,
		},
		{
			name: "end before start",
			mutate: func(c calendar.WeeklyCalendar) calendar.WeeklyCalendar {
				c[3] = []calendar.OpeningWindow{window("14:00", "12:00", 30, 1)}
				return c
			},
			errIs: calendar.ErrInvalidCalendar,
		},
		{
			name: "zero duration",
			mutate: func(c calendar.WeeklyCalendar) calendar.WeeklyCalendar {
				c[3] = []calendar.OpeningWindow{window("12:00", "14:00", 0, 1)}
				return c
			},
			errIs: calendar.ErrInvalidCalendar,
		},
		{
			name: "probability above one",
			mutate: func(c calendar.WeeklyCalendar) calendar.WeeklyCalendar {
				c[3] = []calendar.OpeningWindow{window("12:00", "14:00", 30, 1.5)}
				return c
			},
			errIs: calendar.ErrInvalidCalendar,
		},
		{
			name: "overlapping windows",
			mutate: func(c calendar.WeeklyCalendar) calendar.WeeklyCalendar {
				c[3] = []calendar.OpeningWindow{window("12:00", "14:00", 30, 1), window("13:00", "15:00", 30, 1)}
				return c
			},
			errIs: calendar.ErrInvalidCalendar,
		},
		{
			name: "adjacent windows",
			mutate: func(c calendar.WeeklyCalendar) calendar.WeeklyCalendar {
				c[3] = []calendar.OpeningWindow{window("12:00", "14:00", 30, 1), window("14:00", "15:00", 30, 1)}
				return c
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cal := tc.mutate(clone(tuesdayWednesday))
			err := cal.Validate()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIsClosed(t *testing.T) {
	assert.True(t, tuesdayWednesday.IsClosed(time.Monday))
	assert.False(t, tuesdayWednesday.IsClosed(time.Tuesday))
	assert.True(t, tuesdayWednesday.IsClosed(time.Sunday))
	assert.Equal(t, 6, calendar.ISOWeekday(time.Sunday))
	assert.Equal(t, 0, calendar.ISOWeekday(time.Monday))
}

func clone(c calendar.WeeklyCalendar) calendar.WeeklyCalendar {
	out := make(calendar.WeeklyCalendar, len(c))
	for i, day := range c {
		out[i] = append([]calendar.OpeningWindow{}, day...)
	}
	return out
}
