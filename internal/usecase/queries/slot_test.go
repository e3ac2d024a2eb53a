//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"calldesk-booking/internal/pkg/config"
	"calldesk-booking/internal/pkg/errs"
	"calldesk-booking/internal/pkg/metrics"
	"calldesk-booking/internal/usecase/queries"
	"calldesk-booking/tests/common/testutil"

	"github.com/google/go-cmp/cmp"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func days(n int) *int { return &n }

func formatAll(slots []time.Time) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Format(time.RFC3339)
	}
	return out
}

func TestSlotQueries_ListSlots(t *testing.T) {
	m := metrics.New()
	q := queries.NewSlotQueries(newDirectory(), config.NewTestConfig(), m, testutil.DiscardLogger())
	ctx := context.Background()

	t.Run("doctor from monday evening lists tuesday only", func(t *testing.T) {
		got, err := q.ListSlots(ctx, queries.SlotQuery{
			ResourceID: "2",
			StartDate:  "2016-06-20T20:09:47+02:00",
			Days:       days(1),
		})
		require.NoError(t, err)

		want := []string{
			"2016-06-21T09:00:00+02:00", "2016-06-21T10:00:00+02:00", "2016-06-21T11:00:00+02:00",
			"2016-06-21T12:00:00+02:00", "2016-06-21T13:00:00+02:00", "2016-06-21T14:00:00+02:00",
			"2016-06-21T15:00:00+02:00", "2016-06-21T16:00:00+02:00", "2016-06-21T17:00:00+02:00",
			"2016-06-21T18:00:00+02:00", "2016-06-21T19:00:00+02:00",
		}
		if diff := cmp.Diff(want, formatAll(got.Slots)); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "2", got.ResourceID)
		assert.Equal(t, "2016-06-21T20:09:47+02:00", got.EndDate.Format(time.RFC3339))
	})

	t.Run("days default to a week", func(t *testing.T) {
		got, err := q.ListSlots(ctx, queries.SlotQuery{
			ResourceID: "1",
			StartDate:  "2016-06-20T00:00:00Z",
		})
		require.NoError(t, err)
		assert.Equal(t, "2016-06-27T00:00:00Z", got.EndDate.Format(time.RFC3339))
		assert.NotEmpty(t, got.Slots)
		for _, s := range got.Slots {
			_, offset := s.Zone()
			assert.Zero(t, offset)
		}
	})

	t.Run("closed period returns an empty list", func(t *testing.T) {
		got, err := q.ListSlots(ctx, queries.SlotQuery{
			ResourceID: "1",
			StartDate:  "2016-06-19T00:00:00+02:00",
			Days:       days(1),
		})
		require.NoError(t, err)
		assert.NotNil(t, got.Slots)
		assert.Empty(t, got.Slots)
	})

	t.Run("slot counts are recorded", func(t *testing.T) {
		assert.Positive(t, promtest.CollectAndCount(m.SlotsOffered))
	})
}

func TestSlotQueries_ListSlotsErrors(t *testing.T) {
	q := queries.NewSlotQueries(newDirectory(), config.NewTestConfig(), nil, testutil.DiscardLogger())

	tests := []struct {
		name  string
		query queries.SlotQuery
		errIs error
	}{
		{
			name:  "missing start date",
			query: queries.SlotQuery{ResourceID: "1"},
			errIs: errs.ErrInvalidTimeRange,
		},
		{
			name:  "start date without offset",
			query: queries.SlotQuery{ResourceID: "1", StartDate: "2016-06-20T10:00:00"},
			errIs: errs.ErrInvalidTimeRange,
		},
		{
			name:  "not a date",
			query: queries.SlotQuery{ResourceID: "1", StartDate: "tomorrow"},
			errIs: errs.ErrInvalidTimeRange,
		},
		{
			name:  "zero days",
			query: queries.SlotQuery{ResourceID: "1", StartDate: "2016-06-20T10:00:00Z", Days: days(0)},
			errIs: errs.ErrInvalidDays,
		},
		{
			name:  "too many days",
			query: queries.SlotQuery{ResourceID: "1", StartDate: "2016-06-20T10:00:00Z", Days: days(32)},
			errIs: errs.ErrInvalidDays,
		},
		{
			name:  "unknown resource",
			query: queries.SlotQuery{ResourceID: "9", StartDate: "2016-06-20T10:00:00Z"},
			errIs: errs.ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := q.ListSlots(context.Background(), tt.query)
			assert.ErrorIs(t, err, tt.errIs)
			assert.Nil(t, got)
		})
	}
}
