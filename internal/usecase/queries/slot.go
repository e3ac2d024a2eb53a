package queries

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"calldesk-booking/internal/domain/calendar"
	"calldesk-booking/internal/pkg/config"
	"calldesk-booking/internal/pkg/errs"
	"calldesk-booking/internal/pkg/metrics"
	"calldesk-booking/internal/usecase/shared"
)

type SlotQueries interface {
	ListSlots(ctx context.Context, q SlotQuery) (*SlotList, error)
}

type slotQueriesImpl struct {
	directory shared.ResourceDirectory
	cfg       config.SlotsConfig
	metrics   *metrics.Metrics
	logger    *slog.Logger
	expandOpt []calendar.Option
}

// NewSlotQueries builds the availability use case. opts are passed to every
// expansion, e.g. a seeded random source.
func NewSlotQueries(
	directory shared.ResourceDirectory,
	cfg config.Config,
	m *metrics.Metrics,
	logger *slog.Logger,
	opts ...calendar.Option,
) SlotQueries {
	return &slotQueriesImpl{
		directory: directory,
		cfg:       cfg.Slots,
		metrics:   m,
		logger:    logger,
		expandOpt: opts,
	}
}

func (q *slotQueriesImpl) ListSlots(ctx context.Context, in SlotQuery) (*SlotList, error) {
	startDate := strings.TrimSpace(in.StartDate)
	if startDate == "" {
		return nil, errs.Wrap(errs.ErrInvalidTimeRange, "startDate is required")
	}
	start, err := time.Parse(time.RFC3339, startDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeRange)
	}

	days := q.cfg.DefaultDays
	if in.Days != nil {
		days = *in.Days
	}
	if days < 1 || days > q.cfg.MaxDays {
		return nil, errs.Wrapf(errs.ErrInvalidDays, "number must be between 1 and %d", q.cfg.MaxDays)
	}

	res, err := findResource(ctx, q.directory, in.ResourceID)
	if err != nil {
		return nil, err
	}

	end := start.AddDate(0, 0, days)
	slots, err := calendar.Expand(start, end, res.Calendar(), q.expandOpt...)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidTimeRange):
			return nil, errs.Mark(err, errs.ErrInvalidTimeRange)
		case errors.Is(err, calendar.ErrInvalidCalendar):
			q.logger.ErrorContext(ctx, "resource calendar is malformed",
				slog.String("resource_id", res.ID()),
				slog.String("error", err.Error()))
			return nil, errs.Mark(err, errs.ErrInvalidCalendar)
		default:
			return nil, err
		}
	}

	q.logger.DebugContext(ctx, "slots expanded",
		slog.String("resource_id", res.ID()),
		slog.Time("start", start),
		slog.Time("end", end),
		slog.Int("count", len(slots)))

	q.metrics.ObserveSlots(res.ID(), len(slots))

	if slots == nil {
		slots = []time.Time{}
	}

	return &SlotList{
		ResourceID: res.ID(),
		StartDate:  start,
		EndDate:    end,
		Slots:      slots,
	}, nil
}
