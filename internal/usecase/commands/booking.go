package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"calldesk-booking/internal/domain/calendar"
	"calldesk-booking/internal/domain/reservation"
	"calldesk-booking/internal/domain/resource"
	"calldesk-booking/internal/infra"
	"calldesk-booking/internal/pkg/config"
	"calldesk-booking/internal/pkg/errs"
	"calldesk-booking/internal/pkg/metrics"
	"calldesk-booking/internal/usecase/shared"
)

type BookingCommands interface {
	BookSlot(ctx context.Context, params BookSlotParams) (*BookSlotResult, error)
}

type bookingUseCaseImpl struct {
	directory shared.ResourceDirectory
	factory   *reservation.Factory
	cfg       config.BookingConfig
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewBookingUseCase(
	directory shared.ResourceDirectory,
	factory *reservation.Factory,
	cfg config.Config,
	m *metrics.Metrics,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		directory: directory,
		factory:   factory,
		cfg:       cfg.Booking,
		metrics:   m,
		logger:    logger,
	}
}

func (b *bookingUseCaseImpl) BookSlot(ctx context.Context, params BookSlotParams) (*BookSlotResult, error) {
	res, err := b.findResource(ctx, params.ResourceID)
	if err != nil {
		// ids from the path are only used as labels once resolved
		b.metrics.CountBooking(metrics.UnknownResource, "rejected")
		return nil, err
	}

	result, err := b.bookSlot(ctx, res, params)
	if err != nil {
		b.metrics.CountBooking(res.ID(), "rejected")
		return nil, err
	}
	b.metrics.CountBooking(res.ID(), "confirmed")
	return result, nil
}

func (b *bookingUseCaseImpl) bookSlot(ctx context.Context, res *resource.Resource, params BookSlotParams) (*BookSlotResult, error) {
	start, err := time.Parse(time.RFC3339, strings.TrimSpace(params.SlotID))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeRange)
	}

	slot, err := b.resolveSlot(ctx, res, start)
	if err != nil {
		return nil, err
	}

	booking, err := b.factory.CreateBooking(res, reservation.BookingInput{
		Slot:        slot,
		Name:        params.Name,
		PhoneNumber: params.PhoneNumber,
		PartySize:   params.PartySize,
	})
	if err != nil {
		return nil, mapBookingErr(err)
	}

	b.logger.InfoContext(ctx, "slot booked",
		slog.String("booking_id", booking.ID().String()),
		slog.String("resource_id", booking.ResourceID()),
		slog.String("slot", booking.TimeSlot().String()),
		slog.Int("party_size", booking.PartySize().Int()))

	return &BookSlotResult{
		BookingID:   booking.ID(),
		ResourceID:  booking.ResourceID(),
		Confirmed:   booking.Confirmed(),
		Start:       booking.TimeSlot().Start(),
		End:         booking.TimeSlot().End(),
		PhoneNumber: booking.Contact().Phone().String(),
	}, nil
}

// resolveSlot derives the booked interval from the window offering start.
func (b *bookingUseCaseImpl) resolveSlot(ctx context.Context, res *resource.Resource, start time.Time) (reservation.TimeSlot, error) {
	length := b.cfg.DefaultDuration
	window, ok := calendar.Locate(res.Calendar(), start)
	switch {
	case ok:
		length = window.SlotLength()
	case b.cfg.VerifySlot && !res.IsOpenOn(start):
		return reservation.TimeSlot{}, errs.Wrapf(errs.ErrSlotNotOffered, "%s is closed on %s", res.ID(), start.In(res.Timezone()).Weekday())
	case b.cfg.VerifySlot:
		return reservation.TimeSlot{}, errs.Wrapf(errs.ErrSlotNotOffered, "%s does not offer %s", res.ID(), start.Format(time.RFC3339))
	default:
		b.logger.WarnContext(ctx, "booking a slot outside the calendar",
			slog.String("resource_id", res.ID()),
			slog.Time("start", start),
			slog.Bool("open_day", res.IsOpenOn(start)))
	}

	slot, err := reservation.NewTimeSlot(start, start.Add(length))
	if err != nil {
		return reservation.TimeSlot{}, errs.Mark(err, errs.ErrInvalidTimeRange)
	}
	return slot, nil
}

func (b *bookingUseCaseImpl) findResource(ctx context.Context, id string) (*resource.Resource, error) {
	res, err := b.directory.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrResourceNotFound)
		}
		return nil, err
	}
	return res, nil
}

func mapBookingErr(err error) error {
	switch {
	case errors.Is(err, reservation.ErrInvalidPhoneNumber):
		return errs.Mark(err, errs.ErrInvalidPhoneNumber)
	case errors.Is(err, reservation.ErrEmptyContactName),
		errors.Is(err, reservation.ErrContactNameTooLong):
		return errs.Mark(err, errs.ErrInvalidContactName)
	case errors.Is(err, reservation.ErrInvalidPartySize):
		return errs.Mark(err, errs.ErrInvalidPartySize)
	case errors.Is(err, reservation.ErrSlotInPast):
		return errs.Mark(err, errs.ErrSlotInPast)
	case errors.Is(err, reservation.ErrInvalidTimeSlot):
		return errs.Mark(err, errs.ErrInvalidTimeRange)
	default:
		return errs.Wrap(err, "create booking")
	}
}
