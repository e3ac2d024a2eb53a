package reservation

import (
	"calldesk-booking/internal/domain/resource"
	"calldesk-booking/internal/pkg/clock"
)

type Factory struct {
	Clock         clock.Clock
	DefaultRegion string
}

func NewFactory(clock clock.Clock, defaultRegion string) *Factory {
	return &Factory{
		Clock:         clock,
		DefaultRegion: defaultRegion,
	}
}

type BookingInput struct {
	Slot        TimeSlot
	Name        string
	PhoneNumber string
	PartySize   int
}

func (f *Factory) CreateBooking(resourceEntity *resource.Resource, in BookingInput) (*Booking, error) {
	phone, err := NewPhoneNumber(in.PhoneNumber, f.DefaultRegion)
	if err != nil {
		return nil, err
	}

	contact, err := NewContact(in.Name, phone)
	if err != nil {
		return nil, err
	}

	partySize, err := NewPartySize(in.PartySize)
	if err != nil {
		return nil, err
	}

	return NewBooking(resourceEntity.ID(), in.Slot, contact, partySize, f.Clock.Now())
}
