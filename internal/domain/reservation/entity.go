package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a slot held for a contact. Bookings are not stored.
type Booking struct {
	id         uuid.UUID
	resourceID string
	timeSlot   TimeSlot
	contact    Contact
	partySize  PartySize
	confirmed  bool
	createdAt  time.Time
}

func NewBooking(
	resourceID string,
	slot TimeSlot,
	contact Contact,
	partySize PartySize,
	now time.Time,
) (*Booking, error) {
	if slot.StartsBefore(now) {
		return nil, ErrSlotInPast
	}

	return &Booking{
		id:         uuid.New(),
		resourceID: resourceID,
		timeSlot:   slot,
		contact:    contact,
		partySize:  partySize,
		confirmed:  true,
		createdAt:  now,
	}, nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ResourceID() string   { return b.resourceID }
func (b *Booking) TimeSlot() TimeSlot   { return b.timeSlot }
func (b *Booking) Contact() Contact     { return b.contact }
func (b *Booking) PartySize() PartySize { return b.partySize }
func (b *Booking) Confirmed() bool      { return b.confirmed }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
