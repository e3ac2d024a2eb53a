package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"
)

var (
	ErrInvalidTimeSlot    = errors.New("invalid time slot")
	ErrSlotInPast         = errors.New("slot is in the past")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	ErrEmptyContactName   = errors.New("contact name cannot be empty")
	ErrContactNameTooLong = errors.New("contact name is too long (max 255 characters)")
	ErrInvalidPartySize   = errors.New("party size must be between 1 and 100")
)

const (
	MaxContactNameLength = 255
	MaxPartySize         = 100
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.IsZero() || !end.After(start) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	return TimeSlot{
		start: start,
		end:   end,
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

func (ts TimeSlot) StartsBefore(t time.Time) bool {
	return ts.start.Before(t)
}

// PhoneNumber is a contact number normalized to E.164.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber parses raw with region as the default country and formats it
// as E.164 without spaces.
func NewPhoneNumber(raw, region string) (PhoneNumber, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PhoneNumber{}, ErrInvalidPhoneNumber
	}

	num, err := phonenumbers.Parse(raw, strings.ToUpper(region))
	if err != nil {
		return PhoneNumber{}, fmt.Errorf("%w: %v", ErrInvalidPhoneNumber, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return PhoneNumber{}, ErrInvalidPhoneNumber
	}

	return PhoneNumber{value: phonenumbers.Format(num, phonenumbers.E164)}, nil
}

func (p PhoneNumber) String() string {
	return p.value
}

type Contact struct {
	name  string
	phone PhoneNumber
}

func NewContact(name string, phone PhoneNumber) (Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Contact{}, ErrEmptyContactName
	}
	if len(name) > MaxContactNameLength {
		return Contact{}, ErrContactNameTooLong
	}
	return Contact{name: name, phone: phone}, nil
}

func (c Contact) Name() string {
	return c.name
}

func (c Contact) Phone() PhoneNumber {
	return c.phone
}

type PartySize struct {
	value int
}

func NewPartySize(n int) (PartySize, error) {
	if n < 1 || n > MaxPartySize {
		return PartySize{}, ErrInvalidPartySize
	}
	return PartySize{value: n}, nil
}

func (p PartySize) Int() int {
	return p.value
}
