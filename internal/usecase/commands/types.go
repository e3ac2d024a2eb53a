package commands

import (
	"time"

	"github.com/google/uuid"
)

type BookSlotParams struct {
	ResourceID  string
	SlotID      string
	PartySize   int
	PhoneNumber string
	Name        string
}

type BookSlotResult struct {
	BookingID   uuid.UUID
	ResourceID  string
	Confirmed   bool
	Start       time.Time
	End         time.Time
	PhoneNumber string
}

type TransferResult struct {
	CallID      string
	Reason      string
	Transferred bool
}
