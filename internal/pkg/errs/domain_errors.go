package errs

import "errors"

// Sentinel errors shared by the query and command use cases
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Slot errors
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrInvalidDays      = errors.New("invalid number of days")
	ErrInvalidCalendar  = errors.New("invalid calendar")
	ErrSlotNotOffered   = errors.New("slot not offered")
	ErrSlotInPast       = errors.New("slot is in the past")

	// Booking errors
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	ErrInvalidPartySize   = errors.New("invalid party size")
	ErrInvalidContactName = errors.New("invalid contact name")

	// Call errors
	ErrInvalidTransferReason = errors.New("invalid transfer reason")
	ErrCallIDRequired        = errors.New("call id required")
)
