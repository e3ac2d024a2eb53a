package call

import "strings"

// Reason explains why the assistant hands a call over to a human.
type Reason string

const (
	ReasonAskedByUser          Reason = "TRANSFER_ASKED_BY_USER"
	ReasonDisconnected         Reason = "CALL_DISCONNECTED_BEFORE_BEING_DONE"
	ReasonTooManyNotUnderstood Reason = "TRANSFER_AFTER_TO_MANY_NOT_UNDERSTOOD"
	ReasonAfterError           Reason = "TRANSFER_AFTER_ERROR"
)

func (r Reason) String() string {
	return string(r)
}

func (r Reason) IsValid() bool {
	switch r {
	case ReasonAskedByUser, ReasonDisconnected, ReasonTooManyNotUnderstood, ReasonAfterError:
		return true
	default:
		return false
	}
}

func ParseReason(s string) (Reason, error) {
	r := Reason(strings.ToUpper(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", ErrInvalidReason
	}
	return r, nil
}
