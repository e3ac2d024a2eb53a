package call

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCallID   = errors.New("call id cannot be empty")
	ErrInvalidReason = errors.New("invalid transfer reason")
)

// Transfer asks the telephony provider to move a live call to a human agent.
type Transfer struct {
	callID string
	reason Reason
}

func NewTransfer(callID, reason string) (Transfer, error) {
	callID = strings.TrimSpace(callID)
	if callID == "" {
		return Transfer{}, ErrEmptyCallID
	}

	r, err := ParseReason(reason)
	if err != nil {
		return Transfer{}, err
	}

	return Transfer{callID: callID, reason: r}, nil
}

func (t Transfer) CallID() string { return t.callID }
func (t Transfer) Reason() Reason { return t.reason }
