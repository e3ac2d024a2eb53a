package request

import (
	"strings"

	"calldesk-booking/internal/usecase/commands"
	"calldesk-booking/internal/usecase/queries"
)

type ListSlotsRequest struct {
	StartDate string `form:"startDate"`
	// StartDay is the legacy name of StartDate.
	StartDay string `form:"startDay"`
	Number   *int   `form:"number" binding:"omitempty,min=1"`
}

func (r *ListSlotsRequest) Start() string {
	if s := strings.TrimSpace(r.StartDate); s != "" {
		return s
	}
	return strings.TrimSpace(r.StartDay)
}

func (r *ListSlotsRequest) ToQuery(resourceID string) queries.SlotQuery {
	return queries.SlotQuery{
		ResourceID: resourceID,
		StartDate:  r.Start(),
		Days:       r.Number,
	}
}

// BookSlotRequest is read from the JSON body or from the query string.
type BookSlotRequest struct {
	Number      int    `json:"number" form:"number" binding:"required,min=1"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber" binding:"required"`
	Name        string `json:"name" form:"name" binding:"required,max=255"`
}

func (r *BookSlotRequest) ToParams(resourceID, slotID string) commands.BookSlotParams {
	return commands.BookSlotParams{
		ResourceID:  resourceID,
		SlotID:      slotID,
		PartySize:   r.Number,
		PhoneNumber: r.PhoneNumber,
		Name:        r.Name,
	}
}
