package queries

import (
	"time"

	"calldesk-booking/internal/domain/calendar"
)

// Read models (DTO for read side)
type ResourceView struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Number       string                  `json:"number"`
	Address      string                  `json:"address"`
	Type         string                  `json:"type"`
	Timezone     string                  `json:"timezone"`
	AsyncConfirm bool                    `json:"async_confirm"`
	Calendar     calendar.WeeklyCalendar `json:"calendar"`
}

type SlotQuery struct {
	ResourceID string
	StartDate  string
	Days       *int
}

type SlotList struct {
	ResourceID string      `json:"resource_id"`
	StartDate  time.Time   `json:"start_date"`
	EndDate    time.Time   `json:"end_date"`
	Slots      []time.Time `json:"slots"`
}
