package response

import (
	"time"

	"calldesk-booking/internal/usecase/commands"
	"calldesk-booking/internal/usecase/queries"
)

type SlotListResponse struct {
	EndDate string   `json:"endDate"`
	Slots   []string `json:"slots"`
}

// FromSlotList renders instants in RFC 3339 with their UTC offset.
func FromSlotList(l *queries.SlotList) *SlotListResponse {
	slots := make([]string, len(l.Slots))
	for i, s := range l.Slots {
		slots[i] = s.Format(time.RFC3339)
	}
	return &SlotListResponse{
		EndDate: l.EndDate.Format(time.RFC3339),
		Slots:   slots,
	}
}

type BookingResponse struct {
	ID        string `json:"id"`
	Confirmed bool   `json:"confirmed"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

func FromBookSlotResult(r *commands.BookSlotResult) *BookingResponse {
	return &BookingResponse{
		ID:        r.BookingID.String(),
		Confirmed: r.Confirmed,
		Start:     r.Start.Format(time.RFC3339),
		End:       r.End.Format(time.RFC3339),
	}
}
