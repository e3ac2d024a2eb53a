package response

import (
	"calldesk-booking/internal/domain/calendar"
	"calldesk-booking/internal/usecase/queries"
)

type ResourceResponse struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Number       string                  `json:"number"`
	Address      string                  `json:"address"`
	Type         string                  `json:"type"`
	Timezone     string                  `json:"timezone"`
	AsyncConfirm bool                    `json:"asyncConfirm"`
	Calendar     calendar.WeeklyCalendar `json:"calendar"`
}

func FromResourceView(v *queries.ResourceView) *ResourceResponse {
	return &ResourceResponse{
		ID:           v.ID,
		Name:         v.Name,
		Number:       v.Number,
		Address:      v.Address,
		Type:         v.Type,
		Timezone:     v.Timezone,
		AsyncConfirm: v.AsyncConfirm,
		Calendar:     v.Calendar,
	}
}

func FromResourceViews(views []*queries.ResourceView) []*ResourceResponse {
	res := make([]*ResourceResponse, len(views))
	for i, v := range views {
		res[i] = FromResourceView(v)
	}
	return res
}
