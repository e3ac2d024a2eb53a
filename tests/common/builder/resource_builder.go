//go:build unit || e2e

package builder

import (
	"calldesk-booking/internal/domain/calendar"
	"calldesk-booking/internal/domain/resource"
	"calldesk-booking/internal/usecase/queries"
)

type ResourceBuilder struct {
	ID           string
	Name         string
	Number       string
	Address      string
	Type         resource.Type
	Timezone     string
	AsyncConfirm bool
	Calendar     calendar.WeeklyCalendar
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:           "1",
		Name:         "Les Garçons",
		Number:       "+33493808790",
		Address:      "3 rue Centrale, 06300 Nice",
		Type:         resource.TypeRestaurant,
		Timezone:     "Europe/Paris",
		AsyncConfirm: true,
		Calendar:     RestaurantCalendar(),
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

// AsDoctor switches to the weekday-only doctor calendar.
func (r *ResourceBuilder) AsDoctor() *ResourceBuilder {
	r.ID = "2"
	r.Name = "Durant"
	r.Number = "+33442380000"
	r.Address = "6 Rue d'Italie, 13100 Aix-en-Provence"
	r.Type = resource.TypeDoctor
	r.Calendar = DoctorCalendar()
	return r
}

// Build methods
func (r *ResourceBuilder) BuildDomain() (*resource.Resource, error) {
	return resource.NewResource(resource.Params{
		ID:           r.ID,
		Name:         r.Name,
		Number:       r.Number,
		Address:      r.Address,
		Type:         r.Type,
		Timezone:     r.Timezone,
		AsyncConfirm: r.AsyncConfirm,
		Calendar:     r.Calendar,
	})
}

func (r *ResourceBuilder) MustBuildDomain() *resource.Resource {
	res, err := r.BuildDomain()
	if err != nil {
		panic(err)
	}
	return res
}

func (r *ResourceBuilder) BuildReadModel() *queries.ResourceView {
	return &queries.ResourceView{
		ID:           r.ID,
		Name:         r.Name,
		Number:       r.Number,
		Address:      r.Address,
		Type:         string(r.Type),
		Timezone:     r.Timezone,
		AsyncConfirm: r.AsyncConfirm,
		Calendar:     r.Calendar,
	}
}

func window(start, end string, duration int, prob float64) calendar.OpeningWindow {
	return calendar.OpeningWindow{
		Start:    calendar.MustWallClock(start),
		End:      calendar.MustWallClock(end),
		Duration: duration,
		Prob:     prob,
	}
}

// RestaurantCalendar opens lunch and dinner from Tuesday to Saturday. Every slot is offered.
func RestaurantCalendar() calendar.WeeklyCalendar {
	lunch := window("11:30", "14:30", 60, 1)
	dinner := window("18:30", "22:30", 60, 1)
	return calendar.WeeklyCalendar{
		{},
		{lunch, dinner},
		{lunch, dinner},
		{lunch, dinner},
		{lunch, window("18:30", "23:30", 60, 1)},
		{lunch, dinner},
		{},
	}
}

// DoctorCalendar opens Monday to Friday with hourly slots. Every slot is offered.
func DoctorCalendar() calendar.WeeklyCalendar {
	return calendar.WeeklyCalendar{
		{window("10:00", "20:00", 60, 1)},
		{window("09:00", "20:00", 60, 1)},
		{window("09:00", "20:00", 60, 1)},
		{window("09:00", "20:00", 60, 1)},
		{window("09:00", "17:00", 60, 1)},
		{},
		{},
	}
}
