package resource

import (
	"errors"
	"strings"
	"time"

	"calldesk-booking/internal/domain/calendar"
)

var (
	ErrEmptyResourceID     = errors.New("resource id cannot be empty")
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrInvalidResourceType = errors.New("invalid resource type")
	ErrUnknownTimezone     = errors.New("unknown timezone")
)

const (
	MaxResourceNameLength = 255
)

type Resource struct {
	id           string
	name         string
	number       string
	address      string
	kind         Type
	timezone     *time.Location
	asyncConfirm bool
	calendar     calendar.WeeklyCalendar
}

type Params struct {
	ID           string
	Name         string
	Number       string
	Address      string
	Type         Type
	Timezone     string
	AsyncConfirm bool
	Calendar     calendar.WeeklyCalendar
}

func NewResource(p Params) (*Resource, error) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return nil, ErrEmptyResourceID
	}

	if err := validateResourceName(p.Name); err != nil {
		return nil, err
	}

	if !p.Type.IsValid() {
		return nil, ErrInvalidResourceType
	}

	loc, err := time.LoadLocation(p.Timezone)
	if err != nil || p.Timezone == "" {
		return nil, ErrUnknownTimezone
	}

	if err := p.Calendar.Validate(); err != nil {
		return nil, err
	}

	return &Resource{
		id:           id,
		name:         strings.TrimSpace(p.Name),
		number:       p.Number,
		address:      strings.TrimSpace(p.Address),
		kind:         p.Type,
		timezone:     loc,
		asyncConfirm: p.AsyncConfirm,
		calendar:     p.Calendar,
	}, nil
}

// IsOpenOn reports whether the resource has any opening window on the weekday of t,
// t being read in the resource's timezone.
func (r *Resource) IsOpenOn(t time.Time) bool {
	return !r.calendar.IsClosed(t.In(r.timezone).Weekday())
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() string                        { return r.id }
func (r *Resource) Name() string                      { return r.name }
func (r *Resource) Number() string                    { return r.number }
func (r *Resource) Address() string                   { return r.address }
func (r *Resource) Type() Type                        { return r.kind }
func (r *Resource) Timezone() *time.Location          { return r.timezone }
func (r *Resource) AsyncConfirm() bool                { return r.asyncConfirm }
func (r *Resource) Calendar() calendar.WeeklyCalendar { return r.calendar }
