package resource

type Type string

const (
	TypeRestaurant Type = "restaurant"
	TypeDoctor     Type = "doctor"
	TypeOther      Type = "other"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeRestaurant, TypeDoctor, TypeOther:
		return true
	default:
		return false
	}
}
