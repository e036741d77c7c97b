package domain

// FilterField identifies one observable variable of a FilterState.
type FilterField string

const (
	FieldCategory FilterField = "category"
	FieldRange    FilterField = "range"
)

// PayloadRange is an inclusive payload mass interval.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether v lies within [Low, High].
// An inverted range contains nothing.
func (r PayloadRange) Contains(v float64) bool {
	return r.Low <= v && v <= r.High
}

// Inverted reports whether Low is greater than High.
func (r PayloadRange) Inverted() bool {
	return r.Low > r.High
}

// FilterState is the current user selection of one dashboard session.
type FilterState struct {
	Category string       `json:"category"`
	Range    PayloadRange `json:"range"`
}

// SliderBounds describes the range control.
type SliderBounds struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}
