package domain

import "strconv"

// AllCategory is the synthetic category value that selects every launch site.
const (
	AllCategory      = "All"
	AllCategoryLabel = "All Sites"
)

// Outcome is the binary mission outcome flag ("class" column).
type Outcome int

const (
	OutcomeFailure Outcome = 0
	OutcomeSuccess Outcome = 1
)

// Valid reports whether the flag is 0 or 1.
func (o Outcome) Valid() bool {
	return o == OutcomeFailure || o == OutcomeSuccess
}

func (o Outcome) String() string {
	return strconv.Itoa(int(o))
}

// Record represents one launch event. Records are immutable after load.
type Record struct {
	LaunchSite      string  `json:"launch_site"      db:"launch_site"`
	PayloadMass     float64 `json:"payload_mass_kg"  db:"payload_mass_kg"`
	Outcome         Outcome `json:"class"            db:"class"`
	BoosterCategory string  `json:"booster_category" db:"booster_version_category"`
}

// CategoryOption is a selectable value of the category control.
type CategoryOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// IsAllCategory reports whether a category value selects every site.
func IsAllCategory(category string) bool {
	return category == AllCategory
}
