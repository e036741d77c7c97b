package dataset

import (
	"context"

	"github.com/vietddude/launchdash/internal/core/domain"
)

// Source produces the raw launch records. Implementations only read.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string

	// Load returns every record in source order.
	Load(ctx context.Context) ([]domain.Record, error)
}

// Columns maps record fields to the column names of a tabular source.
type Columns struct {
	LaunchSite      string `yaml:"launch_site"`
	PayloadMass     string `yaml:"payload_mass"`
	Outcome         string `yaml:"outcome"`
	BoosterCategory string `yaml:"booster_category"`
}

// DefaultColumns returns the column names of the launch records CSV.
func DefaultColumns() Columns {
	return Columns{
		LaunchSite:      "Launch Site",
		PayloadMass:     "Payload Mass (kg)",
		Outcome:         "class",
		BoosterCategory: "Booster Version Category",
	}
}

// WithDefaults fills empty column names from DefaultColumns.
func (c Columns) WithDefaults() Columns {
	d := DefaultColumns()
	if c.LaunchSite == "" {
		c.LaunchSite = d.LaunchSite
	}
	if c.PayloadMass == "" {
		c.PayloadMass = d.PayloadMass
	}
	if c.Outcome == "" {
		c.Outcome = d.Outcome
	}
	if c.BoosterCategory == "" {
		c.BoosterCategory = d.BoosterCategory
	}
	return c
}

func (c Columns) required() []string {
	return []string{c.LaunchSite, c.PayloadMass, c.Outcome, c.BoosterCategory}
}
