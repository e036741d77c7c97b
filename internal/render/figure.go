package render

import (
	"fmt"

	"github.com/vietddude/launchdash/internal/core/domain"
)

// PieTitle returns the proportion chart title for a category.
func PieTitle(category string) string {
	if domain.IsAllCategory(category) {
		return "Total successful launches by launch site"
	}
	return fmt.Sprintf("Total successful launches at Launch Site: %s", category)
}

// ScatterTitle returns the correlation chart title for a category.
func ScatterTitle(category string) string {
	if domain.IsAllCategory(category) {
		return "Correlation between Payload Mass and Success for All Sites"
	}
	return fmt.Sprintf("Correlation between Payload Mass and Success for %s", category)
}

// BuildPie wraps an aggregate into a titled pie figure.
func BuildPie(category string, data domain.AggregateResult) domain.PieFigure {
	return domain.PieFigure{
		Title:    PieTitle(category),
		Category: category,
		Data:     data,
	}
}

// BuildScatter wraps scatter rows into a titled figure with the outcome axis
// pinned to 0 and 1.
func BuildScatter(category string, rng domain.PayloadRange, rows domain.ScatterRows) domain.ScatterFigure {
	return domain.ScatterFigure{
		Title:    ScatterTitle(category),
		Category: category,
		Range:    rng,
		Rows:     rows,
		YTicks:   []domain.Outcome{domain.OutcomeFailure, domain.OutcomeSuccess},
	}
}
