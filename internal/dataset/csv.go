package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vietddude/launchdash/internal/core/domain"
)

// CSVSource reads launch records from a CSV file with a header row.
// Columns not named in Columns are ignored.
type CSVSource struct {
	Path    string
	Columns Columns
}

// NewCSVSource creates a CSV source using the default column names.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path, Columns: DefaultColumns()}
}

func (s *CSVSource) Name() string {
	return s.Path
}

// Load opens the file and parses every row.
func (s *CSVSource) Load(ctx context.Context) ([]domain.Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, loadError(s.Path, "open source", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return ParseCSV(ctx, s.Path, f, s.Columns)
}

// ParseCSV parses CSV data into records. name is used in errors only.
func ParseCSV(ctx context.Context, name string, r io.Reader, cols Columns) ([]domain.Record, error) {
	cols = cols.WithDefaults()
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, loadError(name, "empty source", nil)
	}
	if err != nil {
		return nil, loadError(name, "read header", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		index[h] = i
	}

	var missing []string
	for _, col := range cols.required() {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, loadError(name, "missing required columns "+strings.Join(missing, ", "), nil)
	}

	siteIdx := index[cols.LaunchSite]
	payloadIdx := index[cols.PayloadMass]
	outcomeIdx := index[cols.Outcome]
	boosterIdx := index[cols.BoosterCategory]

	var records []domain.Record
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, loadError(name, "cancelled", err)
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, loadError(name, fmt.Sprintf("line %d", line), err)
		}

		payload, err := strconv.ParseFloat(strings.TrimSpace(row[payloadIdx]), 64)
		if err != nil {
			return nil, loadError(name, fmt.Sprintf("line %d: invalid %s", line, cols.PayloadMass), err)
		}

		outcome, err := ParseOutcome(row[outcomeIdx])
		if err != nil {
			return nil, loadError(name, fmt.Sprintf("line %d: invalid %s", line, cols.Outcome), err)
		}

		records = append(records, domain.Record{
			LaunchSite:      strings.TrimSpace(row[siteIdx]),
			PayloadMass:     payload,
			Outcome:         outcome,
			BoosterCategory: strings.TrimSpace(row[boosterIdx]),
		})
	}

	return records, nil
}

// ParseOutcome accepts "0", "1" and their float spellings ("1.0").
func ParseOutcome(s string) (domain.Outcome, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	switch v {
	case 0:
		return domain.OutcomeFailure, nil
	case 1:
		return domain.OutcomeSuccess, nil
	}
	return 0, fmt.Errorf("outcome flag must be 0 or 1, got %v", v)
}
