package postgres

import (
	"context"
	"fmt"

	"github.com/vietddude/launchdash/internal/core/domain"
)

// TableName is the table holding launch records.
const TableName = "launch_records"

const (
	selectRecordsQuery = `
		SELECT launch_site, payload_mass_kg, class, booster_version_category
		FROM launch_records
		ORDER BY id`

	insertRecordQuery = `
		INSERT INTO launch_records (launch_site, payload_mass_kg, class, booster_version_category)
		VALUES (:launch_site, :payload_mass_kg, :class, :booster_version_category)`
)

type recordRow struct {
	LaunchSite      string  `db:"launch_site"`
	PayloadMass     float64 `db:"payload_mass_kg"`
	Class           int16   `db:"class"`
	BoosterCategory string  `db:"booster_version_category"`
}

// RecordRepo reads and replaces launch records. It implements dataset.Source.
type RecordRepo struct {
	db *DB
}

// NewRecordRepo creates a new PostgreSQL launch record repository.
func NewRecordRepo(db *DB) *RecordRepo {
	return &RecordRepo{db: db}
}

// Name identifies the repository as a dataset source.
func (r *RecordRepo) Name() string {
	return "postgres:" + TableName
}

// Load returns every launch record in insertion order.
func (r *RecordRepo) Load(ctx context.Context) ([]domain.Record, error) {
	var rows []recordRow
	if err := r.db.SelectContext(ctx, &rows, selectRecordsQuery); err != nil {
		return nil, fmt.Errorf("failed to list launch records: %w", err)
	}

	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.Record{
			LaunchSite:      row.LaunchSite,
			PayloadMass:     row.PayloadMass,
			Outcome:         domain.Outcome(row.Class),
			BoosterCategory: row.BoosterCategory,
		})
	}
	return records, nil
}

// Replace deletes every stored record and inserts records in one transaction.
func (r *RecordRepo) Replace(ctx context.Context, records []domain.Record) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+TableName); err != nil {
		return fmt.Errorf("failed to clear launch records: %w", err)
	}

	for i, rec := range records {
		row := recordRow{
			LaunchSite:      rec.LaunchSite,
			PayloadMass:     rec.PayloadMass,
			Class:           int16(rec.Outcome),
			BoosterCategory: rec.BoosterCategory,
		}
		if _, err := tx.NamedExecContext(ctx, insertRecordQuery, row); err != nil {
			return fmt.Errorf("failed to insert launch record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit launch records: %w", err)
	}
	return nil
}
