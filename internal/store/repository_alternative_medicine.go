// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/models"
)

// seedData is the fixed WHO-style reference dataset inserted once into an
// empty alternative_medicines table: 6 rows spanning 5 conditions.
var seedData = []models.AlternativeMedicine{
	{Condition: "Fever", MedicineName: "Paracetamol", AlternativeName: "Dolo-650"},
	{Condition: "Fever", MedicineName: "Paracetamol", AlternativeName: "Crocin"},
	{Condition: "Cold", MedicineName: "Cetirizine", AlternativeName: "Levocetirizine"},
	{Condition: "Headache", MedicineName: "Paracetamol", AlternativeName: "Ibuprofen"},
	{Condition: "Diabetes", MedicineName: "Metformin", AlternativeName: "Glimepiride"},
	{Condition: "Hypertension", MedicineName: "Amlodipine", AlternativeName: "Losartan"},
}

// alternativeMedicineRepository is the SQL-backed implementation of
// [AlternativeMedicineRepository]. The table it serves is reference data:
// seeded once, read-only afterwards.
type alternativeMedicineRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAlternativeMedicineRepository constructs an
// [AlternativeMedicineRepository] backed by the provided database connection
// and logger.
func NewAlternativeMedicineRepository(db *DB, logger *logger.Logger) AlternativeMedicineRepository {
	logger.Debug().Msg("creating alternative medicine repository")
	return &alternativeMedicineRepository{
		db:     db,
		logger: logger,
	}
}

// ListAlternativeMedicines returns the reference rows, optionally filtered by
// condition name. An empty condition returns the whole table.
func (r *alternativeMedicineRepository) ListAlternativeMedicines(ctx context.Context, condition string) ([]models.AlternativeMedicine, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select("alternative_id", "condition", "medicine_name", "alternative_name").
		From(models.AlternativeMedicine{}.TableName())

	if condition != "" {
		builder = builder.Where(sq.Eq{"condition": condition})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*alternativeMedicineRepository.ListAlternativeMedicines").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*alternativeMedicineRepository.ListAlternativeMedicines").Msg("failed to query alternative medicines")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var alternatives []models.AlternativeMedicine
	for rows.Next() {
		var a models.AlternativeMedicine
		if err := rows.Scan(&a.AlternativeID, &a.Condition, &a.MedicineName, &a.AlternativeName); err != nil {
			log.Err(err).Str("func", "*alternativeMedicineRepository.ListAlternativeMedicines").Msg("failed to scan alternative medicine row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		alternatives = append(alternatives, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return alternatives, nil
}

// Seed inserts the fixed reference dataset in one transaction if the table is
// empty. Calling it against a non-empty table is a no-op, so repeated startups
// never duplicate rows.
func (r *alternativeMedicineRepository) Seed(ctx context.Context) error {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := r.db.builder.
		Select("COUNT(*)").
		From(models.AlternativeMedicine{}.TableName()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*alternativeMedicineRepository.Seed").Msg("failed to count alternative medicines")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if count > 0 {
		log.Debug().
			Str("func", "*alternativeMedicineRepository.Seed").
			Int64("rows", count).
			Msg("alternative medicines already seeded, skipping")
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*alternativeMedicineRepository.Seed").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	insert := r.db.builder.
		Insert(models.AlternativeMedicine{}.TableName()).
		Columns("condition", "medicine_name", "alternative_name")
	for _, row := range seedData {
		insert = insert.Values(row.Condition, row.MedicineName, row.AlternativeName)
	}

	insertQuery, insertArgs, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		log.Err(err).Str("func", "*alternativeMedicineRepository.Seed").Msg("failed to insert seed rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*alternativeMedicineRepository.Seed").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "*alternativeMedicineRepository.Seed").
		Int("rows", len(seedData)).
		Msg("alternative medicines reference data seeded")

	return nil
}
