package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/models"
)

// generatorRepository is the PostgreSQL-backed implementation of
// [GeneratorRepository] over the "generators" and "usage_logs" tables.
//
// Both run-state transitions carry their precondition in the UPDATE's WHERE
// clause, so concurrent toggles on the same generator serialize on the row
// and the loser observes zero affected rows. Toggles on different
// generators touch different rows and do not contend.
type generatorRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewGeneratorRepository constructs a [GeneratorRepository] backed by the
// provided database connection and logger.
func NewGeneratorRepository(db *DB, logger *logger.Logger) GeneratorRepository {
	logger.Debug().Msg("creating generator repository")
	return &generatorRepository{
		db:     db,
		logger: logger,
	}
}

func scanGenerator(row interface{ Scan(...any) error }) (models.Generator, error) {
	var g models.Generator
	err := row.Scan(
		&g.GeneratorID, &g.UserID, &g.Name, &g.IsRunning, &g.CurrentStartTime, &g.TotalHours,
		&g.InstallDate, &g.LastServiceDate, &g.LastServiceHours,
		&g.ServiceIntervalHours, &g.ServiceIntervalMonths, &g.CreatedAt,
	)
	return g, err
}

// CreateGenerator persists g in the Stopped state with zero total hours.
func (r *generatorRepository) CreateGenerator(ctx context.Context, g models.Generator) (models.Generator, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createGenerator,
		g.UserID, g.Name, g.InstallDate, g.ServiceIntervalHours, g.ServiceIntervalMonths)

	created, err := scanGenerator(row)
	if err != nil {
		log.Err(err).Str("func", "*generatorRepository.CreateGenerator").Msg("error creating generator")
		return models.Generator{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindGenerator retrieves the generator owned by userID. Both "absent" and
// "owned by someone else" yield [ErrGeneratorNotFound].
func (r *generatorRepository) FindGenerator(ctx context.Context, userID, generatorID int64) (models.Generator, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findGenerator, userID, generatorID)
	found, err := scanGenerator(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Generator{}, ErrGeneratorNotFound
		}
		log.Err(err).Str("func", "*generatorRepository.FindGenerator").Msg("error searching generator")
		return models.Generator{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListGenerators returns all generators owned by userID.
func (r *generatorRepository) ListGenerators(ctx context.Context, userID int64) ([]models.Generator, error) {
	return r.listGenerators(ctx, listGenerators, userID)
}

// ListAllGenerators returns every generator, for the reminder worker.
func (r *generatorRepository) ListAllGenerators(ctx context.Context) ([]models.Generator, error) {
	return r.listGenerators(ctx, listAllGenerators)
}

func (r *generatorRepository) listGenerators(ctx context.Context, query string, args ...any) ([]models.Generator, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*generatorRepository.listGenerators").Msg("error listing generators")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	generators := make([]models.Generator, 0)
	for rows.Next() {
		g, err := scanGenerator(rows)
		if err != nil {
			log.Err(err).Str("func", "*generatorRepository.listGenerators").Msg("error scanning generator row")
			return nil, err
		}
		generators = append(generators, g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return generators, nil
}

// StartRun flips the generator to Running, guarded by "is currently
// stopped". Zero affected rows means a concurrent start already won →
// [ErrToggleConflict].
func (r *generatorRepository) StartRun(ctx context.Context, userID, generatorID int64, startTime time.Time) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, startRun, userID, generatorID, startTime)
	if err != nil {
		log.Err(err).Str("func", "*generatorRepository.StartRun").Msg("error starting run")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrToggleConflict
	}

	return nil
}

// StopRun flips the generator to Stopped and appends the usage-log entry in
// one transaction. The UPDATE's precondition pins the exact run being
// closed (is_running AND current_start_time = startTime), so two
// near-simultaneous stops cannot both bill the same run.
func (r *generatorRepository) StopRun(ctx context.Context, userID, generatorID int64, startTime, endTime time.Time, durationHours float64) (float64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*generatorRepository.StopRun").Msg("error beginning transaction")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer tx.Rollback()

	var totalHours float64
	row := tx.QueryRowContext(ctx, stopRun, userID, generatorID, startTime, durationHours)
	if err = row.Scan(&totalHours); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrToggleConflict
		}
		log.Err(err).Str("func", "*generatorRepository.StopRun").Msg("error stopping run")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	if _, err = tx.ExecContext(ctx, appendUsageLog, generatorID, startTime, endTime, durationHours); err != nil {
		log.Err(err).Str("func", "*generatorRepository.StopRun").Msg("error appending usage log")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*generatorRepository.StopRun").Msg("error committing transaction")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return totalHours, nil
}

// ListUsageLogs returns usage entries for the generator, optionally bounded
// by [from, to], newest first. Ownership is checked first so that non-owners
// receive [ErrGeneratorNotFound] rather than an empty history.
func (r *generatorRepository) ListUsageLogs(ctx context.Context, userID, generatorID int64, from, to *time.Time) ([]models.UsageLogEntry, error) {
	log := logger.FromContext(ctx)

	if _, err := r.FindGenerator(ctx, userID, generatorID); err != nil {
		return nil, err
	}

	query, args, err := buildUsageLogQuery(generatorID, from, to)
	if err != nil {
		log.Err(err).Str("func", "*generatorRepository.ListUsageLogs").Msg("error building usage log query")
		return nil, fmt.Errorf("error building usage log query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*generatorRepository.ListUsageLogs").Msg("error listing usage logs")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	entries := make([]models.UsageLogEntry, 0)
	for rows.Next() {
		var e models.UsageLogEntry
		if err = rows.Scan(&e.LogID, &e.GeneratorID, &e.StartTime, &e.EndTime, &e.DurationHours, &e.CreatedAt); err != nil {
			log.Err(err).Str("func", "*generatorRepository.ListUsageLogs").Msg("error scanning usage log row")
			return nil, err
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return entries, nil
}

// CorrectUsageLog rewrites one entry's time range and adjusts the owning
// generator's total hours by the duration delta, all inside a transaction.
// The generator's run state is never touched.
func (r *generatorRepository) CorrectUsageLog(ctx context.Context, userID, generatorID, logID int64, start, end time.Time, durationHours float64) (models.UsageLogEntry, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*generatorRepository.CorrectUsageLog").Msg("error beginning transaction")
		return models.UsageLogEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer tx.Rollback()

	var old models.UsageLogEntry
	row := tx.QueryRowContext(ctx, findUsageLogForUpdate, userID, generatorID, logID)
	if err = row.Scan(&old.LogID, &old.GeneratorID, &old.StartTime, &old.EndTime, &old.DurationHours, &old.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UsageLogEntry{}, ErrUsageLogNotFound
		}
		log.Err(err).Str("func", "*generatorRepository.CorrectUsageLog").Msg("error locking usage log")
		return models.UsageLogEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var corrected models.UsageLogEntry
	row = tx.QueryRowContext(ctx, correctUsageLog, logID, start, end, durationHours)
	if err = row.Scan(&corrected.LogID, &corrected.GeneratorID, &corrected.StartTime, &corrected.EndTime, &corrected.DurationHours, &corrected.CreatedAt); err != nil {
		log.Err(err).Str("func", "*generatorRepository.CorrectUsageLog").Msg("error correcting usage log")
		return models.UsageLogEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if delta := durationHours - old.DurationHours; delta != 0 {
		if _, err = tx.ExecContext(ctx, adjustGeneratorTotal, generatorID, delta); err != nil {
			log.Err(err).Str("func", "*generatorRepository.CorrectUsageLog").Msg("error adjusting generator total")
			return models.UsageLogEntry{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*generatorRepository.CorrectUsageLog").Msg("error committing transaction")
		return models.UsageLogEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return corrected, nil
}
