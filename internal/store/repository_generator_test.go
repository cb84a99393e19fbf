package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/models"
)

var generatorTestColumns = []string{
	"generator_id", "user_id", "name", "is_running", "current_start_time", "total_hours",
	"install_date", "last_service_date", "last_service_hours",
	"service_interval_hours", "service_interval_months", "created_at",
}

var usageLogColumns = []string{"log_id", "generator_id", "start_time", "end_time", "duration_hours", "created_at"}

func stoppedGeneratorRow(generatorID, userID int64, totalHours float64) *sqlmock.Rows {
	return sqlmock.NewRows(generatorTestColumns).
		AddRow(generatorID, userID, "Honda EU22i", false, nil, totalHours,
			nil, nil, 0.0, 250.0, 6, time.Now())
}

func TestGeneratorRepository_CreateGenerator(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGeneratorRepository(db, logger.Nop())

	installDate := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO generators`)).
		WithArgs(int64(7), "Honda EU22i", installDate, 250.0, 6).
		WillReturnRows(stoppedGeneratorRow(3, 7, 0))

	created, err := repo.CreateGenerator(context.Background(), models.Generator{
		UserID:                7,
		Name:                  "Honda EU22i",
		InstallDate:           &installDate,
		ServiceIntervalHours:  250,
		ServiceIntervalMonths: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.GeneratorID)
	assert.False(t, created.IsRunning)
	assert.Zero(t, created.TotalHours)
}

func TestGeneratorRepository_FindGenerator(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGeneratorRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE generator_id = $2 AND user_id = $1`)).
		WithArgs(int64(7), int64(3)).
		WillReturnRows(stoppedGeneratorRow(3, 7, 125.5))

	found, err := repo.FindGenerator(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), found.GeneratorID)
	assert.Equal(t, 125.5, found.TotalHours)
}

func TestGeneratorRepository_FindGenerator_NotOwned(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGeneratorRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE generator_id = $2 AND user_id = $1`)).
		WithArgs(int64(8), int64(3)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindGenerator(context.Background(), 8, 3)
	assert.ErrorIs(t, err, ErrGeneratorNotFound)
}

func TestGeneratorRepository_ListGenerators(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGeneratorRepository(db, logger.Nop())

	rows := sqlmock.NewRows(generatorTestColumns).
		AddRow(int64(3), int64(7), "Honda EU22i", false, nil, 125.5, nil, nil, 0.0, 250.0, 6, time.Now()).
		AddRow(int64(4), int64(7), "Backup Diesel", true, time.Now(), 980.0, nil, nil, 900.0, 500.0, 12, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1`)).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	generators, err := repo.ListGenerators(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, generators, 2)
	assert.Equal(t, "Backup Diesel", generators[1].Name)
	assert.True(t, generators[1].IsRunning)
}

func TestGeneratorRepository_ListGenerators_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGeneratorRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(generatorTestColumns))

	generators, err := repo.ListGenerators(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, generators)
	assert.Empty(t, generators)
}

func TestGeneratorRepository_StartRun(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGeneratorRepository(db, logger.Nop())

	startTime := time.Date(2026, time.February, 13, 16, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(`SET is_running = TRUE, current_start_time = $3`)).
		WithArgs(int64(7), int64(3), startTime).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.StartRun(context.Background(), 7, 3, startTime)
	assert.NoError(t, err)
}

func TestGeneratorRepository_StartRun_AlreadyRunning(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGeneratorRepository(db, logger.Nop())

	startTime := time.Date(2026, time.February, 13, 16, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(`SET is_running = TRUE, current_start_time = $3`)).
		WithArgs(int64(7), int64(3), startTime).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.StartRun(context.Background(), 7, 3, startTime)
	assert.ErrorIs(t, err, ErrToggleConflict)
}

func TestGeneratorRepository_StopRun(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGeneratorRepository(db, logger.Nop())

	startTime := time.Date(2026, time.February, 13, 16, 0, 0, 0, time.UTC)
	endTime := startTime.Add(150 * time.Minute)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SET is_running = FALSE`)).
		WithArgs(int64(7), int64(3), startTime, 2.5).
		WillReturnRows(sqlmock.NewRows([]string{"total_hours"}).AddRow(128.0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO usage_logs`)).
		WithArgs(int64(3), startTime, endTime, 2.5).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	totalHours, err := repo.StopRun(context.Background(), 7, 3, startTime, endTime, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 128.0, totalHours)
}

func TestGeneratorRepository_StopRun_RunAlreadyClosed(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGeneratorRepository(db, logger.Nop())

	startTime := time.Date(2026, time.February, 13, 16, 0, 0, 0, time.UTC)
	endTime := startTime.Add(time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SET is_running = FALSE`)).
		WithArgs(int64(7), int64(3), startTime, 1.0).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.StopRun(context.Background(), 7, 3, startTime, endTime, 1.0)
	assert.ErrorIs(t, err, ErrToggleConflict)
}

func TestGeneratorRepository_StopRun_LogInsertFailureRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGeneratorRepository(db, logger.Nop())

	startTime := time.Date(2026, time.February, 13, 16, 0, 0, 0, time.UTC)
	endTime := startTime.Add(time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SET is_running = FALSE`)).
		WithArgs(int64(7), int64(3), startTime, 1.0).
		WillReturnRows(sqlmock.NewRows([]string{"total_hours"}).AddRow(126.5))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO usage_logs`)).
		WithArgs(int64(3), startTime, endTime, 1.0).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	_, err := repo.StopRun(context.Background(), 7, 3, startTime, endTime, 1.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestGeneratorRepository_ListUsageLogs(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGeneratorRepository(db, logger.Nop())

	from := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	entryStart := time.Date(2026, time.February, 13, 16, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE generator_id = $2 AND user_id = $1`)).
		WithArgs(int64(7), int64(3)).
		WillReturnRows(stoppedGeneratorRow(3, 7, 128.0))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE generator_id = $1 AND start_time >= $2 AND start_time <= $3 ORDER BY start_time DESC`)).
		WithArgs(int64(3), from, to).
		WillReturnRows(sqlmock.NewRows(usageLogColumns).
			AddRow(int64(11), int64(3), entryStart, entryStart.Add(150*time.Minute), 2.5, time.Now()))

	entries, err := repo.ListUsageLogs(context.Background(), 7, 3, &from, &to)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(11), entries[0].LogID)
	assert.Equal(t, 2.5, entries[0].DurationHours)
}

func TestGeneratorRepository_ListUsageLogs_UnownedGenerator(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGeneratorRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE generator_id = $2 AND user_id = $1`)).
		WithArgs(int64(8), int64(3)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.ListUsageLogs(context.Background(), 8, 3, nil, nil)
	assert.ErrorIs(t, err, ErrGeneratorNotFound)
}

func TestGeneratorRepository_CorrectUsageLog(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGeneratorRepository(db, logger.Nop())

	oldStart := time.Date(2026, time.February, 13, 16, 0, 0, 0, time.UTC)
	newStart := oldStart.Add(30 * time.Minute)
	newEnd := newStart.Add(90 * time.Minute)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE OF l`)).
		WithArgs(int64(7), int64(3), int64(11)).
		WillReturnRows(sqlmock.NewRows(usageLogColumns).
			AddRow(int64(11), int64(3), oldStart, oldStart.Add(2*time.Hour), 2.0, time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE usage_logs`)).
		WithArgs(int64(11), newStart, newEnd, 1.5).
		WillReturnRows(sqlmock.NewRows(usageLogColumns).
			AddRow(int64(11), int64(3), newStart, newEnd, 1.5, time.Now()))
	mock.ExpectExec(regexp.QuoteMeta(`SET total_hours = total_hours + $2`)).
		WithArgs(int64(3), -0.5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	corrected, err := repo.CorrectUsageLog(context.Background(), 7, 3, 11, newStart, newEnd, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, corrected.DurationHours)
	assert.Equal(t, newStart, corrected.StartTime)
}

func TestGeneratorRepository_CorrectUsageLog_SameDurationSkipsAdjustment(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGeneratorRepository(db, logger.Nop())

	oldStart := time.Date(2026, time.February, 13, 16, 0, 0, 0, time.UTC)
	newStart := oldStart.Add(time.Hour)
	newEnd := newStart.Add(2 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE OF l`)).
		WithArgs(int64(7), int64(3), int64(11)).
		WillReturnRows(sqlmock.NewRows(usageLogColumns).
			AddRow(int64(11), int64(3), oldStart, oldStart.Add(2*time.Hour), 2.0, time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE usage_logs`)).
		WithArgs(int64(11), newStart, newEnd, 2.0).
		WillReturnRows(sqlmock.NewRows(usageLogColumns).
			AddRow(int64(11), int64(3), newStart, newEnd, 2.0, time.Now()))
	mock.ExpectCommit()

	corrected, err := repo.CorrectUsageLog(context.Background(), 7, 3, 11, newStart, newEnd, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, corrected.DurationHours)
}

func TestGeneratorRepository_CorrectUsageLog_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGeneratorRepository(db, logger.Nop())

	start := time.Date(2026, time.February, 13, 16, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE OF l`)).
		WithArgs(int64(7), int64(3), int64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.CorrectUsageLog(context.Background(), 7, 3, 99, start, start.Add(time.Hour), 1.0)
	assert.ErrorIs(t, err, ErrUsageLogNotFound)
}

func TestBuildUsageLogQuery(t *testing.T) {
	from := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		from      *time.Time
		to        *time.Time
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "unbounded",
			wantQuery: "SELECT log_id, generator_id, start_time, end_time, duration_hours, created_at FROM usage_logs WHERE generator_id = $1 ORDER BY start_time DESC",
			wantArgs:  []any{int64(3)},
		},
		{
			name:      "lower bound only",
			from:      &from,
			wantQuery: "SELECT log_id, generator_id, start_time, end_time, duration_hours, created_at FROM usage_logs WHERE generator_id = $1 AND start_time >= $2 ORDER BY start_time DESC",
			wantArgs:  []any{int64(3), from},
		},
		{
			name:      "both bounds",
			from:      &from,
			to:        &to,
			wantQuery: "SELECT log_id, generator_id, start_time, end_time, duration_hours, created_at FROM usage_logs WHERE generator_id = $1 AND start_time >= $2 AND start_time <= $3 ORDER BY start_time DESC",
			wantArgs:  []any{int64(3), from, to},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUsageLogQuery(3, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
