package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT user_id, login, name, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createSession = `INSERT INTO sessions (session_id, user_id, expires_at)
    VALUES ($1, $2, $3);`

	findSession = `SELECT session_id, user_id, expires_at, created_at
    FROM sessions
    WHERE session_id = $1;`

	deleteSession = `DELETE FROM sessions
    WHERE session_id = $1;`

	deleteExpiredSessions = `DELETE FROM sessions
    WHERE expires_at <= $1;`

	createAPIKey = `INSERT INTO api_keys (user_id, name, key_hash, key_hint)
    VALUES ($1, $2, $3, $4)
    RETURNING key_id, user_id, name, key_hash, key_hint, last_used_at, created_at;`

	listAPIKeys = `SELECT key_id, user_id, name, key_hash, key_hint, last_used_at, created_at
    FROM api_keys
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	findAPIKeyByHash = `SELECT key_id, user_id, name, key_hash, key_hint, last_used_at, created_at
    FROM api_keys
    WHERE key_hash = $1;`

	touchAPIKey = `UPDATE api_keys
    SET last_used_at = $2
    WHERE key_id = $1;`

	resetAPIKey = `UPDATE api_keys
    SET key_hash = $3, key_hint = $4, last_used_at = NULL
    WHERE key_id = $2 AND user_id = $1
    RETURNING key_id, user_id, name, key_hash, key_hint, last_used_at, created_at;`

	deleteAPIKey = `DELETE FROM api_keys
    WHERE key_id = $2 AND user_id = $1;`

	createGenerator = `INSERT INTO generators
        (user_id, name, install_date, service_interval_hours, service_interval_months)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING generator_id, user_id, name, is_running, current_start_time, total_hours,
        install_date, last_service_date, last_service_hours,
        service_interval_hours, service_interval_months, created_at;`

	generatorColumns = `generator_id, user_id, name, is_running, current_start_time, total_hours,
        install_date, last_service_date, last_service_hours,
        service_interval_hours, service_interval_months, created_at`

	findGenerator = `SELECT ` + generatorColumns + `
    FROM generators
    WHERE generator_id = $2 AND user_id = $1;`

	listGenerators = `SELECT ` + generatorColumns + `
    FROM generators
    WHERE user_id = $1
    ORDER BY generator_id;`

	listAllGenerators = `SELECT ` + generatorColumns + `
    FROM generators
    ORDER BY generator_id;`

	// Run-state preconditions ride in the WHERE clause: zero rows affected
	// means a concurrent toggle won the race.
	startRun = `UPDATE generators
    SET is_running = TRUE, current_start_time = $3
    WHERE generator_id = $2 AND user_id = $1 AND is_running = FALSE;`

	stopRun = `UPDATE generators
    SET is_running = FALSE, current_start_time = NULL, total_hours = total_hours + $4
    WHERE generator_id = $2 AND user_id = $1 AND is_running = TRUE AND current_start_time = $3
    RETURNING total_hours;`

	appendUsageLog = `INSERT INTO usage_logs (generator_id, start_time, end_time, duration_hours)
    VALUES ($1, $2, $3, $4);`

	findUsageLogForUpdate = `SELECT l.log_id, l.generator_id, l.start_time, l.end_time, l.duration_hours, l.created_at
    FROM usage_logs l
    JOIN generators g ON g.generator_id = l.generator_id
    WHERE l.log_id = $3 AND l.generator_id = $2 AND g.user_id = $1
    FOR UPDATE OF l;`

	correctUsageLog = `UPDATE usage_logs
    SET start_time = $2, end_time = $3, duration_hours = $4
    WHERE log_id = $1
    RETURNING log_id, generator_id, start_time, end_time, duration_hours, created_at;`

	adjustGeneratorTotal = `UPDATE generators
    SET total_hours = total_hours + $2
    WHERE generator_id = $1;`
)

// buildUsageLogQuery builds the usage-log listing query with its optional
// date-range bounds.
func buildUsageLogQuery(generatorID int64, from, to *time.Time) (string, []any, error) {
	builder := sq.Select("log_id", "generator_id", "start_time", "end_time", "duration_hours", "created_at").
		From("usage_logs").
		Where(sq.Eq{"generator_id": generatorID}).
		OrderBy("start_time DESC").
		PlaceholderFormat(sq.Dollar)

	if from != nil {
		builder = builder.Where(sq.GtOrEq{"start_time": *from})
	}
	if to != nil {
		builder = builder.Where(sq.LtOrEq{"start_time": *to})
	}

	return builder.ToSql()
}
