package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gentrackhq/gentrack/internal/logger"
	"github.com/gentrackhq/gentrack/internal/store"
	"github.com/gentrackhq/gentrack/models"
)

// Toggle response statuses.
const (
	StatusStarted = "started"
	StatusStopped = "stopped"
)

// monthsSentinel is reported as months-since-service when neither a
// last-service date nor an install date is known.
const monthsSentinel = 9999

// generatorService is the concrete implementation of GeneratorService.
//
// The toggle transition itself is unconditional: whichever half of the
// binary state the generator is in, the call flips it. Serialization
// against concurrent toggles on the same generator happens at the
// repository, whose conditional updates surface [store.ErrToggleConflict]
// for the losing caller.
type generatorService struct {
	generatorRepository store.GeneratorRepository

	// now is injected for deterministic transition tests.
	now func() time.Time

	logger *logger.Logger
}

// NewGeneratorService constructs a GeneratorService over the given
// repository.
func NewGeneratorService(generatorRepository store.GeneratorRepository, logger *logger.Logger) GeneratorService {
	return &generatorService{
		generatorRepository: generatorRepository,
		now:                 time.Now,
		logger:              logger,
	}
}

// Create enrolls a generator in the Stopped state with zero total hours.
func (s *generatorService) Create(ctx context.Context, userID int64, req models.CreateGeneratorRequest) (models.Generator, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" {
		return models.Generator{}, ErrInvalidDataProvided
	}
	if req.ServiceIntervalHours < 0 || req.ServiceIntervalMonths < 0 {
		return models.Generator{}, ErrInvalidDataProvided
	}

	created, err := s.generatorRepository.CreateGenerator(ctx, models.Generator{
		UserID:                userID,
		Name:                  req.Name,
		InstallDate:           req.InstallDate,
		ServiceIntervalHours:  req.ServiceIntervalHours,
		ServiceIntervalMonths: req.ServiceIntervalMonths,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("generator creation ended with error")
		return models.Generator{}, fmt.Errorf("generator creation ended with error: %w", err)
	}

	return created, nil
}

// Toggle flips the generator between Stopped and Running.
//
// Stopped → Running: records now as the run's start.
// Running → Stopped: computes the elapsed duration in hours, adds it to the
// total, and appends the usage-log entry atomically with the state change.
//
// The generator is read first; the subsequent conditional update pins the
// observed state, so two near-simultaneous stops cannot both bill the same
// run and two simultaneous starts cannot both succeed.
func (s *generatorService) Toggle(ctx context.Context, userID, generatorID int64) (models.ToggleResponse, error) {
	log := logger.FromContext(ctx)

	if generatorID <= 0 {
		return models.ToggleResponse{}, ErrInvalidDataProvided
	}

	generator, err := s.generatorRepository.FindGenerator(ctx, userID, generatorID)
	if err != nil {
		return models.ToggleResponse{}, err
	}

	now := s.now()

	if !generator.IsRunning {
		if err = s.generatorRepository.StartRun(ctx, userID, generatorID, now); err != nil {
			log.Err(err).Int64("generator_id", generatorID).Msg("starting run failed")
			return models.ToggleResponse{}, err
		}

		log.Info().Int64("generator_id", generatorID).Time("start_time", now).Msg("generator started")

		return models.ToggleResponse{
			Status:     StatusStarted,
			IsRunning:  true,
			StartTime:  &now,
			TotalHours: generator.TotalHours,
		}, nil
	}

	startTime := *generator.CurrentStartTime
	durationHours := now.Sub(startTime).Hours()

	totalHours, err := s.generatorRepository.StopRun(ctx, userID, generatorID, startTime, now, durationHours)
	if err != nil {
		log.Err(err).Int64("generator_id", generatorID).Msg("stopping run failed")
		return models.ToggleResponse{}, err
	}

	log.Info().
		Int64("generator_id", generatorID).
		Float64("duration_hours", durationHours).
		Float64("total_hours", totalHours).
		Msg("generator stopped")

	return models.ToggleResponse{
		Status:        StatusStopped,
		IsRunning:     false,
		DurationHours: &durationHours,
		TotalHours:    totalHours,
	}, nil
}

// List returns the user's generators with derived maintenance figures.
func (s *generatorService) List(ctx context.Context, userID int64) ([]models.GeneratorStatus, error) {
	log := logger.FromContext(ctx)

	generators, err := s.generatorRepository.ListGenerators(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("generator listing ended with error")
		return nil, fmt.Errorf("generator listing ended with error: %w", err)
	}

	now := s.now()
	statuses := make([]models.GeneratorStatus, 0, len(generators))
	for _, g := range generators {
		statuses = append(statuses, MaintenanceStatus(g, now))
	}

	return statuses, nil
}

// UsageLogs returns the generator's history, optionally bounded by [from, to].
func (s *generatorService) UsageLogs(ctx context.Context, userID, generatorID int64, from, to *time.Time) ([]models.UsageLogEntry, error) {
	if generatorID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	return s.generatorRepository.ListUsageLogs(ctx, userID, generatorID, from, to)
}

// CorrectUsageLog rewrites a historical entry's time range. The duration is
// recomputed here and the repository adjusts the generator's total hours by
// the delta in the same transaction; run state is never touched.
func (s *generatorService) CorrectUsageLog(ctx context.Context, userID, generatorID, logID int64, req models.CorrectUsageLogRequest) (models.UsageLogEntry, error) {
	log := logger.FromContext(ctx)

	if generatorID <= 0 || logID <= 0 {
		return models.UsageLogEntry{}, ErrInvalidDataProvided
	}
	if req.EndTime.Before(req.StartTime) {
		return models.UsageLogEntry{}, ErrNegativeDuration
	}

	durationHours := req.EndTime.Sub(req.StartTime).Hours()

	corrected, err := s.generatorRepository.CorrectUsageLog(ctx, userID, generatorID, logID, req.StartTime, req.EndTime, durationHours)
	if err != nil {
		log.Err(err).Int64("log_id", logID).Msg("usage log correction ended with error")
		return models.UsageLogEntry{}, err
	}

	return corrected, nil
}

// MaintenanceStatus derives the maintenance figures for a generator at the
// given instant.
//
// Hours-since-service is the runtime accumulated since the last service.
// Months-since-service is the calendar-month difference from the later of
// the last-service date and the install date; when neither is known it
// falls back to a large sentinel so month-based schedules read as overdue.
func MaintenanceStatus(g models.Generator, now time.Time) models.GeneratorStatus {
	hoursSince := g.TotalHours - g.LastServiceHours

	reference := g.LastServiceDate
	if reference == nil || (g.InstallDate != nil && g.InstallDate.After(*reference)) {
		reference = g.InstallDate
	}

	monthsSince := monthsSentinel
	if reference != nil {
		monthsSince = monthsBetween(*reference, now)
	}

	due := (g.ServiceIntervalHours > 0 && hoursSince >= g.ServiceIntervalHours) ||
		(g.ServiceIntervalMonths > 0 && monthsSince >= g.ServiceIntervalMonths)

	return models.GeneratorStatus{
		Generator:          g,
		HoursSinceService:  hoursSince,
		MonthsSinceService: monthsSince,
		ServiceDue:         due,
	}
}

// monthsBetween returns the number of whole calendar months from a to b,
// never negative.
func monthsBetween(a, b time.Time) int {
	if b.Before(a) {
		return 0
	}

	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}

	return months
}
