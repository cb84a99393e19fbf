package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SessionLifetime <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.RateLimit < 1 || cfg.App.RateWindow <= 0 {
		return ErrInvalidRateLimitConfigs
	}

	if cfg.Workers.SessionSweepInterval <= 0 || cfg.Workers.ReminderInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
