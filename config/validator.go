package config

import (
	"fmt"
	"strings"
)

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	validFormats = map[string]bool{"text": true, "json": true}
)

// Validate checks the config for:
//   - Required fields (version, currency)
//   - Tariffs with negative or non-finite amounts
//   - Duplicate company names (case-insensitive) and companies with no tariff
//   - Dispatch and logging values out of range
func Validate(cfg *Config) error {
	if cfg.Version == "" {
		return fmt.Errorf("config: version is required")
	}
	var errs []string

	if strings.TrimSpace(cfg.Currency) == "" {
		errs = append(errs, "currency must not be empty")
	}
	if err := cfg.DefaultTariff.toTariff().Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("default_tariff: %v", err))
	}
	tariffKeys := make(map[string]bool, len(cfg.Tariffs))
	for name, t := range cfg.Tariffs {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			errs = append(errs, "tariffs: company name is required")
			continue
		}
		if tariffKeys[key] {
			errs = append(errs, fmt.Sprintf("tariffs: duplicate company %q", name))
		}
		tariffKeys[key] = true
		if err := t.toTariff().Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("tariffs.%s: %v", name, err))
		}
	}

	seen := make(map[string]int, len(cfg.Companies))
	for i, name := range cfg.Companies {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			errs = append(errs, fmt.Sprintf("companies[%d]: name is required", i))
			continue
		}
		if prev, ok := seen[key]; ok {
			errs = append(errs, fmt.Sprintf("duplicate company %q (first seen at companies[%d], again at companies[%d])", name, prev, i))
			continue
		}
		seen[key] = i
		if !tariffKeys[key] {
			errs = append(errs, fmt.Sprintf("companies[%d]: no tariff for %q", i, name))
		}
	}

	if p := cfg.Dispatch.DeclineProbability; !(p >= 0 && p <= 1) {
		errs = append(errs, fmt.Sprintf("dispatch.decline_probability: %v not in [0,1]", p))
	}
	if cfg.Dispatch.TimeoutMs < 0 {
		errs = append(errs, "dispatch.timeout_ms must be non-negative")
	}

	if !validLevels[strings.ToLower(cfg.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("logging.level: unknown level %q", cfg.Logging.Level))
	}
	if !validFormats[strings.ToLower(cfg.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("logging.format: must be text or json, got %q", cfg.Logging.Format))
	}
	if cfg.Logging.MaxSizeMB < 0 || cfg.Logging.MaxAgeDays < 0 || cfg.Logging.MaxBackups < 0 {
		errs = append(errs, "logging: rotation limits must be non-negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
