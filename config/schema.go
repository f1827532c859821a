package config

import "github.com/katalvlaran/taxisim/fare"

// Config is the top-level YAML structure.
type Config struct {
	Version       string                `yaml:"version"`
	Currency      string                `yaml:"currency"`
	Companies     []string              `yaml:"companies"` // shop sections of the scenario, in order; empty = unaffiliated shops
	DefaultTariff TariffConf            `yaml:"default_tariff"`
	Tariffs       map[string]TariffConf `yaml:"tariffs"`
	Dispatch      DispatchConf          `yaml:"dispatch"`
	Logging       LoggingConf           `yaml:"logging"`
	Metrics       MetricsConf           `yaml:"metrics"`
}

// TariffConf is one company's pricing.
type TariffConf struct {
	BookingFee float64 `yaml:"booking_fee"`
	PickupRate float64 `yaml:"pickup_rate"`
}

// DispatchConf tunes the call simulator.
type DispatchConf struct {
	DeclineProbability float64 `yaml:"decline_probability"`
	Seed               int64   `yaml:"seed"` // 0 = seed from the clock
	TimeoutMs          int     `yaml:"timeout_ms"`
}

// LoggingConf controls structured logging settings.
type LoggingConf struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"` // text|json
	File       string `yaml:"file"`   // empty = stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxAgeDays int    `yaml:"max_age_days"`
	MaxBackups int    `yaml:"max_backups"`
}

// MetricsConf controls metric export.
type MetricsConf struct {
	Textfile string `yaml:"textfile"` // Prometheus textfile-collector output; empty = disabled
}

const (
	defaultVersion            = "1"
	defaultCurrency           = "R"
	defaultDeclineProbability = 0.3
	defaultLogLevel           = "info"
	defaultLogFormat          = "text"
	defaultLogMaxSizeMB       = 10
	defaultLogMaxAgeDays      = 7
)

// Default returns the configuration of the two-company simulation:
// QnQ and Shopify with their standard booking fees and pickup rates.
func Default() *Config {
	def := fare.DefaultTariffs()
	cfg := &Config{
		Version:       defaultVersion,
		Currency:      defaultCurrency,
		Companies:     []string{"QnQ", "Shopify"},
		DefaultTariff: fromTariff(def.Default()),
		Tariffs:       make(map[string]TariffConf),
		Dispatch:      DispatchConf{DeclineProbability: defaultDeclineProbability},
		Logging: LoggingConf{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
	for _, name := range def.Companies() {
		t, _ := def.Lookup(name)
		cfg.Tariffs[name] = fromTariff(t)
	}

	return cfg
}

// FareTariffs converts the tariff section into a fare.Tariffs table.
func (c *Config) FareTariffs() *fare.Tariffs {
	t := fare.NewTariffs(c.DefaultTariff.toTariff())
	for name, tc := range c.Tariffs {
		t.Set(name, tc.toTariff())
	}

	return t
}

func (t TariffConf) toTariff() fare.Tariff {
	return fare.Tariff{BookingFee: t.BookingFee, PickupRate: t.PickupRate}
}

func fromTariff(t fare.Tariff) TariffConf {
	return TariffConf{BookingFee: t.BookingFee, PickupRate: t.PickupRate}
}
