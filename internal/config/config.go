package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// Config конфигурация сервиса, загружаемая из config.toml
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	Lot       LotConfig       `toml:"lot"`
	Pricing   PricingConfig   `toml:"pricing"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`  // путь к файлу логов, пустая строка - только stdout
	Level string `toml:"level"` // debug, info, warn, error
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// RateLimitConfig настройки ограничения частоты запросов
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`   // запросов в секунду
	Burst   int     `toml:"burst"` // размер всплеска
}

// LotConfig статическая конфигурация парковки. Загружается один раз при
// старте; структура парковки после этого не меняется.
type LotConfig struct {
	Name          string        `toml:"name"`
	Assignment    string        `toml:"assignment"` // lowest_level_first | most_free_level_first
	Levels        []LevelConfig `toml:"levels"`
	Compatibility CompatConfig  `toml:"compatibility"`
}

// LevelConfig конфигурация одного уровня парковки
type LevelConfig struct {
	Number int          `toml:"number"`
	Spots  []SpotConfig `toml:"spots"`
}

// SpotConfig конфигурация одного места. ID опционален: при нуле место
// получает идентификатор номер_уровня*100 + порядковый номер на уровне.
type SpotConfig struct {
	ID   int64  `toml:"id"`
	Type string `toml:"type"`
}

// CompatConfig матрица совместимости транспорта и мест
type CompatConfig struct {
	WildcardSpotTypes []string            `toml:"wildcard_spot_types"`
	Matrix            map[string][]string `toml:"matrix"`
}

// PricingConfig настройки тарификации
type PricingConfig struct {
	Strategy           string           `toml:"strategy"`             // hourly | flat
	HourlyRate         types.Money      `toml:"hourly_rate"`          // "10.00"
	BillingUnitSeconds int              `toml:"billing_unit_seconds"` // 3600 = час
	FlatAmount         types.Money      `toml:"flat_amount"`
	TaxPercent         float64          `toml:"tax_percent"`
	Discounts          []DiscountConfig `toml:"discounts"`
}

// DiscountConfig конфигурация одной скидки
type DiscountConfig struct {
	Type    string      `toml:"type"` // percent | flat
	Percent float64     `toml:"percent"`
	Amount  types.Money `toml:"amount"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: http_port must be in (0, 65535]", ErrInvalidServer)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("%w: read_timeout and write_timeout must be positive", ErrInvalidServer)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown_timeout must be positive", ErrInvalidServer)
	}

	if c.Logs.Level == "" {
		return fmt.Errorf("%w: level is required", ErrInvalidLogs)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			return fmt.Errorf("%w: rps must be positive", ErrInvalidRateLimit)
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("%w: burst must be positive", ErrInvalidRateLimit)
		}
	}

	if err := c.validateLot(); err != nil {
		return err
	}

	return c.validatePricing()
}

func (c *Config) validateLot() error {
	if c.Lot.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidLot)
	}

	switch c.Lot.Assignment {
	case "", "lowest_level_first", "most_free_level_first":
	default:
		return fmt.Errorf("%w: unknown assignment strategy %q", ErrInvalidLot, c.Lot.Assignment)
	}

	if len(c.Lot.Levels) < domain.MinLevels || len(c.Lot.Levels) > domain.MaxLevels {
		return fmt.Errorf("%w: levels count must be in [%d, %d]", ErrInvalidLot, domain.MinLevels, domain.MaxLevels)
	}

	for _, level := range c.Lot.Levels {
		if level.Number <= 0 {
			return fmt.Errorf("%w: level number must be positive", ErrInvalidLot)
		}
		if len(level.Spots) == 0 {
			return fmt.Errorf("%w: level %d has no spots", ErrInvalidLot, level.Number)
		}
		if len(level.Spots) > domain.MaxSpotsPerLevel {
			return fmt.Errorf("%w: level %d exceeds %d spots", ErrInvalidLot, level.Number, domain.MaxSpotsPerLevel)
		}
		for _, spot := range level.Spots {
			if spot.Type == "" {
				return fmt.Errorf("%w: spot on level %d has no type", ErrInvalidLot, level.Number)
			}
			if spot.ID < 0 {
				return fmt.Errorf("%w: spot id must not be negative", ErrInvalidLot)
			}
		}
	}

	return nil
}

func (c *Config) validatePricing() error {
	switch c.Pricing.Strategy {
	case "hourly":
		if c.Pricing.HourlyRate <= 0 {
			return fmt.Errorf("%w: hourly_rate must be positive", ErrInvalidPricing)
		}
	case "flat":
		if c.Pricing.FlatAmount <= 0 {
			return fmt.Errorf("%w: flat_amount must be positive", ErrInvalidPricing)
		}
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidPricing, c.Pricing.Strategy)
	}

	if c.Pricing.BillingUnitSeconds < 0 {
		return fmt.Errorf("%w: billing_unit_seconds must not be negative", ErrInvalidPricing)
	}
	if c.Pricing.TaxPercent < 0 || c.Pricing.TaxPercent > 100 {
		return fmt.Errorf("%w: tax_percent must be in [0, 100]", ErrInvalidPricing)
	}

	for _, d := range c.Pricing.Discounts {
		switch d.Type {
		case "percent":
			if d.Percent <= 0 || d.Percent > 100 {
				return fmt.Errorf("%w: percent discount must be in (0, 100]", ErrInvalidPricing)
			}
		case "flat":
			if d.Amount <= 0 {
				return fmt.Errorf("%w: flat discount amount must be positive", ErrInvalidPricing)
			}
		default:
			return fmt.Errorf("%w: unknown discount type %q", ErrInvalidPricing, d.Type)
		}
	}

	return nil
}

// BuildLevels собирает уровни парковки из конфигурации, выдавая места
// с авто-идентификаторами там, где id не задан явно.
func (c *LotConfig) BuildLevels() []*domain.Level {
	levels := make([]*domain.Level, 0, len(c.Levels))
	for _, lc := range c.Levels {
		level := &domain.Level{Number: lc.Number}
		for i, sc := range lc.Spots {
			id := sc.ID
			if id == 0 {
				id = int64(lc.Number*domain.SpotIDLevelStride + i + 1)
			}
			level.Spots = append(level.Spots, &domain.Spot{
				ID:          id,
				LevelNumber: lc.Number,
				Type:        domain.SpotType(sc.Type),
			})
		}
		levels = append(levels, level)
	}
	return levels
}

// BuildCompatRule собирает правило совместимости из конфигурации.
// Пустая секция compatibility означает стандартную матрицу.
func (c *LotConfig) BuildCompatRule() *domain.CompatRule {
	if len(c.Compatibility.WildcardSpotTypes) == 0 && len(c.Compatibility.Matrix) == 0 {
		return domain.DefaultCompatRule()
	}

	wildcard := make([]domain.SpotType, 0, len(c.Compatibility.WildcardSpotTypes))
	for _, st := range c.Compatibility.WildcardSpotTypes {
		wildcard = append(wildcard, domain.SpotType(st))
	}

	matrix := make(map[domain.VehicleType][]domain.SpotType, len(c.Compatibility.Matrix))
	for vt, spotTypes := range c.Compatibility.Matrix {
		sts := make([]domain.SpotType, 0, len(spotTypes))
		for _, st := range spotTypes {
			sts = append(sts, domain.SpotType(st))
		}
		matrix[domain.VehicleType(vt)] = sts
	}

	return domain.NewCompatRule(wildcard, matrix)
}

// BillingUnit возвращает длительность расчётной единицы тарифа
func (c *PricingConfig) BillingUnit() time.Duration {
	if c.BillingUnitSeconds <= 0 {
		return domain.DefaultBillingUnitSeconds * time.Second
	}
	return time.Duration(c.BillingUnitSeconds) * time.Second
}
