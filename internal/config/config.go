package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации генерации мира.
// Сами генераторы всегда получают сид явно; конфиг лишь
// определяет, откуда этот сид берётся у вызывающей стороны.

type Config struct {
	World       WorldConfig `yaml:"world"`
	Development DevConfig   `yaml:"development"`
}

// WorldConfig параметры мира
type WorldConfig struct {
	Seed int64 `yaml:"seed"`
}

// DevConfig параметры режима разработки
type DevConfig struct {
	Enabled bool  `yaml:"enabled"`
	Seed    int64 `yaml:"seed"`
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV WORLD_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("WORLD_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ResolveSeed возвращает сид генерации с приоритетом:
// config.world -> config.development -> env WORLD_SEED -> текущее время
func ResolveSeed(cfg *Config) int64 {
	if cfg != nil {
		if cfg.World.Seed != 0 {
			return cfg.World.Seed
		}
		if cfg.Development.Enabled && cfg.Development.Seed != 0 {
			return cfg.Development.Seed
		}
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv("WORLD_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil && seed != 0 {
			return seed
		}
	}

	// Случайный сид на основе текущего времени
	return time.Now().UnixMilli() % (1<<31 - 1)
}
