package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig        `toml:"server"`
	Logs            LogsConfig          `toml:"logs"`
	Metrics         MetricsConfig       `toml:"metrics"`
	TutorDirectory  IntegrationConfig   `toml:"tutor_directory"`
	ScheduleService IntegrationConfig   `toml:"schedule_service"`
	ScheduleCache   ScheduleCacheConfig `toml:"schedule_cache"`
	Search          SearchConfig        `toml:"search"`
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
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig настройки внешнего HTTP сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// ScheduleCacheConfig настройки кэша недельных расписаний
type ScheduleCacheConfig struct {
	Enabled    bool `toml:"enabled"`
	Size       int  `toml:"size"`
	TTLMinutes int  `toml:"ttl_minutes"`
}

// SearchConfig настройки поиска и поисковых сессий
type SearchConfig struct {
	PageSize          int `toml:"page_size"`
	SessionTTLMinutes int `toml:"session_ttl_minutes"`
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig значения по умолчанию, перекрываются файлом
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			File:  "logs/app.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "tmp-search-service",
		},
		ScheduleCache: ScheduleCacheConfig{
			Enabled:    true,
			Size:       1024,
			TTLMinutes: 10,
		},
		Search: SearchConfig{
			PageSize:          20,
			SessionTTLMinutes: 30,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.TutorDirectory.URL == "" {
		return fmt.Errorf("config: tutor_directory.url is required")
	}
	if c.TutorDirectory.Timeout <= 0 {
		return fmt.Errorf("config: tutor_directory.timeout must be positive")
	}
	if c.ScheduleService.URL == "" {
		return fmt.Errorf("config: schedule_service.url is required")
	}
	if c.ScheduleService.Timeout <= 0 {
		return fmt.Errorf("config: schedule_service.timeout must be positive")
	}
	if c.ScheduleCache.Enabled && c.ScheduleCache.Size <= 0 {
		return fmt.Errorf("config: schedule_cache.size must be positive")
	}
	if c.Search.PageSize <= 0 {
		return fmt.Errorf("config: search.page_size must be positive")
	}
	if c.Search.SessionTTLMinutes <= 0 {
		return fmt.Errorf("config: search.session_ttl_minutes must be positive")
	}
	return nil
}
