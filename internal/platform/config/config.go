package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"presence/internal/attendance/location"
	"presence/internal/attendance/models"
)

// Config is the process configuration, loaded from PRESENCE_* environment variables.
type Config struct {
	Office     OfficeConfig
	Attendance AttendanceConfig
	Redis      RedisConfig
	Log        LogConfig
	Ops        OpsConfig
	Tracing    TracingConfig
}

// OfficeConfig describes the single configured office zone.
type OfficeConfig struct {
	Latitude     float64 `env:"PRESENCE_OFFICE_LATITUDE"      envDefault:"37.7749"`
	Longitude    float64 `env:"PRESENCE_OFFICE_LONGITUDE"     envDefault:"-122.4194"`
	RadiusMeters float64 `env:"PRESENCE_OFFICE_RADIUS_METERS" envDefault:"100"`
}

type AttendanceConfig struct {
	// Timezone names the calendar used for "today". "Local" follows the host.
	Timezone        string `env:"PRESENCE_ATTENDANCE_TIMEZONE"    envDefault:"Local"`
	BiometricReason string `env:"PRESENCE_BIOMETRIC_REASON"       envDefault:"Authenticate for attendance"`
}

// RedisConfig configures the optional distributed attempt lock.
// An empty URL keeps locking in-process.
type RedisConfig struct {
	URL          string        `env:"PRESENCE_REDIS_URL"`
	PoolSize     int           `env:"PRESENCE_REDIS_POOL_SIZE"       envDefault:"10"`
	MinIdleConns int           `env:"PRESENCE_REDIS_MIN_IDLE_CONNS"  envDefault:"2"`
	DialTimeout  time.Duration `env:"PRESENCE_REDIS_DIAL_TIMEOUT"    envDefault:"5s"`
	ReadTimeout  time.Duration `env:"PRESENCE_REDIS_READ_TIMEOUT"    envDefault:"3s"`
	WriteTimeout time.Duration `env:"PRESENCE_REDIS_WRITE_TIMEOUT"   envDefault:"3s"`
	LockTTL      time.Duration `env:"PRESENCE_REDIS_LOCK_TTL"        envDefault:"2m"`
}

type LogConfig struct {
	Level string `env:"PRESENCE_LOG_LEVEL" envDefault:"info"`
}

// OpsConfig controls the metrics/health listener. Empty Addr disables it.
type OpsConfig struct {
	Addr string `env:"PRESENCE_OPS_ADDR"`
}

// TracingConfig controls OTLP span export. Empty Endpoint disables export.
type TracingConfig struct {
	Endpoint    string `env:"PRESENCE_OTEL_ENDPOINT"`
	ServiceName string `env:"PRESENCE_OTEL_SERVICE_NAME" envDefault:"presence"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := location.ValidateZone(c.Zone()); err != nil {
		return fmt.Errorf("office zone: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Redis.URL != "" && c.Redis.LockTTL <= 0 {
		return errors.New("redis lock ttl must be positive")
	}
	return nil
}

// Zone returns the configured office zone.
func (c *Config) Zone() models.OfficeZone {
	return models.OfficeZone{
		Center: models.GeoCoordinate{
			Latitude:  c.Office.Latitude,
			Longitude: c.Office.Longitude,
		},
		RadiusMeters: c.Office.RadiusMeters,
	}
}

// Location resolves the attendance timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Attendance.Timezone == "" || c.Attendance.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Attendance.Timezone)
	if err != nil {
		return nil, fmt.Errorf("attendance timezone %q: %w", c.Attendance.Timezone, err)
	}
	return loc, nil
}

// Calendar returns the calendar that defines attendance days.
func (c *Config) Calendar() models.Calendar {
	loc, err := c.Location()
	if err != nil {
		loc = time.Local
	}
	return models.NewCalendar(loc)
}
