package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	zone := cfg.Zone()
	assert.InDelta(t, 37.7749, zone.Center.Latitude, 1e-9)
	assert.InDelta(t, -122.4194, zone.Center.Longitude, 1e-9)
	assert.InDelta(t, 100.0, zone.RadiusMeters, 1e-9)
	assert.Equal(t, "Authenticate for attendance", cfg.Attendance.BiometricReason)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 2*time.Minute, cfg.Redis.LockTTL)
	assert.Equal(t, time.Local, cfg.Calendar().Location)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PRESENCE_OFFICE_LATITUDE", "51.5")
	t.Setenv("PRESENCE_OFFICE_LONGITUDE", "-0.12")
	t.Setenv("PRESENCE_OFFICE_RADIUS_METERS", "250")
	t.Setenv("PRESENCE_ATTENDANCE_TIMEZONE", "UTC")
	t.Setenv("PRESENCE_OPS_ADDR", ":9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.InDelta(t, 250.0, cfg.Zone().RadiusMeters, 1e-9)
	assert.Equal(t, "UTC", cfg.Calendar().Location.String())
	assert.Equal(t, ":9090", cfg.Ops.Addr)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("negative radius", func(t *testing.T) {
		t.Setenv("PRESENCE_OFFICE_RADIUS_METERS", "-1")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("latitude out of range", func(t *testing.T) {
		t.Setenv("PRESENCE_OFFICE_LATITUDE", "91")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("unknown timezone", func(t *testing.T) {
		t.Setenv("PRESENCE_ATTENDANCE_TIMEZONE", "Mars/Olympus_Mons")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("unparseable number", func(t *testing.T) {
		t.Setenv("PRESENCE_OFFICE_RADIUS_METERS", "wide")
		_, err := Load()
		assert.Error(t, err)
	})
}
