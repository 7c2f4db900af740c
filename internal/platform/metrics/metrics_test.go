package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveAttempt("check_in", "success", "")
	m.ObserveAttempt("check_in", "failure", "already_checked_in")
	m.ObserveAttempt("check_in", "failure", "already_checked_in")
	m.IncrementUsersCreated()
	m.IncrementSignIns("ok")
	m.ObserveVerification("biometric", true, 300*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AttendanceAttempts.WithLabelValues("check_in", "success", "")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AttendanceAttempts.WithLabelValues("check_in", "failure", "already_checked_in")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UsersCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SignIns.WithLabelValues("ok")))

	count, err := testutil.GatherAndCount(reg, "presence_verification_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewOnSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
