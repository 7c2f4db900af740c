package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presence/internal/platform/config"
	dErrors "presence/pkg/domain-errors"
	"presence/pkg/testutil"
)

func testConfig() *config.Config {
	return &config.Config{
		Office: config.OfficeConfig{Latitude: 37.7749, Longitude: -122.4194, RadiusMeters: 100},
		Attendance: config.AttendanceConfig{
			Timezone:        "UTC",
			BiometricReason: "Authenticate for attendance",
		},
	}
}

func newTestShell(t *testing.T) (*shell, *bytes.Buffer) {
	t.Helper()
	a, err := newApp(context.Background(), testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(a.Close)
	var out bytes.Buffer
	return newShell(a, &out), &out
}

func run(t *testing.T, sh *shell, out *bytes.Buffer, lines ...string) []string {
	t.Helper()
	out.Reset()
	require.NoError(t, sh.Run(context.Background(), strings.NewReader(strings.Join(lines, "\n"))))
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestShellAttendanceDay(t *testing.T) {
	sh, out := newTestShell(t)

	testutil.Given(t, "a signed-in user at the office", func(t *testing.T) {
		got := run(t, sh, out,
			"clock set 2026-03-02T09:00:00Z",
			"signup ada@example.com analytical Ada Lovelace",
		)
		assert.Equal(t, "Welcome, Ada Lovelace", got[len(got)-1])

		testutil.When(t, "they check in twice", func(t *testing.T) {
			got := run(t, sh, out, "checkin", "checkin")
			testutil.Then(t, "the second attempt is already done", func(t *testing.T) {
				assert.Equal(t, []string{"Success!", "You have already checked in today."}, got)
			})
		})

		testutil.When(t, "they walk 150m away and check out", func(t *testing.T) {
			got := run(t, sh, out, "device office 150", "checkout")
			testutil.Then(t, "they are told to be in the office", func(t *testing.T) {
				assert.Equal(t, "You must be in the office to mark attendance.", got[len(got)-1])
			})
		})

		testutil.When(t, "they return and check out", func(t *testing.T) {
			got := run(t, sh, out, "device office 50", "checkout", "status")
			testutil.Then(t, "both records show in status", func(t *testing.T) {
				assert.Contains(t, got, "Success!")
				assert.Contains(t, got, "Last Check-in: Mar 2 9:00 AM")
				assert.Contains(t, got, "Last Check-out: Mar 2 9:00 AM")
				assert.Contains(t, got, "Today: checked in yes, checked out yes")
			})
		})

		testutil.When(t, "the next day starts", func(t *testing.T) {
			got := run(t, sh, out, "clock advance 24h", "checkin")
			testutil.Then(t, "check-in is allowed again", func(t *testing.T) {
				assert.Equal(t, "Success!", got[len(got)-1])
			})
		})
	})
}

func TestShellFailureMessages(t *testing.T) {
	sh, out := newTestShell(t)

	got := run(t, sh, out, "checkout")
	assert.Equal(t, []string{"Please sign in first."}, got)

	got = run(t, sh, out, "signin nobody@example.com secret")
	assert.Equal(t, []string{"Invalid email or password."}, got)

	run(t, sh, out, "signup bob@example.com password1")

	got = run(t, sh, out, "device bio mismatch", "checkin")
	assert.Equal(t, "Biometric authentication failed.", got[len(got)-1])

	got = run(t, sh, out, "device bio unavailable", "checkin")
	assert.Equal(t, "Biometric authentication is not available on this device.", got[len(got)-1])

	got = run(t, sh, out, "device bio match", "device off", "checkin")
	assert.Equal(t, "Location access is required for attendance.", got[len(got)-1])

	got = run(t, sh, out, "signup bob@example.com password1")
	assert.Equal(t, []string{"An account with this email already exists."}, got)
}

func TestShellMisc(t *testing.T) {
	sh, out := newTestShell(t)

	got := run(t, sh, out, "history")
	assert.Equal(t, []string{"No activity yet."}, got)

	got = run(t, sh, out, "signup carol@example.com password1", "enroll", "status")
	assert.Contains(t, got, "Biometrics registered.")
	assert.NotContains(t, got, "Biometrics not registered.")

	got = run(t, sh, out, "history 2")
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "biometrics_enrolled")

	got = run(t, sh, out, "bogus")
	assert.Contains(t, got[0], "unknown command")

	got = run(t, sh, out, "clock show", "clock reset")
	assert.Equal(t, []string{"clock: wall time", "clock: wall time"}, got)

	out.Reset()
	assert.True(t, sh.Exec(context.Background(), "quit"))
	assert.False(t, sh.Exec(context.Background(), "# comment"))
	assert.Empty(t, out.String())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Success!", message(nil))
	assert.Equal(t, "You have already checked out today.",
		message(dErrors.New(dErrors.CodeAlreadyCheckedOut, "x")))
	assert.Equal(t, "Please sign in first.", message(dErrors.New(dErrors.CodeNoCurrentUser, "x")))
}

func TestDistanceCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"distance", "37.7749", "-122.4194"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "0.00 m from office (radius 100 m): inside\n", out.String())

	out.Reset()
	rootCmd.SetArgs([]string{"distance", "37.8044", "-122.2712"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "outside")

	out.Reset()
	rootCmd.SetArgs([]string{"distance", "-33.8688", "151.2093"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "outside")

	rootCmd.SetArgs([]string{"distance", "-91", "0"})
	assert.Error(t, rootCmd.Execute())
}
