package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"presence/internal/attendance/models"
	"presence/internal/device"
	dErrors "presence/pkg/domain-errors"
	"presence/pkg/requestcontext"
)

const shellHelp = `commands:
  signup EMAIL PASSWORD [NAME...]   create an account and sign in
  signin EMAIL PASSWORD             sign in to an existing account
  signout                           sign out
  enroll                            register biometrics for the current user
  checkin | checkout                record attendance
  status                            show today's attendance
  history [N]                       show the last N audit events
  device bio match|mismatch|cancel|unavailable
  device at LAT LON | device office [METERS_NORTH] | device off | device show
  clock set RFC3339 | clock advance DURATION | clock reset | clock show
  help | quit`

// shell is the terminal stand-in for the attendance screens.
type shell struct {
	app    *app
	out    io.Writer
	pinned *time.Time
}

func newShell(a *app, out io.Writer) *shell {
	return &shell{app: a, out: out}
}

// Run executes one command per input line until quit, EOF, or ctx is done.
func (s *shell) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		if quit := s.Exec(ctx, scanner.Text()); quit {
			return nil
		}
	}
	return scanner.Err()
}

// Exec runs a single command line and reports whether the shell should stop.
func (s *shell) Exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false
	}
	ctx = s.commandContext(ctx)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		s.println(shellHelp)
	case "signup":
		if len(args) < 2 {
			s.println("usage: signup EMAIL PASSWORD [NAME...]")
			return false
		}
		user, err := s.app.session.SignUp(ctx, args[0], strings.Join(args[2:], " "), args[1])
		if err != nil {
			s.println(message(err))
			return false
		}
		s.printf("Welcome, %s\n", user.Name)
	case "signin":
		if len(args) != 2 {
			s.println("usage: signin EMAIL PASSWORD")
			return false
		}
		if err := s.app.session.SignIn(ctx, args[0], args[1]); err != nil {
			s.println(message(err))
			return false
		}
		s.printf("Welcome, %s\n", s.app.session.CurrentUser().Name)
	case "signout":
		s.app.session.SignOut(ctx)
		s.println("Signed out.")
	case "enroll":
		if err := s.app.session.EnrollBiometrics(ctx); err != nil {
			s.println(message(err))
			return false
		}
		s.println("Biometrics registered.")
	case "checkin":
		s.println(message(s.app.gate.CheckIn(ctx)))
	case "checkout":
		s.println(message(s.app.gate.CheckOut(ctx)))
	case "status":
		s.status(ctx)
	case "history":
		s.history(ctx, args)
	case "device":
		s.deviceCmd(args)
	case "clock":
		s.clockCmd(args)
	default:
		s.printf("unknown command %q; try help\n", cmd)
	}
	return false
}

func (s *shell) commandContext(ctx context.Context) context.Context {
	ctx = requestcontext.WithRequestID(ctx, uuid.NewString())
	if s.pinned != nil {
		ctx = requestcontext.WithTime(ctx, *s.pinned)
	}
	return ctx
}

func (s *shell) status(ctx context.Context) {
	st, err := s.app.gate.Today(ctx)
	if err != nil {
		s.println(message(err))
		return
	}
	user := s.app.session.CurrentUser()
	if user == nil {
		s.println(message(dErrors.New(dErrors.CodeNoCurrentUser, "no user is signed in")))
		return
	}

	s.printf("Welcome, %s\n", user.Name)
	if st.LastCheckIn != nil {
		s.printf("Last Check-in: %s\n", s.formatTime(*st.LastCheckIn))
	}
	if st.LastCheckOut != nil {
		s.printf("Last Check-out: %s\n", s.formatTime(*st.LastCheckOut))
	}
	s.printf("Today: checked in %s, checked out %s\n", yesNo(st.CheckedIn), yesNo(st.CheckedOut))
	if !st.BiometricsSet {
		s.println("Biometrics not registered.")
	}
}

func (s *shell) history(ctx context.Context, args []string) {
	limit := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			s.println("usage: history [N]")
			return
		}
		limit = n
	}
	events, err := s.app.auditLog.ListRecent(ctx, limit)
	if err != nil {
		s.println(message(err))
		return
	}
	if len(events) == 0 {
		s.println("No activity yet.")
		return
	}
	for _, e := range events {
		line := fmt.Sprintf("%s  %-20s", s.formatTime(e.Timestamp), e.Action)
		if e.Reason != "" {
			line += "  " + e.Reason
		}
		s.println(line)
	}
}

func (s *shell) deviceCmd(args []string) {
	if len(args) == 0 {
		s.println(s.app.device.Describe())
		return
	}
	switch args[0] {
	case "show":
		s.println(s.app.device.Describe())
	case "bio":
		if len(args) != 2 {
			s.println("usage: device bio match|mismatch|cancel|unavailable")
			return
		}
		mode, err := device.ParseBiometricMode(args[1])
		if err != nil {
			s.println(err.Error())
			return
		}
		s.app.device.SetBiometricMode(mode)
		s.println(s.app.device.Describe())
	case "at":
		if len(args) != 3 {
			s.println("usage: device at LAT LON")
			return
		}
		at, err := parseCoordinate(args[1], args[2])
		if err != nil {
			s.println(err.Error())
			return
		}
		s.app.device.SetLocation(&at)
		s.println(s.app.device.Describe())
	case "office":
		meters := 0.0
		if len(args) == 2 {
			v, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				s.println("usage: device office [METERS_NORTH]")
				return
			}
			meters = v
		}
		at := offsetNorth(s.app.cfg.Zone().Center, meters)
		s.app.device.SetLocation(&at)
		s.println(s.app.device.Describe())
	case "off":
		s.app.device.SetLocation(nil)
		s.println(s.app.device.Describe())
	default:
		s.printf("unknown device command %q\n", args[0])
	}
}

func (s *shell) clockCmd(args []string) {
	if len(args) == 0 || args[0] == "show" {
		if s.pinned == nil {
			s.println("clock: wall time")
			return
		}
		s.printf("clock: %s\n", s.pinned.Format(time.RFC3339))
		return
	}
	switch args[0] {
	case "set":
		if len(args) != 2 {
			s.println("usage: clock set RFC3339")
			return
		}
		t, err := time.Parse(time.RFC3339, args[1])
		if err != nil {
			s.println(err.Error())
			return
		}
		s.pinned = &t
	case "advance":
		if len(args) != 2 {
			s.println("usage: clock advance DURATION")
			return
		}
		d, err := time.ParseDuration(args[1])
		if err != nil {
			s.println(err.Error())
			return
		}
		base := time.Now()
		if s.pinned != nil {
			base = *s.pinned
		}
		t := base.Add(d)
		s.pinned = &t
	case "reset":
		s.pinned = nil
		s.println("clock: wall time")
		return
	default:
		s.printf("unknown clock command %q\n", args[0])
		return
	}
	s.printf("clock: %s\n", s.pinned.Format(time.RFC3339))
}

func (s *shell) formatTime(t time.Time) string {
	return t.In(s.app.cfg.Calendar().Location).Format("Jan 2 3:04 PM")
}

func (s *shell) println(msg string) {
	_, _ = fmt.Fprintln(s.out, msg)
}

func (s *shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// message renders an operation result the way the attendance screen words it.
func message(err error) string {
	if err == nil {
		return "Success!"
	}
	switch dErrors.CodeOf(err) {
	case dErrors.CodeBiometricUnavailable:
		return "Biometric authentication is not available on this device."
	case dErrors.CodeBiometricNotMatched:
		return "Biometric authentication failed."
	case dErrors.CodeLocationUnauthorized:
		return "Location access is required for attendance."
	case dErrors.CodeLocationOutOfZone:
		return "You must be in the office to mark attendance."
	case dErrors.CodeAlreadyCheckedIn:
		return "You have already checked in today."
	case dErrors.CodeAlreadyCheckedOut:
		return "You have already checked out today."
	case dErrors.CodeNoCurrentUser:
		return "Please sign in first."
	case dErrors.CodeInvalidCredentials:
		return "Invalid email or password."
	case dErrors.CodeConflict:
		return "An account with this email already exists."
	default:
		return err.Error()
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func parseCoordinate(latText, lonText string) (models.GeoCoordinate, error) {
	lat, err := strconv.ParseFloat(latText, 64)
	if err != nil {
		return models.GeoCoordinate{}, fmt.Errorf("invalid latitude %q", latText)
	}
	lon, err := strconv.ParseFloat(lonText, 64)
	if err != nil {
		return models.GeoCoordinate{}, fmt.Errorf("invalid longitude %q", lonText)
	}
	return models.GeoCoordinate{Latitude: lat, Longitude: lon}, nil
}
