package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseParticipationStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, StatusConfirmed, ParseParticipationStatus("CONFIRMED"))
	require.Equal(t, StatusWaiting, ParseParticipationStatus("WAITING"))

	legacy := ParseParticipationStatus("TENTATIVE")
	require.False(t, legacy.Known())
	require.False(t, legacy.IsConfirmed())
	require.False(t, legacy.IsWaiting())
	require.Equal(t, "TENTATIVE", legacy.String())
}

func TestParseAction(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want Action
		ok   bool
	}{
		{"enroll", ActionEnroll, true},
		{"waitlist", ActionWaitlist, true},
		{"cancel", ActionCancel, true},
		{"ENROLL", "", false},
		{"", "", false},
		{"drop", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseAction(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseAction(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestEnrollmentConfigActive(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	cfg := EnrollmentConfig{StartTime: start, EndTime: end}

	require.False(t, cfg.Active(start.Add(-time.Second)))
	require.True(t, cfg.Active(start))
	require.True(t, cfg.Active(start.Add(time.Hour)))
	require.True(t, cfg.Active(end))
	require.False(t, cfg.Active(end.Add(time.Second)))
}

func TestEnrollmentConfigWaitlistEnabled(t *testing.T) {
	t.Parallel()

	require.False(t, EnrollmentConfig{}.WaitlistEnabled())
	require.True(t, EnrollmentConfig{MaxWaitlistSessions: 3}.WaitlistEnabled())
}

func TestDomainEnrollmentConfigMatchesEmail(t *testing.T) {
	t.Parallel()

	grant := DomainEnrollmentConfig{Domain: "guild.example.com"}

	require.True(t, grant.MatchesEmail("alice@guild.example.com"))
	require.True(t, grant.MatchesEmail("bob@GUILD.Example.COM"))
	require.False(t, grant.MatchesEmail("carol@other.example.com"))
	require.False(t, grant.MatchesEmail("no-at-sign"))
	require.False(t, grant.MatchesEmail(""))
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	hour := func(n int) time.Time { return base.Add(time.Duration(n) * time.Hour) }

	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"disjoint", hour(0), hour(1), hour(2), hour(3), false},
		{"back_to_back", hour(0), hour(1), hour(1), hour(2), false},
		{"partial", hour(0), hour(2), hour(1), hour(3), true},
		{"contained", hour(0), hour(4), hour(1), hour(2), true},
		{"identical", hour(0), hour(1), hour(0), hour(1), true},
		{"reversed_order", hour(2), hour(3), hour(0), hour(1), false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUserAge(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	birth := func(y, m, d int) *time.Time {
		t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	require.Equal(t, -1, User{}.Age(now))
	require.Equal(t, 18, User{BirthDate: birth(2008, 6, 15)}.Age(now))
	require.Equal(t, 17, User{BirthDate: birth(2008, 6, 16)}.Age(now))
	require.Equal(t, 30, User{BirthDate: birth(1995, 12, 31)}.Age(now))
}

func TestParticipationPayload_ToJSON(t *testing.T) {
	t.Parallel()

	payload := ParticipationPayload{
		SessionID:    41,
		SessionTitle: "Intro to Blades",
		UserID:       7,
		UserName:     "Alice",
		EnrolledByID: 7,
		Status:       "CONFIRMED",
	}

	data, err := payload.ToJSON()
	require.NoError(t, err)
	require.Contains(t, string(data), `"session_id":41`)
	require.Contains(t, string(data), `"status":"CONFIRMED"`)
}
