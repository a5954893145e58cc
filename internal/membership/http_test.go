package membership

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ludamus.io/enrolld/internal/config"
	"ludamus.io/enrolld/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) *HTTPGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPGateway(config.MembershipProvider{
		Name:    "guild",
		BaseURL: srv.URL,
		Token:   "sekrit",
		Timeout: 2 * time.Second,
	})
}

func TestHTTPGateway_FetchCount(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Token sekrit", r.Header.Get("Authorization"))
		require.Equal(t, "/members/alice@guild.example.com", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"membership_count": 3}`))
	})

	count, err := gw.FetchCount(context.Background(), "alice@guild.example.com")
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestHTTPGateway_FetchCount_NotFoundMeansZero(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	count, err := gw.FetchCount(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestHTTPGateway_FetchCount_ServerErrorIsUnavailable(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := gw.FetchCount(context.Background(), "alice@example.com")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPGateway_FetchCount_BadJSONIsUnavailable(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{truncated`))
	})

	_, err := gw.FetchCount(context.Background(), "alice@example.com")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPGateway_FetchCount_NegativeCountClampsToZero(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"membership_count": -2}`))
	})

	count, err := gw.FetchCount(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestRegistry_Lookup(t *testing.T) {
	mock := NewMockGateway()
	reg := NewRegistryWith(map[string]Gateway{"guild": mock})

	gw, err := reg.Lookup("guild")
	require.NoError(t, err)
	require.Same(t, mock, gw)

	_, err = reg.Lookup("unknown")
	require.Error(t, err)
}

func TestRegistry_FromConfig(t *testing.T) {
	reg := NewRegistry(config.MembershipConfig{
		Providers: []config.MembershipProvider{
			{Name: "guild", BaseURL: "https://members.example.com", Token: "t"},
			{Name: "tickets", BaseURL: "https://tickets.example.com"},
		},
	})

	require.ElementsMatch(t, []string{"guild", "tickets"}, reg.Names())
	gw, err := reg.Lookup("guild")
	require.NoError(t, err)
	require.IsType(t, &HTTPGateway{}, gw)
}

func TestMockGateway_FailMode(t *testing.T) {
	mock := NewMockGateway()
	mock.Seed("alice@example.com", 4)

	count, err := mock.FetchCount(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, 4, count)

	boom := errors.New("boom")
	mock.Fail(boom)
	_, err = mock.FetchCount(context.Background(), "alice@example.com")
	require.ErrorIs(t, err, boom)
	require.Equal(t, 2, mock.Calls())
}
