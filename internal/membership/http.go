package membership

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"ludamus.io/enrolld/internal/config"
	"ludamus.io/enrolld/internal/pkg/logger"
)

const defaultTimeout = 5 * time.Second

// HTTPGateway fetches slot entitlements from a remote membership API.
//
// Contract: GET {base_url}/members/{email} with "Authorization: Token ..."
// answers {"membership_count": N}. 404 means the email is unknown to the
// provider and counts as zero entitlement.
type HTTPGateway struct {
	name    string
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPGateway builds a gateway for one configured provider.
func NewHTTPGateway(p config.MembershipProvider) *HTTPGateway {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPGateway{
		name:    p.Name,
		baseURL: p.BaseURL,
		token:   p.Token,
		client:  &http.Client{Timeout: timeout},
	}
}

type membershipResponse struct {
	MembershipCount int `json:"membership_count"`
}

// FetchCount implements Gateway.
func (g *HTTPGateway) FetchCount(ctx context.Context, email string) (int, error) {
	endpoint := fmt.Sprintf("%s/members/%s", g.baseURL, url.PathEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("build request for %s: %w", g.name, err)
	}
	if g.token != "" {
		req.Header.Set("Authorization", "Token "+g.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Warn("Membership lookup failed",
			zap.String("provider", g.name),
			zap.Error(err),
		)
		return 0, fmt.Errorf("%w: %s: %v", ErrUnavailable, g.name, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return 0, nil
	case resp.StatusCode != http.StatusOK:
		logger.Warn("Membership lookup returned unexpected status",
			zap.String("provider", g.name),
			zap.Int("status", resp.StatusCode),
		)
		return 0, fmt.Errorf("%w: %s: status %d", ErrUnavailable, g.name, resp.StatusCode)
	}

	var body membershipResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("%w: %s: decode response: %v", ErrUnavailable, g.name, err)
	}
	if body.MembershipCount < 0 {
		return 0, nil
	}
	return body.MembershipCount, nil
}
