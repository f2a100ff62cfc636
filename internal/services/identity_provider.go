package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aiga-connect/AcademyBack/internal/models"
)

type IdentityProvider interface {
	FetchSessionData(ctx context.Context, sessionID string) (*models.ExternalIdentity, error)
}

// HTTPIdentityProvider resolves a provider session id into a verified
// identity via GET <baseURL>/session-data.
type HTTPIdentityProvider struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPIdentityProvider(baseURL string) *HTTPIdentityProvider {
	return &HTTPIdentityProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *HTTPIdentityProvider) FetchSessionData(
	ctx context.Context,
	sessionID string,
) (*models.ExternalIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/session-data", nil)
	if err != nil {
		return nil, fmt.Errorf("build session-data request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var identity models.ExternalIdentity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("%w: decode session-data: %v", ErrUpstream, err)
	}
	identity.Email = strings.ToLower(strings.TrimSpace(identity.Email))
	if identity.Email == "" {
		return nil, fmt.Errorf("%w: session-data has no email", ErrUpstream)
	}

	return &identity, nil
}
