package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aiga-connect/AcademyBack/internal/services"
	"github.com/gofiber/fiber/v2"
)

type stubAuthenticator struct {
	userID    string
	err       error
	lastToken string
}

func (s *stubAuthenticator) Authenticate(_ context.Context, token string) (string, error) {
	s.lastToken = token
	return s.userID, s.err
}

func newProtectedApp(auth Authenticator) *fiber.App {
	app := fiber.New()
	app.Get("/private", AuthRequired(auth), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})
	return app
}

func TestAuthRequiredSetsUserID(t *testing.T) {
	auth := &stubAuthenticator{userID: "user-42"}
	app := newProtectedApp(auth)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer token-abc")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if auth.lastToken != "token-abc" {
		t.Fatalf("expected token-abc, got %q", auth.lastToken)
	}

	var body struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.UserID != "user-42" {
		t.Fatalf("expected user-42, got %q", body.UserID)
	}
}

func TestAuthRequiredRejectsMissingAndMalformedHeaders(t *testing.T) {
	auth := &stubAuthenticator{userID: "user-42"}
	app := newProtectedApp(auth)

	for _, header := range []string{"", "token-abc", "Basic token-abc", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, resp.StatusCode)
		}
	}
	if auth.lastToken != "" {
		t.Fatalf("authenticator should not be called, got token %q", auth.lastToken)
	}
}

func TestAuthRequiredRejectsExpiredSession(t *testing.T) {
	app := newProtectedApp(&stubAuthenticator{err: services.ErrUnauthenticated})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer expired")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthRequiredReportsStoreFailure(t *testing.T) {
	app := newProtectedApp(&stubAuthenticator{err: errors.New("connection reset")})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
}
