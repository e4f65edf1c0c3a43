package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/accessgate/rbac-system/internal/core/domain"
	"github.com/accessgate/rbac-system/internal/core/service"
)

func mintToken(t *testing.T, secret string, role domain.Role) string {
	t.Helper()
	svc := service.NewTokenService([]byte(secret), time.Hour)
	token, err := svc.Encode(&domain.User{ID: "u-1", Username: "alice", Role: role})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := service.NewTokenService([]byte("secret"), time.Hour)
	c, rec := newAuthContext("Bearer " + mintToken(t, "secret", domain.RoleAdmin))

	called := false
	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		called = true
		claims, ok := c.Get(ClaimsKey).(*domain.Claims)
		if !ok {
			t.Fatalf("claims not attached to context")
		}
		if claims.Username != "alice" || claims.Role != domain.RoleAdmin {
			t.Fatalf("unexpected claims: %+v", claims)
		}
		if role, _ := c.Get(RoleKey).(string); role != "admin" {
			t.Fatalf("role key not set, got %q", role)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := service.NewTokenService([]byte("secret"), time.Hour)
	c, _ := newAuthContext("")

	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	tokens := service.NewTokenService([]byte("secret"), time.Hour)
	c, _ := newAuthContext("Basic dXNlcjpwYXNz")

	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestAuth_ForgedToken(t *testing.T) {
	tokens := service.NewTokenService([]byte("secret"), time.Hour)
	c, _ := newAuthContext("Bearer " + mintToken(t, "other-secret", domain.RoleAdmin))

	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestAuth_GarbageToken(t *testing.T) {
	tokens := service.NewTokenService([]byte("secret"), time.Hour)
	c, _ := newAuthContext("Bearer not-a-token")

	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}
