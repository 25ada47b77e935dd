package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CommunityWatch/CW-Backend/internal/middleware"
	"github.com/CommunityWatch/CW-Backend/internal/utils"
	"golang.org/x/time/rate"
)

// mockVerifier implements middleware.TokenVerifier without the auth package.
type mockVerifier struct {
	accountID string
	err       error
}

func (m mockVerifier) VerifyToken(token string) (string, error) {
	return m.accountID, m.err
}

// callWithAuth wraps a simple 200-OK inner handler in the provided middleware,
// optionally setting the Authorization header, and returns the recorded
// response.
func callWithAuth(t *testing.T, mw func(http.Handler) http.Handler, header string) *httptest.ResponseRecorder {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := mw(inner)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mw := middleware.AuthMiddleware(mockVerifier{})

	rec := callWithAuth(t, mw, "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_NonBearerHeader(t *testing.T) {
	mw := middleware.AuthMiddleware(mockVerifier{accountID: "acct"})

	rec := callWithAuth(t, mw, "Basic dXNlcjpwYXNz")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mw := middleware.AuthMiddleware(mockVerifier{err: errors.New("invalid token")})

	rec := callWithAuth(t, mw, "Bearer bad-token")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid or expired token") {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	const wantAccountID = "account-123"

	// inner handler reads and checks the account ID from context
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, ok := utils.GetAccountIDFromContext(r.Context())
		if !ok {
			http.Error(w, "accountID not in context", http.StatusInternalServerError)
			return
		}
		if gotID != wantAccountID {
			http.Error(w, "wrong accountID in context: "+gotID, http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mw := middleware.AuthMiddleware(mockVerifier{accountID: wantAccountID})
	handler := mw(inner)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
}

func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.CORSMiddleware(inner)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the echoed origin", got)
	}
}

func TestCORSMiddleware_UnknownOrigin(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.CORSMiddleware(inner)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q for unknown origin, want unset", got)
	}
}

func TestCORSMiddleware_PreflightShortCircuits(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("inner handler reached on OPTIONS preflight")
	})
	handler := middleware.CORSMiddleware(inner)

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestRateLimitMiddleware_EnforcesBurst(t *testing.T) {
	// Rate 0 with burst 3: exactly three requests pass, the fourth is
	// rejected, with no refill race.
	limiter := middleware.NewIPRateLimiter(rate.Limit(0), 3)
	mw := middleware.RateLimitMiddleware(limiter)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := mw(inner)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/test", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("request 4: expected 429, got %d", rec.Code)
	}
}

func TestRateLimitMiddleware_PerIPBuckets(t *testing.T) {
	limiter := middleware.NewIPRateLimiter(rate.Limit(0), 1)
	mw := middleware.RateLimitMiddleware(limiter)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := mw(inner)

	// Exhaust the first IP's bucket.
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first IP first request: expected 200, got %d", rec.Code)
	}

	// A different IP still has its own budget.
	req = httptest.NewRequest(http.MethodPost, "/test", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("second IP: expected 200, got %d", rec.Code)
	}
}
