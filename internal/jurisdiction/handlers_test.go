package jurisdiction_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CommunityWatch/CW-Backend/internal/jurisdiction"
)

// These cover the parameter-validation paths, which reject before any service
// access.

func TestResolveHandler_MissingParams(t *testing.T) {
	for _, target := range []string{
		"/jurisdictions/resolve",
		"/jurisdictions/resolve?lat=40.44",
		"/jurisdictions/resolve?lon=-79.99",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		jurisdiction.ResolveHandler(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestResolveHandler_NonNumericParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/jurisdictions/resolve?lat=north&lon=west", nil)
	rec := httptest.NewRecorder()
	jurisdiction.ResolveHandler(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateHandlers_MissingID(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		target  string
	}{
		{"info", jurisdiction.InfoHandler, "/jurisdictions/info"},
		{"update info", jurisdiction.UpdateInfoHandler, "/jurisdictions/info"},
		{"update defer", jurisdiction.UpdateDeferHandler, "/jurisdictions/defer"},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodPost, c.target, strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		c.handler(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s without id: expected 400, got %d", c.name, rec.Code)
		}
	}
}

func TestUpdateDeferHandler_NonStringBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/jurisdictions/defer?id=alpha", strings.NewReader(`{"value":"x"}`))
	rec := httptest.NewRecorder()
	jurisdiction.UpdateDeferHandler(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-string body, got %d", rec.Code)
	}
}

func TestFeedbackHandler_RejectsBadMessages(t *testing.T) {
	bodies := []string{
		`{"message":""}`,
		`{"message":"   "}`,
		`{"message":"` + strings.Repeat("x", 2001) + `"}`,
		"{\"message\":\"bad\\u0000value\"}",
		`not json`,
	}
	for i, body := range bodies {
		req := httptest.NewRequest(http.MethodPost, "/jurisdictions/feedback", strings.NewReader(body))
		rec := httptest.NewRecorder()
		jurisdiction.FeedbackHandler(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %d: expected 400, got %d", i, rec.Code)
		}
	}
}
