package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func idempHeaders(req *http.Request) {
	req.Header.Set("Ax-Request-Id", "0123456789abcdef0123456789abcdef")
	req.Header.Set("Ax-Request-At", strconv.FormatInt(time.Now().Unix(), 10))
	req.Header.Set("Ax-Actor-Id", "trader-1")
}

func newIdempEnv(t *testing.T) (*echo.Echo, *int) {
	t.Helper()
	e := echo.New()
	calls := 0
	h := func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, map[string]string{"result": fmt.Sprintf("call-%d", calls)})
	}
	e.POST("/trade", h, IdempotencyMiddleware(newTestRedis(t), time.Minute))
	e.GET("/trade", h, IdempotencyMiddleware(newTestRedis(t), time.Minute))
	return e, &calls
}

func TestIdempotency_GetBypasses(t *testing.T) {
	e, calls := newIdempEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/trade", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || *calls != 1 {
		t.Fatalf("code=%d calls=%d", rec.Code, *calls)
	}
}

func TestIdempotency_RejectsBadHeaders(t *testing.T) {
	e, _ := newIdempEnv(t)

	cases := []struct {
		name string
		mod  func(*http.Request)
	}{
		{"missing request id", func(r *http.Request) { r.Header.Del("Ax-Request-Id") }},
		{"malformed request id", func(r *http.Request) { r.Header.Set("Ax-Request-Id", "not-hex") }},
		{"missing request at", func(r *http.Request) { r.Header.Del("Ax-Request-At") }},
		{"naive timestamp", func(r *http.Request) { r.Header.Set("Ax-Request-At", "2026-09-01T10:00:00") }},
		{"skewed timestamp", func(r *http.Request) {
			r.Header.Set("Ax-Request-At", strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10))
		}},
		{"missing actor", func(r *http.Request) { r.Header.Del("Ax-Actor-Id") }},
		{"bad actor", func(r *http.Request) { r.Header.Set("Ax-Actor-Id", "bad/actor\n") }},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/trade", strings.NewReader(`{}`))
		idempHeaders(req)
		tc.mod(req)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: code=%d, want 400", tc.name, rec.Code)
		}
	}
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	e, calls := newIdempEnv(t)

	do := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/trade", strings.NewReader(body))
		idempHeaders(req)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	first := do(`{"amount":1}`)
	if first.Code != http.StatusOK {
		t.Fatalf("first code=%d", first.Code)
	}
	second := do(`{"amount":1}`)
	if second.Code != http.StatusOK {
		t.Fatalf("second code=%d", second.Code)
	}
	if *calls != 1 {
		t.Fatalf("handler ran %d times, want 1", *calls)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replay differs: %q vs %q", first.Body.String(), second.Body.String())
	}
}

func TestIdempotency_ReusedIDWithDifferentBody(t *testing.T) {
	e, _ := newIdempEnv(t)

	do := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/trade", strings.NewReader(body))
		idempHeaders(req)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	if rec := do(`{"amount":1}`); rec.Code != http.StatusOK {
		t.Fatalf("first code=%d", rec.Code)
	}
	if rec := do(`{"amount":2}`); rec.Code != http.StatusConflict {
		t.Fatalf("mismatched body code=%d, want 409", rec.Code)
	}
}

func TestParseAxRequestAt(t *testing.T) {
	cases := []struct {
		raw string
		ok  bool
	}{
		{"1736123456", true},
		{"1736123456789", true},
		{"2026-09-01T10:00:00Z", true},
		{"2026-09-01T10:00:00+07:00", true},
		{"2026-09-01T10:00:00", false},
		{"", false},
		{"yesterday", false},
	}
	for _, tc := range cases {
		_, err := parseAxRequestAt(tc.raw)
		if (err == nil) != tc.ok {
			t.Fatalf("parseAxRequestAt(%q): err=%v, want ok=%v", tc.raw, err, tc.ok)
		}
	}
}
