package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func doLogin(t *testing.T, h *AuthHandler, body any) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(stdhttp.MethodPost, "/login", mustJSON(t, body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	return rec
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	const secret = "test-secret"
	h := NewAuthHandler(secret, time.Hour)

	rec := doLogin(t, h, map[string]string{"username": "trader", "password": "pw"})
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("code=%d body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token     string `json:"token"`
		ExpiresAt string `json:"expires_at"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := time.Parse(time.RFC3339, resp.ExpiresAt); err != nil {
		t.Fatalf("expires_at %q: %v", resp.ExpiresAt, err)
	}

	tok, err := jwt.Parse(resp.Token, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if sub, _ := claims["sub"].(string); sub != "trader" {
		t.Fatalf("sub=%v", claims["sub"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatal("missing jti")
	}
}

func TestLogin_RejectsEmptyCredentials(t *testing.T) {
	h := NewAuthHandler("s", time.Hour)

	for _, body := range []map[string]string{
		{"username": "", "password": "pw"},
		{"username": "  ", "password": "pw"},
		{"username": "trader", "password": ""},
	} {
		rec := doLogin(t, h, body)
		if rec.Code != stdhttp.StatusUnauthorized {
			t.Fatalf("code=%d for %v, want 401", rec.Code, body)
		}
	}
}
