package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	authservice "mdd/contexts/identity-access/auth-service"
	articleservice "mdd/contexts/publication/article-service"
	themeservice "mdd/contexts/publication/theme-service"
)

func newTestServer() *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth := authservice.NewInMemoryModule(logger)
	themes := themeservice.NewInMemoryModule(auth.Service, logger)
	articles := articleservice.NewInMemoryModule(auth.Service, themes.Service, logger)
	return New(auth, themes, articles, logger, ":0")
}

func doJSON(t *testing.T, server *Server, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func registerUser(t *testing.T, server *Server, name string) string {
	t.Helper()
	rr := doJSON(t, server, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": name,
		"email":    fmt.Sprintf("%s@example.com", name),
		"password": "s3cret-pass",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("register %s: expected 200, got %d body=%s", name, rr.Code, rr.Body.String())
	}
	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if resp.Data.Token == "" {
		t.Fatalf("register %s: empty token in %s", name, rr.Body.String())
	}
	return resp.Data.Token
}
