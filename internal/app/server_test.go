package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"caffind_backend/internal/app"
	"caffind_backend/internal/auth"
	"caffind_backend/internal/chat"
	"caffind_backend/internal/config"
	"caffind_backend/internal/identity"
	"caffind_backend/internal/identity/identitytest"
	"caffind_backend/internal/platform/metrics"
	"caffind_backend/internal/translation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echoEngine struct{}

func (echoEngine) Translate(_ context.Context, text, target, source string) (*translation.Result, error) {
	if text == "boom" {
		return nil, errors.New("engine unavailable")
	}
	return &translation.Result{Text: strings.ToUpper(text), Source: source, Target: target}, nil
}

type downCompleter struct{}

func (downCompleter) Complete(context.Context, []chat.Message, int) (string, error) {
	return "", errors.New("connection refused")
}

func newTestServer(t *testing.T, p identity.Provider) http.Handler {
	t.Helper()
	cfg := &config.Config{
		GinMode:            gin.TestMode,
		ServerPort:         "0",
		CORSAllowedOrigins: []string{"*"},
		MetricsEnabled:     true,
		InferenceMaxTokens: 150,
	}
	logger := zap.NewNop()
	reg := prometheus.NewRegistry()
	m, err := metrics.NewProm("caffind", reg)
	require.NoError(t, err)

	verifier := identity.NewVerifier(p, cfg, m, logger)
	idService := identity.NewService(p, verifier, cfg, m, logger)
	srv, err := app.NewServer(cfg, logger, m, reg,
		auth.NewHandler(idService, verifier, logger),
		translation.NewHandler(translation.NewService(echoEngine{}, cfg, m, logger), logger),
		chat.NewHandler(chat.NewService(downCompleter{}, cfg, m, logger), logger),
	)
	require.NoError(t, err)
	return srv.Handler()
}

func do(h http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]interface{}) {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealth(t *testing.T) {
	w, body := do(newTestServer(t, new(identitytest.MockProvider)), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"status": "ok"}, body)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRoutesAreWired(t *testing.T) {
	p := new(identitytest.MockProvider)
	p.On("VerifyIDToken", mock.Anything, "tok").Return(identitytest.Token("uid-1", "a@b.c", ""), nil)
	h := newTestServer(t, p)

	w, body := do(h, jsonRequest(http.MethodPost, "/translate", `{"text":"hello","target":"es"}`))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "HELLO", body["translated_text"])
	assert.Equal(t, "auto", body["detected_source"])
	assert.Equal(t, "es", body["target"])

	w, body = do(h, jsonRequest(http.MethodPost, "/translate", `{"text":"boom"}`))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "engine unavailable", body["detail"])

	w, body = do(h, jsonRequest(http.MethodPost, "/chat", `{"message":"hi"}`))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, chat.FallbackResponse, body["response"])

	verify := httptest.NewRequest(http.MethodPost, "/auth/verify", nil)
	verify.Header.Set("Authorization", "Bearer tok")
	w, body = do(h, verify)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["valid"])

	w, body = do(h, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authorization header required", body["detail"])
}

func TestUnknownRouteAndMethod(t *testing.T) {
	h := newTestServer(t, new(identitytest.MockProvider))

	w, body := do(h, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", body["detail"])

	w, body = do(h, httptest.NewRequest(http.MethodGet, "/translate", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "Method Not Allowed", body["detail"])
}

func TestCORSPreflightAllowsAnyOriginWithCredentials(t *testing.T) {
	h := newTestServer(t, new(identitytest.MockProvider))

	req := httptest.NewRequest(http.MethodOptions, "/translate", nil)
	req.Header.Set("Origin", "http://localhost:19006")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:19006", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSPreflightEchoesRequestedHeaders(t *testing.T) {
	h := newTestServer(t, new(identitytest.MockProvider))

	req := httptest.NewRequest(http.MethodOptions, "/translate", nil)
	req.Header.Set("Origin", "http://localhost:19006")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "x-client-version, content-type")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "x-client-version, content-type", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "http://localhost:19006", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(t, new(identitytest.MockProvider))
	do(h, jsonRequest(http.MethodPost, "/chat", `{"message":"hi"}`))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `caffind_upstream_calls_total{outcome="fallback",service="inference"} 1`)
	assert.Contains(t, w.Body.String(), `caffind_http_requests_total{method="POST",route="/chat",status="200"} 1`)
}
