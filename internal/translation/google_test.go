package translation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"caffind_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// fakeTranslateAPI answers like the v2 REST API and records the form it received.
func fakeTranslateAPI(t *testing.T, body string, seen *url.Values) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		*seen = r.Form
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestEngine(t *testing.T, srv *httptest.Server) *GoogleEngine {
	t.Helper()
	cfg := &config.Config{TranslateEndpoint: srv.URL + "/"}
	engine, err := NewGoogleEngine(context.Background(), cfg, zap.NewNop(), option.WithoutAuthentication())
	require.NoError(t, err)
	t.Cleanup(func() { _ = engine.Close() })
	return engine
}

func TestGoogleEngine_AutoDetect(t *testing.T) {
	var seen url.Values
	srv := fakeTranslateAPI(t, `{"data":{"translations":[{"translatedText":"hola","detectedSourceLanguage":"en"}]}}`, &seen)

	res, err := newTestEngine(t, srv).Translate(context.Background(), "hello", "es", AutoDetect)

	require.NoError(t, err)
	assert.Equal(t, "hola", res.Text)
	assert.Equal(t, "en", res.Source)
	assert.Equal(t, "es", res.Target)
	assert.Equal(t, "es", seen.Get("target"))
	assert.Equal(t, "hello", seen.Get("q"))
	assert.Empty(t, seen.Get("source"))
}

func TestGoogleEngine_ExplicitSourceIsReported(t *testing.T) {
	var seen url.Values
	srv := fakeTranslateAPI(t, `{"data":{"translations":[{"translatedText":"hello"}]}}`, &seen)

	res, err := newTestEngine(t, srv).Translate(context.Background(), "bonjour", "en", "fr")

	require.NoError(t, err)
	assert.Equal(t, "hello", res.Text)
	assert.Equal(t, "fr", res.Source)
	assert.Equal(t, "fr", seen.Get("source"))
}

func TestGoogleEngine_InvalidTargetNeverCallsAPI(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	defer srv.Close()

	_, err := newTestEngine(t, srv).Translate(context.Background(), "hello", "!!", AutoDetect)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid target language")
	assert.False(t, called)
}

func TestNewGoogleEngine_MissingCredentialsFile(t *testing.T) {
	cfg := &config.Config{TranslateCredentialsPath: "/nonexistent/creds.json"}

	_, err := NewGoogleEngine(context.Background(), cfg, zap.NewNop())

	assert.ErrorContains(t, err, "translation credentials file not found")
}
