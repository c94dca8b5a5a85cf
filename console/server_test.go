package console

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ws := NewWebServer("./templates")
	srv := httptest.NewServer(ws.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postGenerate(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestGenerateEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp := postGenerate(t, srv, "/api/generate", `{"description":"R1とC1を接続"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var out GenerateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, strings.HasPrefix(out.SVG, "<?xml"))
	assert.Contains(t, out.SVG, `<svg width="800" height="600"`)
	assert.Contains(t, out.SVG, ">R1</text>")
	assert.Contains(t, out.SVG, ">C1</text>")
}

func TestGenerateEmptyDescription(t *testing.T) {
	// An empty description is not an error: it renders the fallback circuit.
	srv := newTestServer(t)
	resp := postGenerate(t, srv, "/api/generate", `{"description":""}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out GenerateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out.SVG, ">電池</text>")
	assert.Contains(t, out.SVG, ">抵抗</text>")
	assert.Contains(t, out.SVG, ">LED</text>")
}

func TestGenerateMalformedBody(t *testing.T) {
	srv := newTestServer(t)
	resp := postGenerate(t, srv, "/api/generate", `{"description": unterminated`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerateLegacyPath(t *testing.T) {
	// The original tool served the endpoint at /generate.
	srv := newTestServer(t)
	resp := postGenerate(t, srv, "/generate", `{"description":"LEDとスイッチと電池の回路"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestIndexPage(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	var body strings.Builder
	_, err = io.Copy(&body, resp.Body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), "Circuit Sketcher")
	assert.Contains(t, body.String(), "<textarea")
}

func TestIndexPageFallback(t *testing.T) {
	// A missing templates directory falls back to the embedded page.
	ws := NewWebServer("./no-such-dir")
	srv := httptest.NewServer(ws.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUnknownPathIs404(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
