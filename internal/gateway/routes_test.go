package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"placement-service/internal/gateway/proxy"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seen struct {
	method      string
	path        string
	query       string
	contentType string
	body        string
	file        string
}

// upstream records the last request and answers with a JSON echo of its path.
func upstream(t *testing.T, last *seen) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*last = seen{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, contentType: r.Header.Get("Content-Type")}
		if strings.HasPrefix(last.contentType, "multipart/form-data") {
			if f, _, err := r.FormFile("file"); err == nil {
				data, _ := io.ReadAll(f)
				last.file = string(data)
				f.Close()
			}
		} else {
			data, _ := io.ReadAll(r.Body)
			last.body = string(data)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"path": r.URL.Path})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newGateway(target string) *fiber.App {
	app := fiber.New()
	Register(app, proxy.New(nil, zerolog.Nop()), target)
	return app
}

func TestForward_JSONBody(t *testing.T) {
	var last seen
	app := newGateway(upstream(t, &last).URL)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/fit-check", strings.NewReader(`{"furnitureItems":[]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, http.MethodPost, last.method)
	assert.Equal(t, "/fit-check", last.path)
	assert.Equal(t, "application/json", last.contentType)
	assert.Equal(t, `{"furnitureItems":[]}`, last.body)
}

func TestForward_ReportID(t *testing.T) {
	var last seen
	app := newGateway(upstream(t, &last).URL)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/fit-check/reports/abc-123", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, http.MethodGet, last.method)
	assert.Equal(t, "/fit-check/reports/abc-123", last.path)
}

func TestForward_MultipartWithQuery(t *testing.T) {
	var last seen
	app := newGateway(upstream(t, &last).URL)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "plan.svg")
	require.NoError(t, err)
	_, err = part.Write([]byte("<svg/>"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms/import?scale=2", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/rooms/import", last.path)
	assert.Equal(t, "scale=2", last.query)
	assert.Equal(t, "<svg/>", last.file)
}

func TestForward_UpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	target := srv.URL
	srv.Close()

	app := newGateway(target)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/fit-checker/rules", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestDocs(t *testing.T) {
	app := newGateway("http://127.0.0.1:0")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil))
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), "/fit-check/placement")
}

func TestReadiness_FollowsUpstream(t *testing.T) {
	var last seen
	app := newGateway(upstream(t, &last).URL)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/health/ready", last.path)
}

func TestReadiness_UpstreamNotReady(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	app := newGateway(srv.URL)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestReadiness_UpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	target := srv.URL
	srv.Close()

	app := newGateway(target)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
