package rest_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/dhank77/undangan.love/internal/application"
	"github.com/dhank77/undangan.love/internal/application/dto"
	"github.com/dhank77/undangan.love/internal/domain/entity"
	"github.com/dhank77/undangan.love/internal/infra/auth"
	"github.com/dhank77/undangan.love/internal/infra/catalog"
	ai "github.com/dhank77/undangan.love/internal/infra/client/openai"
	"github.com/dhank77/undangan.love/internal/infra/config"
	"github.com/dhank77/undangan.love/internal/infra/metrics"
	"github.com/dhank77/undangan.love/internal/infra/phone"
	"github.com/dhank77/undangan.love/internal/presentation/rest"
	"github.com/dhank77/undangan.love/internal/testinfra/memstore"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	app   *fiber.App
	store *memstore.Store
	token string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	store := memstore.New()
	components, err := catalog.New()
	require.NoError(t, err)

	commands := application.NewCollection(application.Deps{
		Store:    store,
		Cache:    memstore.NewCache(),
		Catalog:  components,
		Enricher: ai.NewOpenAIClient(ai.OpenAIConfig{}),
		Phone:    phone.NewNormalizer("ID"),
		Pages:    config.PaginationConfig{DefaultPerPage: 12, MaxPerPage: 100},
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	app := rest.NewApp(rest.AppDeps{
		Server:   rest.NewServer(commands),
		Identity: auth.NewIdentityProvider(&auth.Config{}),
		Metrics:  metrics.New(),
		Logger:   logger,
		Config:   &config.ServerConfig{AllowOrigins: "*", BodyLimit: 1 << 20},
	})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": uuid.NewString()}).
		SignedString([]byte("upstream-secret"))
	require.NoError(t, err)

	return &testApp{app: app, store: store, token: token}
}

func (a *testApp) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if a.token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+a.token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (a *testApp) createTemplate(t *testing.T, layout string) entity.Template {
	t.Helper()
	resp := a.do(t, http.MethodPost, "/api/templates", map[string]any{
		"name":        "Classic Elegant",
		"html_layout": layout,
		"config_json": map[string]any{"font": "serif"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[entity.Template](t, resp)
}

func TestBuilderFlow(t *testing.T) {
	a := newTestApp(t)
	template := a.createTemplate(t, "<h1>{{bride_name}} & {{groom_name}}</h1>")

	resp := a.do(t, http.MethodPost, "/api/builders", map[string]any{
		"template_id":      template.ID,
		"name":             "Our wedding",
		"custom_data_json": map[string]any{"bride_name": "Sarah", "groom_name": "Ahmad"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	builder := decode[entity.Builder](t, resp)

	resp = a.do(t, http.MethodGet, "/api/builders/"+itoa(builder.ID)+"/render", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "<h1>Sarah & Ahmad</h1>", decode[dto.HTMLResponse](t, resp).HTML)

	resp = a.do(t, http.MethodGet, "/api/builders/"+itoa(builder.ID)+"/preview", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMETextHTML))
	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "<h1>Sarah & Ahmad</h1>", string(page))

	resp = a.do(t, http.MethodGet, "/api/builders", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, decode[[]entity.Builder](t, resp), 1)

	resp = a.do(t, http.MethodDelete, "/api/builders/"+itoa(builder.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = a.do(t, http.MethodGet, "/api/builders/"+itoa(builder.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = a.do(t, http.MethodGet, "/api/templates/"+itoa(template.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, template.Name, decode[entity.Template](t, resp).Name)
}

func TestValidationFailureListsFields(t *testing.T) {
	a := newTestApp(t)

	resp := a.do(t, http.MethodPost, "/api/templates", map[string]any{"name": "ab"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	require.Equal(t, "validation failed", body.Error)

	fields := map[string]bool{}
	for _, f := range body.Fields {
		fields[f.Field] = true
	}
	require.True(t, fields["name"])
	require.True(t, fields["html_layout"])
}

func TestNotFoundAndBadParams(t *testing.T) {
	a := newTestApp(t)

	resp := a.do(t, http.MethodGet, "/api/templates/99", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = a.do(t, http.MethodGet, "/api/builders/99/render", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = a.do(t, http.MethodPut, "/api/builders/99", map[string]any{"name": "Reception"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = a.do(t, http.MethodGet, "/api/templates/abc", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	for _, path := range []string{"/api/builders/9223372036854775808", "/api/builders/18446744073709551615/render"} {
		resp = a.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}
	resp = a.do(t, http.MethodGet, "/api/builders/9223372036854775807", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = a.do(t, http.MethodGet, "/api/templates?per_page=lots", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/api/templates", strings.NewReader("{not json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	raw, err := a.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, raw.StatusCode)
}

func TestOwnerRoutesNeedIdentity(t *testing.T) {
	a := newTestApp(t)
	a.token = ""

	for _, path := range []string{"/api/builders", "/api/editors", "/api/editors/statistics", "/api/rsvps", "/api/publishes"} {
		resp := a.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}

	resp := a.do(t, http.MethodGet, "/api/templates", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTemplatePreviewAndFilter(t *testing.T) {
	a := newTestApp(t)
	template := a.createTemplate(t, "<p>{{bride_name}} & {{groom_name}}</p>")

	resp := a.do(t, http.MethodGet, "/api/templates/"+itoa(template.ID)+"/preview", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "<p>Sarah & Ahmad</p>", decode[dto.HTMLResponse](t, resp).HTML)

	resp = a.do(t, http.MethodGet, "/api/templates?type=premium", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, decode[[]entity.Template](t, resp))

	resp = a.do(t, http.MethodGet, "/api/templates?type=free&per_page=1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, decode[[]entity.Template](t, resp), 1)
}

func TestEditorRoutes(t *testing.T) {
	a := newTestApp(t)

	resp := a.do(t, http.MethodPost, "/api/editors/save", map[string]any{
		"name":    "Landing",
		"html":    "<div>hi</div>",
		"content": map[string]any{"blocks": []any{}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	editor := decode[entity.Editor](t, resp)

	resp = a.do(t, http.MethodPost, "/api/editors/"+itoa(editor.ID)+"/duplicate", map[string]any{"name": "Landing copy"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	duplicate := decode[entity.Editor](t, resp)
	require.NotEqual(t, editor.ID, duplicate.ID)
	require.Equal(t, "<div>hi</div>", *duplicate.HTML)

	resp = a.do(t, http.MethodGet, "/api/editors/statistics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode[entity.EditorStatistics](t, resp)
	require.Equal(t, 2, stats.TotalEditors)
	require.Zero(t, stats.TotalTemplates)

	resp = a.do(t, http.MethodGet, "/api/editors/components", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, decode[[]entity.Component](t, resp))

	resp = a.do(t, http.MethodGet, "/api/editors/999", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRSVPAndPublish(t *testing.T) {
	a := newTestApp(t)
	template := a.createTemplate(t, "<h1>{{bride_name}}</h1>")
	resp := a.do(t, http.MethodPost, "/api/builders", map[string]any{"template_id": template.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	builder := decode[entity.Builder](t, resp)

	resp = a.do(t, http.MethodPost, "/api/rsvps", map[string]any{"guest_name": "Budi", "phone_number": "0812-3456-7890"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	rsvp := decode[entity.RSVP](t, resp)
	require.Equal(t, "+6281234567890", *rsvp.PhoneNumber)

	resp = a.do(t, http.MethodPost, "/api/publishes", map[string]any{"builder_id": builder.ID, "subdomain": "sarah-ahmad"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = a.do(t, http.MethodPost, "/api/publishes", map[string]any{"builder_id": builder.ID, "subdomain": "sarah-ahmad"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestEnrichWithoutKeyIsUnavailable(t *testing.T) {
	a := newTestApp(t)

	resp := a.do(t, http.MethodPost, "/api/builders/enrich-content", map[string]any{"content": "We are getting married"})
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	a := newTestApp(t)

	resp := a.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	resp = a.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "http_requests_total")
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}
