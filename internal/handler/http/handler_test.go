package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/config"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, config.App{}, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, config.App{}, logger.Nop())

	assert.Equal(t, svc, h.services)
}

func TestNewHandler_StoresAppConfig(t *testing.T) {
	h := NewHandler(&service.Services{}, config.App{HashKey: "key", Version: "1.2.3"}, logger.Nop())

	assert.Equal(t, "key", h.hashKey)
	assert.Equal(t, "1.2.3", h.version)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(&service.Services{}, config.App{Version: "test-version"}, logger.Nop())
}

func TestInit_ReturnsRouter(t *testing.T) {
	router := newTestHandler(t).Init()

	require.NotNil(t, router)
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	// messages
	{http.MethodPost, "/api/messages"},
	{http.MethodGet, "/api/messages/1"},
	{http.MethodPut, "/api/messages/1"},
	{http.MethodDelete, "/api/messages/1"},
	{http.MethodGet, "/api/conversations"},
	{http.MethodGet, "/api/conversations/latest"},
	// posts
	{http.MethodPost, "/api/posts/shares"},
	{http.MethodGet, "/api/posts/shares/1"},
	{http.MethodGet, "/api/groups/1/feed"},
	// transactions
	{http.MethodPost, "/api/transactions"},
	{http.MethodGet, "/api/transactions"},
	{http.MethodGet, "/api/users/1/transactions"},
	// media
	{http.MethodPost, "/api/media"},
	{http.MethodGet, "/api/media/1"},
	{http.MethodDelete, "/api/media/1"},
	// version
	{http.MethodGet, "/api/version"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(t).Init()

	for _, tc := range expectedRoutes {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			// 404 means the route is missing, 405 means the method is not
			// registered. Anything else proves the route exists.
			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_UnknownMethodHidesRoute(t *testing.T) {
	router := newTestHandler(t).Init()

	req := httptest.NewRequest(http.MethodPatch, "/api/messages", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// Version endpoint
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	router := newTestHandler(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}
