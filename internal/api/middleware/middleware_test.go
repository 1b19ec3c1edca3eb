package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/jwt"
)

func newTokens() *jwt.Manager {
	return jwt.NewManager("test-secret", time.Hour, "defence-booking")
}

func protected(roles ...domain.Role) http.Handler {
	return Auth(newTokens())(RequireRoles(roles...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := GetUserID(r.Context())
		role, _ := GetUserRole(r.Context())
		fmt.Fprintf(w, "%d:%s", userID, role)
	})))
}

func TestAuth_MissingToken(t *testing.T) {
	rec := httptest.NewRecorder()
	protected(domain.StudentRoles...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":401`)
}

func TestAuth_InvalidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	rec := httptest.NewRecorder()
	protected(domain.StudentRoles...).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_RoleAllowed(t *testing.T) {
	token, err := newTokens().GenerateAccessToken(7, string(domain.RoleAdminStudent))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	protected(domain.StudentRoles...).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7:ADMIN_STUDENT", rec.Body.String())
}

func TestAuth_RoleForbidden(t *testing.T) {
	token, err := newTokens().GenerateAccessToken(7, string(domain.RoleStudent))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	protected(domain.TeacherRoles...).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

type observedRequest struct {
	method, route string
	status        int
}

type fakeHTTPMetrics struct {
	mu       sync.Mutex
	observed []observedRequest
}

func (m *fakeHTTPMetrics) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observed = append(m.observed, observedRequest{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	collector := &fakeHTTPMetrics{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(collector))
	r.HandleFunc("/defence-sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/defence-sessions/42", nil))

	require.Len(t, collector.observed, 1)
	assert.Equal(t, observedRequest{http.MethodGet, "/defence-sessions/{id}", http.StatusNotFound}, collector.observed[0])
}
