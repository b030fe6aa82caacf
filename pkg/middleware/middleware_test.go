package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/satisfaction-monitor-api/internal/config"
	"github.com/vfg2006/satisfaction-monitor-api/internal/domain"
	"github.com/vfg2006/satisfaction-monitor-api/internal/usecases/authenticating"
)

const testSecret = "segredo-de-teste"

func signedToken(t *testing.T, claims domain.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	auth := authenticating.NewService(&config.Config{Auth: config.Auth{Secret: testSecret}})

	valid := signedToken(t, domain.Claims{
		UserID:     7,
		UserRoleID: RoleClient,
		CompanyID:  "12",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	expired := signedToken(t, domain.Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
		wantCalled bool
	}{
		{name: "Healthcheck é público", path: "/healthcheck", wantStatus: http.StatusOK, wantCalled: true},
		{name: "Métricas são públicas", path: "/metrics", wantStatus: http.StatusOK, wantCalled: true},
		{name: "Sem cabeçalho", path: "/v1/analytics", wantStatus: http.StatusUnauthorized},
		{name: "Sem Bearer", path: "/v1/analytics", header: valid, wantStatus: http.StatusUnauthorized},
		{name: "Token expirado", path: "/v1/analytics", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "Token válido", path: "/v1/analytics", header: "Bearer " + valid, wantStatus: http.StatusOK, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				if tt.header != "" {
					claims, ok := ClaimsFromContext(r.Context())
					require.True(t, ok)
					assert.Equal(t, 7, claims.UserID)

					session, ok := SessionFromContext(r.Context())
					require.True(t, ok)
					assert.Equal(t, valid, session.Token)
				}
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		name       string
		claims     *domain.Claims
		middleware func(http.Handler) http.Handler
		wantStatus int
	}{
		{name: "Sem claims", middleware: AllRoles(), wantStatus: http.StatusUnauthorized},
		{name: "Cliente na visão geral", claims: &domain.Claims{UserID: 7, UserRoleID: RoleClient}, middleware: AdminOrSupervisor(), wantStatus: http.StatusForbidden},
		{name: "Supervisor na visão geral", claims: &domain.Claims{UserID: 2, UserRoleID: RoleSupervisor}, middleware: AdminOrSupervisor(), wantStatus: http.StatusOK},
		{name: "Supervisor em rota de admin", claims: &domain.Claims{UserID: 2, UserRoleID: RoleSupervisor}, middleware: AdminOnly(), wantStatus: http.StatusForbidden},
		{name: "Cliente em rota comum", claims: &domain.Claims{UserID: 7, UserRoleID: RoleClient}, middleware: AllRoles(), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/analytics", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := Cors([]string{"http://localhost:5173"})(next)

	req := httptest.NewRequest(http.MethodOptions, "/v1/analytics", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/analytics", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
