package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		header         string
		mockSetup      func(m *mocks.MockAuthenticator)
		expectedStatus int
	}{
		{
			name:           "Rota pública sem token",
			method:         http.MethodGet,
			path:           "/healthcheck",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Preflight sem token",
			method:         http.MethodOptions,
			path:           "/v1/kpis",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Sem cabeçalho Authorization",
			method:         http.MethodGet,
			path:           "/v1/kpis",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Cabeçalho sem Bearer",
			method:         http.MethodGet,
			path:           "/v1/kpis",
			header:         "Basic abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token inválido",
			method: http.MethodGet,
			path:   "/v1/kpis",
			header: "Bearer ruim",
			mockSetup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("ruim").Return(nil, errors.New("token expirado"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token válido",
			method: http.MethodGet,
			path:   "/v1/kpis",
			header: "Bearer bom",
			mockSetup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("bom").Return(&domain.Claims{UserID: 1, UserRoleID: RoleAnalyst}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			authService := mocks.NewMockAuthenticator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(authService)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(authService)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		middleware     func(http.Handler) http.Handler
		claims         *domain.Claims
		expectedStatus int
	}{
		{
			name:           "Sem usuário no contexto",
			middleware:     AllRoles(),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Admin em rota de admin",
			middleware:     AdminOnly(),
			claims:         &domain.Claims{UserID: 1, UserRoleID: RoleAdmin},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Analista em rota de admin",
			middleware:     AdminOnly(),
			claims:         &domain.Claims{UserID: 2, UserRoleID: RoleAnalyst},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Analista em rota de analista",
			middleware:     AdminOrAnalyst(),
			claims:         &domain.Claims{UserID: 2, UserRoleID: RoleAnalyst},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Supervisor em rota de analista",
			middleware:     AdminOrAnalyst(),
			claims:         &domain.Claims{UserID: 3, UserRoleID: RoleSupervisor},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Supervisor em rota comum",
			middleware:     AllRoles(),
			claims:         &domain.Claims{UserID: 3, UserRoleID: RoleSupervisor},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/abc-snapshots", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/v1/kpis", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/v1/kpis", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func useTestLogger(t *testing.T) *test.Hook {
	t.Helper()

	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.InfoLevel)

	previous := log.L
	log.L = log.New(base)
	t.Cleanup(func() { log.L = previous })

	return hook
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		annotate      log.Fields
		expectedLevel logrus.Level
	}{
		{
			name:   "Análise concluída registra chave e filtros",
			status: http.StatusOK,
			annotate: log.Fields{
				log.FieldAnalysis: "abc",
				log.FieldKey:      "client",
				log.FieldFilters:  map[string]string{"seller": "Ana"},
			},
			expectedLevel: logrus.InfoLevel,
		},
		{
			name:          "Erro de validação vira aviso",
			status:        http.StatusBadRequest,
			annotate:      log.Fields{log.FieldAnalysis: "ranking"},
			expectedLevel: logrus.WarnLevel,
		},
		{
			name:          "Erro interno vira erro",
			status:        http.StatusInternalServerError,
			annotate:      log.Fields{log.FieldDatasetID: "ds-1"},
			expectedLevel: logrus.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := useTestLogger(t)

			handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				log.Annotate(r.Context(), tt.annotate)
				w.WriteHeader(tt.status)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/abc/client?seller=Ana", nil))

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tt.expectedLevel, entry.Level)
			assert.Equal(t, tt.status, entry.Data["status_code"])
			assert.Equal(t, "/v1/abc/client", entry.Data["path"])
			assert.NotEmpty(t, entry.Data[log.FieldCorrelationID])
			for k, v := range tt.annotate {
				assert.Equal(t, v, entry.Data[k])
			}
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	hook := useTestLogger(t)

	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/kpis", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "falha inesperada", hook.LastEntry().Data["panic_error"])
}
