package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/store"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/dataset"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestNewHandler(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := authmocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().ValidateToken("valido").Return(&domain.Claims{UserID: 1, UserRoleID: middleware.RoleAnalyst}, nil).AnyTimes()
	auth.EXPECT().ValidateToken("expirado").Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidToken, apiErrors.ErrInvalidToken, "")).AnyTimes()

	holder := store.NewHolder()
	cfg := &config.Config{
		Server:  config.Server{AllowedOrigins: []string{"http://localhost:3000"}},
		Dataset: config.Dataset{MaxUploadMB: 1},
	}
	h := NewHandler(cfg, Services{
		Authenticator: auth,
		Datasets:      dataset.NewService(holder, nil),
		Reporter:      reporting.NewService(holder, nil, reporting.Options{}),
	})

	tests := []struct {
		name           string
		method         string
		target         string
		token          string
		origin         string
		expectedStatus int
	}{
		{name: "Healthcheck público", method: http.MethodGet, target: "/healthcheck", expectedStatus: http.StatusOK},
		{name: "Métricas públicas", method: http.MethodGet, target: "/metrics", expectedStatus: http.StatusOK},
		{name: "Rota protegida sem token", method: http.MethodGet, target: "/v1/kpis", expectedStatus: http.StatusUnauthorized},
		{name: "Token inválido", method: http.MethodGet, target: "/v1/kpis", token: "expirado", expectedStatus: http.StatusUnauthorized},
		{name: "Token válido sem dataset", method: http.MethodGet, target: "/v1/kpis", token: "valido", expectedStatus: http.StatusNotFound},
		{name: "Rota desconhecida", method: http.MethodGet, target: "/v1/inexistente", token: "valido", expectedStatus: http.StatusBadRequest},
		{name: "Preflight CORS", method: http.MethodOptions, target: "/v1/kpis", origin: "http://localhost:3000", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.origin != "" {
				assert.Equal(t, tt.origin, rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestNew_MissingServices(t *testing.T) {
	_, err := New(&config.Config{}, Services{})
	assert.Error(t, err)
}
