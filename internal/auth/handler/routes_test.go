package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kelvinmenegasse/idp-server/internal/auth/handler"
	"github.com/kelvinmenegasse/idp-server/internal/auth/service"
	"github.com/kelvinmenegasse/idp-server/internal/mocks"
)

// TestRegisterRoutes verifies the auth routes are mounted. Handlers answering
// with 400/401 for the empty requests is fine; only a 404 means the route is
// missing.
func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mocks.NewMockAccountManager(ctrl)
	mockTokens := mocks.NewMockTokenManager(ctrl)
	authService := service.NewAuthService(mockAccounts, mockTokens, zap.NewNop())
	authHandler := handler.NewAuthHandler(authService, mockTokens)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	routes := []string{
		"/api/v1/auth/signup",
		"/api/v1/auth/signin",
		"/api/v1/auth/logout",
		"/api/v1/auth/refresh",
	}

	for _, path := range routes {
		t.Run(fmt.Sprintf("POST %s exists", path), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}
