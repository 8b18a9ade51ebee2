package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "servihub/internal/delivery/context"
	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/service"
	"servihub/internal/errors"
	mockService "servihub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(target, header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	profileID := uuid.New()

	tests := []struct {
		name     string
		target   string
		header   string
		setup    func(tokens *mockService.MockTokenService)
		wantCode int
		wantErr  string
		wantRole entity.Role
	}{
		{
			name:     "missing header",
			target:   "/api/v1/wallet",
			wantCode: http.StatusUnauthorized,
			wantErr:  "MISSING_TOKEN",
		},
		{
			name:     "wrong scheme",
			target:   "/api/v1/wallet",
			header:   "Basic abc",
			wantCode: http.StatusUnauthorized,
			wantErr:  "MISSING_TOKEN",
		},
		{
			name:   "invalid token",
			target: "/api/v1/wallet",
			header: "Bearer bad",
			setup: func(tokens *mockService.MockTokenService) {
				tokens.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("expired"))
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_TOKEN",
		},
		{
			name:   "token without known role",
			target: "/api/v1/wallet",
			header: "Bearer norole",
			setup: func(tokens *mockService.MockTokenService) {
				tokens.EXPECT().ValidateAccessToken("norole").
					Return(&service.Claims{UserID: profileID, Roles: []string{"superuser"}}, nil)
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_TOKEN",
		},
		{
			name:   "bearer header",
			target: "/api/v1/wallet",
			header: "Bearer good",
			setup: func(tokens *mockService.MockTokenService) {
				tokens.EXPECT().ValidateAccessToken("good").
					Return(&service.Claims{UserID: profileID, Roles: []string{"technician", "client"}}, nil)
			},
			wantCode: http.StatusNoContent,
			wantRole: entity.RoleTechnician,
		},
		{
			name:   "query token for event streams",
			target: "/api/v1/realtime/events?access_token=stream",
			setup: func(tokens *mockService.MockTokenService) {
				tokens.EXPECT().ValidateAccessToken("stream").
					Return(&service.Claims{UserID: profileID, Roles: []string{"client"}}, nil)
			},
			wantCode: http.StatusNoContent,
			wantRole: entity.RoleClient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}
			m := NewAuthMiddleware(AuthMiddlewareParams{TokenSvc: tokens})
			c, rec := newAuthContext(tt.target, tt.header)

			err := m.Authenticate(func(c echo.Context) error {
				actor, ok := GetActor(c)
				require.True(t, ok)
				assert.Equal(t, profileID, actor.ID)
				assert.Equal(t, tt.wantRole, actor.Role)

				return c.NoContent(http.StatusNoContent)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errorCode(t, rec))
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{TokenSvc: mockService.NewMockTokenService(t)})
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	c, rec := newAuthContext("/api/v1/settings", "")
	require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = newAuthContext("/api/v1/settings", "")
	deliverycontext.SetIdentity(c, uuid.New(), entity.RoleVendor)
	require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, rec))

	c, rec = newAuthContext("/api/v1/settings", "")
	deliverycontext.SetIdentity(c, uuid.New(), entity.RoleAdmin)
	require.NoError(t, m.RequireRole(entity.RoleVendor, entity.RoleAdmin)(next)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
