package userservice

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"labtrack/models"
	"labtrack/providers"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*UserHandler, *MockUserService, *providers.MockAuthMiddlewareService) {
	ctrl := gomock.NewController(t)
	mockService := NewMockUserService(ctrl)
	mockAuth := providers.NewMockAuthMiddlewareService(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()
	return &UserHandler{Service: mockService, AuthMiddleware: mockAuth, Logger: mockLogger}, mockService, mockAuth
}

func TestSignUpHandler(t *testing.T) {
	testCases := []struct {
		name               string
		body               string
		expectServiceCall  bool
		mockServiceErr     error
		expectedStatusCode int
		expectedCode       string
	}{
		{
			name:               "registered",
			body:               `{"email":"new.user@lab.org","password":"long enough","full_name":"New User","role":"staff"}`,
			expectServiceCall:  true,
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "short password",
			body:               `{"email":"new.user@lab.org","password":"short","full_name":"New User","role":"staff"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "duplicate email",
			body:               `{"email":"new.user@lab.org","password":"long enough","full_name":"New User","role":"staff"}`,
			expectServiceCall:  true,
			mockServiceErr:     authError(CodeEmailTaken, "email already registered"),
			expectedStatusCode: http.StatusConflict,
			expectedCode:       CodeEmailTaken,
		},
		{
			name:               "role not allowed",
			body:               `{"email":"new.user@lab.org","password":"long enough","full_name":"New User","role":"admin"}`,
			expectServiceCall:  true,
			mockServiceErr:     authError(CodeRoleNotAllowed, "nope"),
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       CodeRoleNotAllowed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockService, _ := newTestHandler(t)
			if tc.expectServiceCall {
				mockService.EXPECT().SignUp(gomock.Any(), gomock.Any()).
					Return(Session{User: &models.User{ID: "u-1"}, AccessToken: "a", RefreshToken: "r"}, tc.mockServiceErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewBufferString(tc.body))
			res := httptest.NewRecorder()
			handler.SignUp(res, req)

			assert.Equal(t, tc.expectedStatusCode, res.Code)
			if tc.expectedCode != "" {
				var body AuthError
				require.NoError(t, jsoniter.NewDecoder(res.Body).Decode(&body))
				assert.Equal(t, tc.expectedCode, body.Code)
			}
		})
	}
}

func TestSignInHandler(t *testing.T) {
	handler, mockService, _ := newTestHandler(t)
	mockService.EXPECT().SignIn(gomock.Any(), SignInReq{Email: "tech@labtrack.local", Password: "pw"}).
		Return(Session{}, authError(CodeInvalidCredentials, "invalid email or password"))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", bytes.NewBufferString(`{"email":"tech@labtrack.local","password":"pw"}`))
	res := httptest.NewRecorder()
	handler.SignIn(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestRequestPasswordResetHandler(t *testing.T) {
	handler, mockService, _ := newTestHandler(t)
	mockService.EXPECT().RequestPasswordReset(gomock.Any(), ResetPasswordReq{Email: "ghost@labtrack.local"}).
		Return(authError(CodeUnknownEmail, "no account"))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/reset", bytes.NewBufferString(`{"email":"ghost@labtrack.local"}`))
	res := httptest.NewRecorder()
	handler.RequestPasswordReset(res, req)

	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestMeHandler(t *testing.T) {
	handler, mockService, mockAuth := newTestHandler(t)
	staff := activeUser("staff-1", models.StaffRole)
	mockAuth.EXPECT().GetUserFromContext(gomock.Any()).Return(staff, nil)
	mockService.EXPECT().Me(gomock.Any(), staff).
		Return(CurrentUser{User: staff, Permissions: []models.Permission{models.EquipmentRead}}, nil)

	res := httptest.NewRecorder()
	handler.Me(res, httptest.NewRequest(http.MethodGet, "/api/me", nil))

	assert.Equal(t, http.StatusOK, res.Code)
	var body map[string]interface{}
	require.NoError(t, jsoniter.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "staff-1", body["id"])
	assert.Equal(t, []interface{}{"equipment.read"}, body["permissions"])
}

func TestChangeUserRoleHandler(t *testing.T) {
	admin := activeUser("admin-1", models.AdminRole)

	testCases := []struct {
		name               string
		body               string
		authErr            error
		expectServiceCall  bool
		mockServiceErr     error
		expectedStatusCode int
	}{
		{name: "promoted", body: `{"role":"technician"}`, expectServiceCall: true, expectedStatusCode: http.StatusOK},
		{name: "unauthorized", body: `{"role":"technician"}`, authErr: errors.New("no session"), expectedStatusCode: http.StatusUnauthorized},
		{name: "unknown role", body: `{"role":"owner"}`, expectedStatusCode: http.StatusBadRequest},
		{name: "self change", body: `{"role":"guest"}`, expectServiceCall: true, mockServiceErr: ErrSelfChange, expectedStatusCode: http.StatusBadRequest},
		{name: "forbidden", body: `{"role":"admin"}`, expectServiceCall: true, mockServiceErr: ErrForbidden, expectedStatusCode: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, mockService, mockAuth := newTestHandler(t)
			if tc.authErr != nil {
				mockAuth.EXPECT().GetUserFromContext(gomock.Any()).Return(nil, tc.authErr)
			} else {
				mockAuth.EXPECT().GetUserFromContext(gomock.Any()).Return(admin, nil)
			}
			if tc.expectServiceCall {
				mockService.EXPECT().ChangeRole(gomock.Any(), admin, "user-7", gomock.Any()).
					Return(activeUser("user-7", models.TechnicianRole), tc.mockServiceErr)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/admin/users/user-7/role", bytes.NewBufferString(tc.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", "user-7")
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			res := httptest.NewRecorder()
			handler.ChangeUserRole(res, req)
			assert.Equal(t, tc.expectedStatusCode, res.Code)
		})
	}
}
