package alertservice

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
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestAlertHandler(t *testing.T) (*AlertHandler, *MockAlertService, *providers.MockAuthMiddlewareService) {
	ctrl := gomock.NewController(t)
	svc := NewMockAlertService(ctrl)
	auth := providers.NewMockAuthMiddlewareService(ctrl)
	logger := providers.NewMockZapLoggerProvider(ctrl)
	logger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()
	return NewAlertHandler(svc, auth, logger), svc, auth
}

func routed(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestAcknowledgeHandlerStatusMapping(t *testing.T) {
	tech := user("tech-1", models.TechnicianRole)

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "acknowledged", expectedStatus: http.StatusOK},
		{name: "already acknowledged", serviceErr: ErrAlreadyAcknowledged, expectedStatus: http.StatusConflict},
		{name: "forbidden", serviceErr: ErrForbidden, expectedStatus: http.StatusForbidden},
		{name: "not found", serviceErr: ErrAlertNotFound, expectedStatus: http.StatusNotFound},
		{name: "storage failure", serviceErr: errors.New("db down"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, svc, auth := newTestAlertHandler(t)
			auth.EXPECT().GetUserFromContext(gomock.Any()).Return(tech, nil)
			svc.EXPECT().Acknowledge(gomock.Any(), tech, "alert-1").Return(openAlert(), tc.serviceErr)

			rr := httptest.NewRecorder()
			h.Acknowledge(rr, routed(httptest.NewRequest(http.MethodPost, "/api/alerts/alert-1/acknowledge", nil), "alert-1"))
			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestListAlertsHandlerParsesFilter(t *testing.T) {
	h, svc, auth := newTestAlertHandler(t)
	guest := user("guest-1", models.GuestRole)
	auth.EXPECT().GetUserFromContext(gomock.Any()).Return(guest, nil)
	svc.EXPECT().ListAlerts(gomock.Any(), guest, AlertFilter{Priority: "high", Type: "all", ShowAcknowledged: true}).
		Return(AlertListing{Alerts: []models.Alert{}}, nil)

	rr := httptest.NewRecorder()
	h.ListAlerts(rr, httptest.NewRequest(http.MethodGet, "/api/alerts?priority=high&type=all&show_acknowledged=true", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRaiseIssueHandlerValidates(t *testing.T) {
	staff := user("staff-1", models.StaffRole)

	t.Run("rejects synthesized types", func(t *testing.T) {
		h, _, auth := newTestAlertHandler(t)
		auth.EXPECT().GetUserFromContext(gomock.Any()).Return(staff, nil)

		body := `{"type":"maintenance_due","equipment_id":"eq-1","title":"x"}`
		rr := httptest.NewRecorder()
		h.RaiseIssue(rr, httptest.NewRequest(http.MethodPost, "/api/alerts/issue", bytes.NewBufferString(body)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("created", func(t *testing.T) {
		h, svc, auth := newTestAlertHandler(t)
		auth.EXPECT().GetUserFromContext(gomock.Any()).Return(staff, nil)
		svc.EXPECT().RaiseIssue(gomock.Any(), staff, gomock.Any()).Return(models.Alert{ID: "a-1"}, nil)

		body := `{"type":"stock_low","equipment_id":"eq-1","title":"Out of tips","priority":"medium"}`
		rr := httptest.NewRecorder()
		h.RaiseIssue(rr, httptest.NewRequest(http.MethodPost, "/api/alerts/issue", bytes.NewBufferString(body)))
		assert.Equal(t, http.StatusCreated, rr.Code)
	})
}
