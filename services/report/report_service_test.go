package reportservice

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"labtrack/models"
	"labtrack/providers"
	alertservice "labtrack/services/alert"
	equipmentservice "labtrack/services/equipment"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testDeps struct {
	equipment   *equipmentservice.MockEquipmentRepository
	alerts      *alertservice.MockAlertRepository
	maintenance *alertservice.MockMaintenanceLister
}

func newTestService(t *testing.T) (*reportService, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		equipment:   equipmentservice.NewMockEquipmentRepository(ctrl),
		alerts:      alertservice.NewMockAlertRepository(ctrl),
		maintenance: alertservice.NewMockMaintenanceLister(ctrl),
	}
	logger := providers.NewMockZapLoggerProvider(ctrl)
	logger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()
	return &reportService{
		equipment:   deps.equipment,
		alerts:      deps.alerts,
		maintenance: deps.maintenance,
		logger:      logger,
		now:         func() time.Time { return refNow },
	}, deps
}

func user(role models.Role) *models.User {
	return &models.User{ID: "user-" + string(role), Role: role, IsActive: true}
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("guest sees stats", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.equipment.EXPECT().ListAllEquipment(ctx).Return([]models.Equipment{{ID: "eq-1", Status: models.EquipmentActive, Cost: 10}}, nil)
		deps.maintenance.EXPECT().ListAllRecords(ctx).Return([]models.MaintenanceRecord{{EquipmentID: "eq-x"}}, nil)
		deps.alerts.EXPECT().ListAlerts(ctx).Return([]models.Alert{{Priority: models.PriorityLow}}, nil)

		stats, err := svc.Dashboard(ctx, user(models.GuestRole))
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Total)
		assert.Equal(t, 1, stats.OrphanedRecords)
		assert.Equal(t, 1, stats.PendingAlerts)
	})

	t.Run("inactive user forbidden", func(t *testing.T) {
		svc, _ := newTestService(t)
		inactive := user(models.AdminRole)
		inactive.IsActive = false
		_, err := svc.Dashboard(ctx, inactive)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("storage error", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.equipment.EXPECT().ListAllEquipment(ctx).Return(nil, errors.New("db down"))
		_, err := svc.Dashboard(ctx, user(models.StaffRole))
		assert.Error(t, err)
	})
}

func TestExportEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("admin exports", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.equipment.EXPECT().ListAllEquipment(ctx).Return([]models.Equipment{{ID: "eq-1", Name: "Balance"}}, nil)

		data, err := svc.ExportEquipment(ctx, user(models.AdminRole))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("PK")), "xlsx is a zip archive")
	})

	t.Run("technician cannot export", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.ExportEquipment(ctx, user(models.TechnicianRole))
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestExportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockReportService(ctrl)
	auth := providers.NewMockAuthMiddlewareService(ctrl)
	logger := providers.NewMockZapLoggerProvider(ctrl)
	logger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()
	h := NewReportHandler(svc, auth, logger)

	admin := user(models.AdminRole)
	auth.EXPECT().GetUserFromContext(gomock.Any()).Return(admin, nil).Times(2)
	svc.EXPECT().ExportEquipment(gomock.Any(), admin).Return([]byte("PK-data"), nil)
	svc.EXPECT().Dashboard(gomock.Any(), admin).Return(models.InventoryStats{}, ErrForbidden)

	rr := httptest.NewRecorder()
	h.ExportEquipment(rr, httptest.NewRequest(http.MethodGet, "/api/reports/equipment.xlsx", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, xlsxContentType, rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "equipment.xlsx")
	assert.Equal(t, "PK-data", rr.Body.String())

	rr = httptest.NewRecorder()
	h.Dashboard(rr, httptest.NewRequest(http.MethodGet, "/api/reports/dashboard", nil))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
