package equipmentservice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"labtrack/models"
	"labtrack/providers"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*equipmentService, *MockEquipmentRepository) {
	ctrl := gomock.NewController(t)
	repo := NewMockEquipmentRepository(ctrl)
	logger := providers.NewMockZapLoggerProvider(ctrl)
	logger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()
	return &equipmentService{repo: repo, logger: logger, now: func() time.Time { return refNow }}, repo
}

func user(role models.Role) *models.User {
	return &models.User{ID: "user-" + string(role), Role: role, IsActive: true}
}

func validCreateReq() CreateEquipmentReq {
	last := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	rate := 10.0
	return CreateEquipmentReq{
		Name:                "Centrifuge",
		Model:               "5430R",
		SerialNumber:        "SN-001",
		Manufacturer:        "Eppendorf",
		Category:            "Separation",
		Location:            "Lab 2",
		PurchaseDate:        time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
		WarrantyExpiry:      time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		LastMaintenanceDate: &last,
		MaintenanceInterval: 90,
		Cost:                12000,
		DepreciationRate:    &rate,
	}
}

func TestCreateEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("derives schedule, value and qr token", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().InsertEquipment(ctx, gomock.Any()).Return(nil)

		eq, err := svc.CreateEquipment(ctx, user(models.TechnicianRole), validCreateReq())
		require.NoError(t, err)

		assert.NotEmpty(t, eq.ID)
		assert.Equal(t, models.EquipmentActive, eq.Status)
		assert.Equal(t, models.ConditionGood, eq.Condition)
		require.NotNil(t, eq.NextMaintenanceDate)
		assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), *eq.NextMaintenanceDate)
		assert.False(t, eq.NextMaintenanceManual)
		require.NotNil(t, eq.CurrentValue)
		assert.InDelta(t, 10800.0, *eq.CurrentValue, 0.001)
		assert.True(t, strings.HasPrefix(eq.QRCode, "QR-"))
		assert.True(t, strings.HasSuffix(eq.QRCode, "-SN-001"))
		assert.Equal(t, "user-technician", eq.CreatedBy)
	})

	t.Run("manual next date is kept", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().InsertEquipment(ctx, gomock.Any()).Return(nil)

		manual := time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC)
		req := validCreateReq()
		req.NextMaintenanceDate = &manual

		eq, err := svc.CreateEquipment(ctx, user(models.AdminRole), req)
		require.NoError(t, err)
		assert.True(t, eq.NextMaintenanceManual)
		assert.Equal(t, manual, *eq.NextMaintenanceDate)
	})

	t.Run("staff is forbidden", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.CreateEquipment(ctx, user(models.StaffRole), validCreateReq())
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("inactive user is forbidden", func(t *testing.T) {
		svc, _ := newTestService(t)
		admin := user(models.AdminRole)
		admin.IsActive = false
		_, err := svc.CreateEquipment(ctx, admin, validCreateReq())
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("future purchase date rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		req := validCreateReq()
		req.PurchaseDate = refNow.Add(48 * time.Hour)
		_, err := svc.CreateEquipment(ctx, user(models.AdminRole), req)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().InsertEquipment(ctx, gomock.Any()).Return(errors.New("db error"))
		_, err := svc.CreateEquipment(ctx, user(models.AdminRole), validCreateReq())
		assert.Error(t, err)
	})
}

func TestUpdateEquipment(t *testing.T) {
	ctx := context.Background()
	last := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	existing := models.Equipment{
		ID:                  "eq-1",
		Name:                "Microscope",
		SerialNumber:        "SN-9",
		Status:              models.EquipmentActive,
		Condition:           models.ConditionGood,
		PurchaseDate:        time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
		LastMaintenanceDate: &last,
		MaintenanceInterval: 30,
		Cost:                500,
	}

	t.Run("interval change reschedules", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetEquipmentByID(ctx, "eq-1").Return(existing, nil)
		repo.EXPECT().UpdateEquipment(ctx, gomock.Any()).Return(nil)

		interval := 60
		eq, err := svc.UpdateEquipment(ctx, user(models.TechnicianRole), "eq-1", UpdateEquipmentReq{MaintenanceInterval: &interval})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), *eq.NextMaintenanceDate)
		assert.Equal(t, "user-technician", eq.UpdatedBy)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().GetEquipmentByID(ctx, "missing").Return(models.Equipment{}, ErrNotFound)

		_, err := svc.UpdateEquipment(ctx, user(models.AdminRole), "missing", UpdateEquipmentReq{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("guest is forbidden", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.UpdateEquipment(ctx, user(models.GuestRole), "eq-1", UpdateEquipmentReq{})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestRetireEquipment(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	repo.EXPECT().GetEquipmentByID(ctx, "eq-1").Return(models.Equipment{
		ID: "eq-1", Name: "Scale", SerialNumber: "S-1", Status: models.EquipmentActive, Condition: models.ConditionFair,
	}, nil)
	repo.EXPECT().UpdateEquipment(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, eq models.Equipment) error {
		assert.Equal(t, models.EquipmentRetired, eq.Status)
		return nil
	})

	eq, err := svc.RetireEquipment(ctx, user(models.TechnicianRole), "eq-1")
	require.NoError(t, err)
	assert.Equal(t, models.EquipmentRetired, eq.Status)
}

func TestDeleteEquipment(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		actor       *models.User
		setup       func(repo *MockEquipmentRepository)
		expectedErr error
	}{
		{
			name:  "admin deletes",
			actor: user(models.AdminRole),
			setup: func(repo *MockEquipmentRepository) {
				repo.EXPECT().DeleteEquipmentByID(ctx, "eq-1").Return(nil)
			},
		},
		{
			name:        "technician forbidden",
			actor:       user(models.TechnicianRole),
			setup:       func(*MockEquipmentRepository) {},
			expectedErr: ErrForbidden,
		},
		{
			name:        "no session",
			actor:       nil,
			setup:       func(*MockEquipmentRepository) {},
			expectedErr: ErrForbidden,
		},
		{
			name:  "missing equipment",
			actor: user(models.AdminRole),
			setup: func(repo *MockEquipmentRepository) {
				repo.EXPECT().DeleteEquipmentByID(ctx, "eq-1").Return(ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			tc.setup(repo)

			err := svc.DeleteEquipment(ctx, tc.actor, "eq-1")
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListEquipment(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	filter := EquipmentFilter{Search: "micro", Status: "active", SortBy: SortByCost, Limit: 20}

	repo.EXPECT().ListEquipment(ctx, filter).Return([]models.Equipment{{ID: "eq-1"}}, nil)

	list, err := svc.ListEquipment(ctx, user(models.GuestRole), filter)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListEquipment(ctx, nil, filter)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApplyUpdateClearsManualSchedule(t *testing.T) {
	manual := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	eq := models.Equipment{NextMaintenanceDate: &manual, NextMaintenanceManual: true}

	out := ApplyUpdate(eq, UpdateEquipmentReq{ClearManualSchedule: true})
	assert.False(t, out.NextMaintenanceManual)
	assert.True(t, eq.NextMaintenanceManual)
}
