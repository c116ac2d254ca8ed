package userservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"labtrack/models"
	"labtrack/providers"
	"labtrack/serviceprovider/auth"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var refNow = time.Date(2024, time.May, 2, 14, 0, 0, 0, time.UTC)

type testDeps struct {
	repo     *MockUserRepository
	redis    *providers.MockRedisProvider
	firebase *providers.MockFirebaseProvider
}

func newTestService(t *testing.T) (*userServiceStruct, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		repo:     NewMockUserRepository(ctrl),
		redis:    providers.NewMockRedisProvider(ctrl),
		firebase: providers.NewMockFirebaseProvider(ctrl),
	}
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	return &userServiceStruct{
		repo:     deps.repo,
		jwt:      auth.NewJWTService("test-secret", "test-refresh"),
		redis:    deps.redis,
		firebase: deps.firebase,
		logger:   mockLogger,
		now:      func() time.Time { return refNow },
	}, deps
}

func hashed(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func activeUser(id string, role models.Role) *models.User {
	return &models.User{ID: id, Email: id + "@labtrack.local", Role: role, IsActive: true}
}

func assertAuthCode(t *testing.T, err error, code string) {
	t.Helper()
	var authErr *AuthError
	require.True(t, errors.As(err, &authErr), "expected AuthError, got %v", err)
	assert.Equal(t, code, authErr.Code)
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials issue tokens", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.repo.EXPECT().GetCredentialsByEmail(ctx, "tech@labtrack.local").
			Return(activeUser("tech-1", models.TechnicianRole), hashed(t, "correct horse"), nil)
		deps.repo.EXPECT().TouchLastLogin(ctx, "tech-1", refNow).Return(nil)

		session, err := svc.SignIn(ctx, SignInReq{Email: "tech@labtrack.local", Password: "correct horse"})
		require.NoError(t, err)
		assert.NotEmpty(t, session.AccessToken)
		assert.NotEmpty(t, session.RefreshToken)
		require.NotNil(t, session.User.LastLogin)

		sub, role, err := auth.NewJWTService("test-secret", "test-refresh").ParseJWT(session.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "tech-1", sub)
		assert.Equal(t, models.TechnicianRole, role)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.repo.EXPECT().GetCredentialsByEmail(ctx, gomock.Any()).
			Return(activeUser("tech-1", models.TechnicianRole), hashed(t, "correct horse"), nil)

		_, err := svc.SignIn(ctx, SignInReq{Email: "tech@labtrack.local", Password: "battery staple"})
		assertAuthCode(t, err, CodeInvalidCredentials)
	})

	t.Run("unknown email looks like a wrong password", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.repo.EXPECT().GetCredentialsByEmail(ctx, gomock.Any()).Return(nil, "", ErrUserNotFound)

		_, err := svc.SignIn(ctx, SignInReq{Email: "nobody@labtrack.local", Password: "x"})
		assertAuthCode(t, err, CodeInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc, deps := newTestService(t)
		inactive := activeUser("staff-1", models.StaffRole)
		inactive.IsActive = false
		deps.repo.EXPECT().GetCredentialsByEmail(ctx, gomock.Any()).Return(inactive, hashed(t, "pw"), nil)

		_, err := svc.SignIn(ctx, SignInReq{Email: "staff@labtrack.local", Password: "pw"})
		assertAuthCode(t, err, CodeAccountInactive)
	})
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		role         models.Role
		setupMocks   func(repo *MockUserRepository)
		expectedCode string
	}{
		{
			name: "staff account",
			role: models.StaffRole,
			setupMocks: func(repo *MockUserRepository) {
				repo.EXPECT().IsUserExists(ctx, "new.user@lab.org").Return(false, nil)
				repo.EXPECT().InsertUser(ctx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user models.User, hash string) error {
						assert.Equal(t, models.StaffRole, user.Role)
						assert.True(t, user.IsActive)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("long enough")))
						return nil
					})
				repo.EXPECT().TouchLastLogin(ctx, gomock.Any(), refNow).Return(nil)
			},
		},
		{
			name:         "admin cannot be self-assigned",
			role:         models.AdminRole,
			setupMocks:   func(repo *MockUserRepository) {},
			expectedCode: CodeRoleNotAllowed,
		},
		{
			name:         "guest cannot be self-assigned",
			role:         models.GuestRole,
			setupMocks:   func(repo *MockUserRepository) {},
			expectedCode: CodeRoleNotAllowed,
		},
		{
			name: "duplicate email",
			role: models.TechnicianRole,
			setupMocks: func(repo *MockUserRepository) {
				repo.EXPECT().IsUserExists(ctx, "new.user@lab.org").Return(true, nil)
			},
			expectedCode: CodeEmailTaken,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, deps := newTestService(t)
			tc.setupMocks(deps.repo)

			session, err := svc.SignUp(ctx, SignUpReq{
				Email:    "new.user@lab.org",
				Password: "long enough",
				FullName: "New User",
				Role:     tc.role,
			})
			if tc.expectedCode != "" {
				assertAuthCode(t, err, tc.expectedCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "new.user@lab.org", session.User.Email)
			assert.NotEmpty(t, session.AccessToken)
		})
	}
}

func TestFirebaseSignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("email claim maps to local user", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.firebase.EXPECT().VerifyIDToken(ctx, "id-token").
			Return(&firebaseauth.Token{UID: "fb-1", Claims: map[string]interface{}{"email": "tech@labtrack.local"}}, nil)
		deps.repo.EXPECT().GetUserByEmail(ctx, "tech@labtrack.local").Return(activeUser("tech-1", models.TechnicianRole), nil)
		deps.repo.EXPECT().TouchLastLogin(ctx, "tech-1", refNow).Return(nil)

		session, err := svc.FirebaseSignIn(ctx, "id-token")
		require.NoError(t, err)
		assert.Equal(t, "tech-1", session.User.ID)
	})

	t.Run("email looked up by uid", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.firebase.EXPECT().VerifyIDToken(ctx, "id-token").Return(&firebaseauth.Token{UID: "fb-2"}, nil)
		deps.firebase.EXPECT().GetUserByUID(ctx, "fb-2").
			Return(&firebaseauth.UserRecord{UserInfo: &firebaseauth.UserInfo{UID: "fb-2", Email: "staff@labtrack.local"}}, nil)
		deps.repo.EXPECT().GetUserByEmail(ctx, "staff@labtrack.local").Return(nil, ErrUserNotFound)

		_, err := svc.FirebaseSignIn(ctx, "id-token")
		assertAuthCode(t, err, CodeUnknownEmail)
	})

	t.Run("invalid token", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.firebase.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, errors.New("expired"))

		_, err := svc.FirebaseSignIn(ctx, "bad")
		assertAuthCode(t, err, CodeInvalidCredentials)
	})

	t.Run("not configured", func(t *testing.T) {
		svc, _ := newTestService(t)
		svc.firebase = nil

		_, err := svc.FirebaseSignIn(ctx, "id-token")
		assert.ErrorIs(t, err, ErrFirebaseDisabled)
	})
}

func TestRequestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a reset token", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.repo.EXPECT().GetUserByEmail(ctx, "staff@labtrack.local").Return(activeUser("staff-1", models.StaffRole), nil)
		deps.redis.EXPECT().Set(ctx, gomock.Any(), "staff-1", time.Hour).Return(nil)

		assert.NoError(t, svc.RequestPasswordReset(ctx, ResetPasswordReq{Email: "staff@labtrack.local"}))
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.repo.EXPECT().GetUserByEmail(ctx, "ghost@labtrack.local").Return(nil, ErrUserNotFound)

		err := svc.RequestPasswordReset(ctx, ResetPasswordReq{Email: "ghost@labtrack.local"})
		assertAuthCode(t, err, CodeUnknownEmail)
	})
}

func TestMeListsPermissions(t *testing.T) {
	svc, _ := newTestService(t)

	me, err := svc.Me(context.Background(), activeUser("guest-1", models.GuestRole))
	require.NoError(t, err)
	assert.Equal(t, []models.Permission{models.EquipmentRead, models.MaintenanceRead, models.ReportsView}, me.Permissions)

	_, err = svc.Me(context.Background(), nil)
	assert.Error(t, err)
}

func TestChangeRole(t *testing.T) {
	ctx := context.Background()
	admin := activeUser("admin-1", models.AdminRole)

	t.Run("admin promotes a user", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.repo.EXPECT().UpdateUserRole(ctx, "staff-1", models.TechnicianRole).Return(nil)
		deps.repo.EXPECT().GetUserByID(ctx, "staff-1").Return(activeUser("staff-1", models.TechnicianRole), nil)

		user, err := svc.ChangeRole(ctx, admin, "staff-1", models.TechnicianRole)
		require.NoError(t, err)
		assert.Equal(t, models.TechnicianRole, user.Role)
	})

	t.Run("admin cannot demote self", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.ChangeRole(ctx, admin, "admin-1", models.GuestRole)
		assert.ErrorIs(t, err, ErrSelfChange)
	})

	t.Run("technician lacks users.manage", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.ChangeRole(ctx, activeUser("tech-1", models.TechnicianRole), "staff-1", models.AdminRole)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing user", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.repo.EXPECT().UpdateUserRole(ctx, "ghost", models.StaffRole).Return(ErrUserNotFound)
		_, err := svc.ChangeRole(ctx, admin, "ghost", models.StaffRole)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestDeactivateUser(t *testing.T) {
	ctx := context.Background()
	admin := activeUser("admin-1", models.AdminRole)

	svc, deps := newTestService(t)
	deps.repo.EXPECT().DeactivateUser(ctx, "staff-1").Return(nil)
	assert.NoError(t, svc.DeactivateUser(ctx, admin, "staff-1"))
	assert.ErrorIs(t, svc.DeactivateUser(ctx, admin, "admin-1"), ErrSelfChange)
	assert.ErrorIs(t, svc.DeactivateUser(ctx, activeUser("staff-2", models.StaffRole), "staff-1"), ErrForbidden)
}

func TestSeedDemoUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled without password", func(t *testing.T) {
		svc, _ := newTestService(t)
		assert.NoError(t, svc.SeedDemoUsers(ctx, ""))
	})

	t.Run("creates only missing accounts", func(t *testing.T) {
		svc, deps := newTestService(t)
		deps.repo.EXPECT().IsUserExists(ctx, "admin@labtrack.local").Return(true, nil)
		deps.repo.EXPECT().IsUserExists(ctx, "tech@labtrack.local").Return(false, nil)
		deps.repo.EXPECT().IsUserExists(ctx, "staff@labtrack.local").Return(false, nil)
		deps.repo.EXPECT().InsertUser(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)

		assert.NoError(t, svc.SeedDemoUsers(ctx, "demo-password"))
	})
}
