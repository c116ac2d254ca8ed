package userservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"labtrack/models"
	"labtrack/providers"
	"labtrack/serviceprovider/auth"
	permissionservice "labtrack/services/permission"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	resetTokenPrefix = "labtrack:reset:"
	resetTokenTTL    = time.Hour
)

type UserService interface {
	SignIn(ctx context.Context, req SignInReq) (Session, error)
	SignUp(ctx context.Context, req SignUpReq) (Session, error)
	FirebaseSignIn(ctx context.Context, idToken string) (Session, error)
	RequestPasswordReset(ctx context.Context, req ResetPasswordReq) error
	Me(ctx context.Context, actor *models.User) (CurrentUser, error)
	ListUsers(ctx context.Context, actor *models.User) ([]models.User, error)
	ChangeRole(ctx context.Context, actor *models.User, userID string, role models.Role) (*models.User, error)
	DeactivateUser(ctx context.Context, actor *models.User, userID string) error
	SeedDemoUsers(ctx context.Context, password string) error
}

type userServiceStruct struct {
	repo     UserRepository
	jwt      auth.JWTService
	redis    providers.RedisProvider
	firebase providers.FirebaseProvider
	logger   providers.ZapLoggerProvider
	now      func() time.Time
}

// NewUserService builds the directory service. firebase may be nil, in which
// case FirebaseSignIn is disabled.
func NewUserService(repo UserRepository, jwt auth.JWTService, redis providers.RedisProvider,
	firebase providers.FirebaseProvider, logger providers.ZapLoggerProvider) UserService {
	return &userServiceStruct{
		repo:     repo,
		jwt:      jwt,
		redis:    redis,
		firebase: firebase,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *userServiceStruct) issueSession(ctx context.Context, user *models.User) (Session, error) {
	accessToken, err := s.jwt.GenerateJWT(user.ID, user.Role)
	if err != nil {
		return Session{}, err
	}
	refreshToken, err := s.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return Session{}, err
	}
	now := s.now().UTC()
	if err := s.repo.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.logger.GetLogger().Warn("failed to record last login", zap.String("user_id", user.ID), zap.Error(err))
	} else {
		user.LastLogin = &now
	}
	return Session{User: user, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *userServiceStruct) SignIn(ctx context.Context, req SignInReq) (Session, error) {
	user, hash, err := s.repo.GetCredentialsByEmail(ctx, req.Email)
	if errors.Is(err, ErrUserNotFound) {
		return Session{}, authError(CodeInvalidCredentials, "invalid email or password")
	}
	if err != nil {
		return Session{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		s.logger.GetLogger().Info("sign in rejected", zap.String("email", req.Email))
		return Session{}, authError(CodeInvalidCredentials, "invalid email or password")
	}
	if !user.IsActive {
		return Session{}, authError(CodeAccountInactive, "account has been deactivated")
	}
	return s.issueSession(ctx, user)
}

// SignUp registers a self-service account. Only staff and technician roles
// can be chosen; admins promote users afterwards.
func (s *userServiceStruct) SignUp(ctx context.Context, req SignUpReq) (Session, error) {
	if req.Role != models.StaffRole && req.Role != models.TechnicianRole {
		return Session{}, authError(CodeRoleNotAllowed, fmt.Sprintf("role %q cannot be chosen at sign up", req.Role))
	}
	exists, err := s.repo.IsUserExists(ctx, req.Email)
	if err != nil {
		return Session{}, err
	}
	if exists {
		return Session{}, authError(CodeEmailTaken, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, fmt.Errorf("failed to hash password: %w", err)
	}
	now := s.now().UTC()
	user := &models.User{
		ID:         uuid.NewString(),
		Email:      normalizeEmail(req.Email),
		FullName:   req.FullName,
		Role:       req.Role,
		Department: req.Department,
		Phone:      req.Phone,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.InsertUser(ctx, *user, string(hash)); err != nil {
		s.logger.GetLogger().Error("failed to register user", zap.String("email", user.Email), zap.Error(err))
		return Session{}, err
	}
	s.logger.GetLogger().Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return s.issueSession(ctx, user)
}

// FirebaseSignIn verifies a Firebase ID token and signs in the local user
// with the same email. Accounts are not created on the fly.
func (s *userServiceStruct) FirebaseSignIn(ctx context.Context, idToken string) (Session, error) {
	if s.firebase == nil {
		return Session{}, ErrFirebaseDisabled
	}
	token, err := s.firebase.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.logger.GetLogger().Info("firebase token rejected", zap.Error(err))
		return Session{}, authError(CodeInvalidCredentials, "invalid firebase token")
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		record, err := s.firebase.GetUserByUID(ctx, token.UID)
		if err != nil {
			return Session{}, fmt.Errorf("failed to load firebase user: %w", err)
		}
		email = record.Email
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return Session{}, authError(CodeUnknownEmail, "no account is registered for this email")
	}
	if err != nil {
		return Session{}, err
	}
	if !user.IsActive {
		return Session{}, authError(CodeAccountInactive, "account has been deactivated")
	}
	return s.issueSession(ctx, user)
}

// RequestPasswordReset stores a one-hour reset token for the account. Mail
// delivery picks the token up from redis.
func (s *userServiceStruct) RequestPasswordReset(ctx context.Context, req ResetPasswordReq) error {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, ErrUserNotFound) {
		return authError(CodeUnknownEmail, "no account is registered for this email")
	}
	if err != nil {
		return err
	}
	token := uuid.NewString()
	if err := s.redis.Set(ctx, resetTokenPrefix+token, user.ID, resetTokenTTL); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}
	s.logger.GetLogger().Info("password reset requested", zap.String("user_id", user.ID))
	return nil
}

func (s *userServiceStruct) Me(ctx context.Context, actor *models.User) (CurrentUser, error) {
	if actor == nil {
		return CurrentUser{}, ErrUserNotFound
	}
	return CurrentUser{
		User:        actor,
		Permissions: permissionservice.PermissionsFor(actor.Role).Slice(),
	}, nil
}

func (s *userServiceStruct) authorizeAdmin(actor *models.User, target string) error {
	if !permissionservice.HasPermission(actor, models.UsersManage) {
		return ErrForbidden
	}
	if target == actor.ID {
		return ErrSelfChange
	}
	return nil
}

func (s *userServiceStruct) ListUsers(ctx context.Context, actor *models.User) ([]models.User, error) {
	if !permissionservice.HasPermission(actor, models.UsersManage) {
		return nil, ErrForbidden
	}
	return s.repo.ListUsers(ctx)
}

func (s *userServiceStruct) ChangeRole(ctx context.Context, actor *models.User, userID string, role models.Role) (*models.User, error) {
	if err := s.authorizeAdmin(actor, userID); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateUserRole(ctx, userID, role); err != nil {
		return nil, err
	}
	s.logger.GetLogger().Info("user role changed",
		zap.String("user_id", userID),
		zap.String("role", string(role)),
		zap.String("by", actor.ID))
	return s.repo.GetUserByID(ctx, userID)
}

func (s *userServiceStruct) DeactivateUser(ctx context.Context, actor *models.User, userID string) error {
	if err := s.authorizeAdmin(actor, userID); err != nil {
		return err
	}
	if err := s.repo.DeactivateUser(ctx, userID); err != nil {
		return err
	}
	s.logger.GetLogger().Info("user deactivated", zap.String("user_id", userID), zap.String("by", actor.ID))
	return nil
}

var demoUsers = []models.User{
	{Email: "admin@labtrack.local", FullName: "Lab Administrator", Role: models.AdminRole},
	{Email: "tech@labtrack.local", FullName: "Lab Technician", Role: models.TechnicianRole},
	{Email: "staff@labtrack.local", FullName: "Lab Staff", Role: models.StaffRole},
}

// SeedDemoUsers creates the demo accounts that are missing. An empty
// password disables seeding.
func (s *userServiceStruct) SeedDemoUsers(ctx context.Context, password string) error {
	if password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}
	now := s.now().UTC()
	for _, demo := range demoUsers {
		exists, err := s.repo.IsUserExists(ctx, demo.Email)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		user := demo
		user.ID = uuid.NewString()
		user.IsActive = true
		user.CreatedAt, user.UpdatedAt = now, now
		if err := s.repo.InsertUser(ctx, user, string(hash)); err != nil {
			return err
		}
		s.logger.GetLogger().Info("demo user seeded", zap.String("email", user.Email), zap.String("role", string(user.Role)))
	}
	return nil
}
