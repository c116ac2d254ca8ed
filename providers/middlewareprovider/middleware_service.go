package middlewareprovider

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"labtrack/models"
	"labtrack/providers"
	metricsprovider "labtrack/providers/metricsProvider"
	"labtrack/serviceprovider/auth"
	permissionservice "labtrack/services/permission"
	"labtrack/utils"

	"go.uber.org/zap"
)

type contextKey string

const userContextKey contextKey = "user_key"

var ErrNoSession = errors.New("no authenticated user in context")

type DefaultAuthMiddleware struct {
	jwt    auth.JWTService
	users  providers.UserDirectory
	logger providers.ZapLoggerProvider
}

func NewAuthMiddlewareService(jwt auth.JWTService, users providers.UserDirectory, logger providers.ZapLoggerProvider) providers.AuthMiddlewareService {
	return &DefaultAuthMiddleware{
		jwt:    jwt,
		users:  users,
		logger: logger,
	}
}

func (a *DefaultAuthMiddleware) JWTAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessToken := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if accessToken == "" {
				utils.RespondError(w, http.StatusUnauthorized, errors.New("missing access token"), "missing access token")
				return
			}

			userID, _, err := a.jwt.ParseJWT(accessToken)
			refreshed := false
			if errors.Is(err, auth.ErrTokenExpired) {
				refreshToken := r.Header.Get("refresh_token")
				if refreshToken == "" {
					utils.RespondError(w, http.StatusUnauthorized, errors.New("missing refresh token"), "access token expired, and refresh token missing")
					return
				}
				userID, err = a.jwt.ParseRefreshToken(refreshToken)
				if err != nil {
					utils.RespondError(w, http.StatusUnauthorized, err, "invalid or expired refresh token")
					return
				}
				refreshed = true
			} else if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
				return
			}

			user, err := a.users.GetUserByID(r.Context(), userID)
			if err != nil {
				a.logger.GetLogger().Warn("session subject not found", zap.String("user_id", userID), zap.Error(err))
				utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
				return
			}
			if !user.IsActive {
				utils.RespondError(w, http.StatusUnauthorized, errors.New("account deactivated"), "account deactivated")
				return
			}

			if refreshed {
				newAccessToken, err := a.jwt.GenerateJWT(user.ID, user.Role)
				if err != nil {
					utils.RespondError(w, http.StatusInternalServerError, err, "failed to generate access token")
					return
				}
				newRefreshToken, err := a.jwt.GenerateRefreshToken(user.ID)
				if err != nil {
					utils.RespondError(w, http.StatusInternalServerError, err, "failed to generate refresh token")
					return
				}
				w.Header().Set("Authorization", newAccessToken)
				w.Header().Set("Refresh_token", newRefreshToken)
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// RequirePermission admits the request only when the session user holds
// every listed permission.
func (a *DefaultAuthMiddleware) RequirePermission(perms ...models.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.GetUserFromContext(r)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
				return
			}
			if !permissionservice.HasAllPermissions(user, perms) {
				for _, p := range perms {
					if !permissionservice.HasPermission(user, p) {
						metricsprovider.IncPermissionDenied(string(p))
					}
				}
				a.logger.GetLogger().Info("permission denied",
					zap.String("user_id", user.ID),
					zap.String("role", string(user.Role)),
					zap.String("path", r.URL.Path))
				utils.RespondError(w, http.StatusForbidden, nil, "permission denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole admits the session user when its role is at least role.
func (a *DefaultAuthMiddleware) RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.GetUserFromContext(r)
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
				return
			}
			if !permissionservice.CanAccess(user, role) {
				utils.RespondError(w, http.StatusForbidden, nil, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (a *DefaultAuthMiddleware) GetUserFromContext(r *http.Request) (*models.User, error) {
	return UserFromContext(r.Context())
}

func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func UserFromContext(ctx context.Context) (*models.User, error) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	if !ok || user == nil {
		return nil, ErrNoSession
	}
	return user, nil
}
