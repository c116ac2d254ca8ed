package providers

import (
	"context"
	"net/http"
	"time"

	"labtrack/models"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type AuthMiddlewareService interface {
	JWTAuthMiddleware() func(http.Handler) http.Handler
	RequirePermission(perms ...models.Permission) func(http.Handler) http.Handler
	RequireRole(role models.Role) func(http.Handler) http.Handler
	GetUserFromContext(r *http.Request) (*models.User, error)
}

type ConfigProvider interface {
	LoadEnv() error
	GetDatabaseString() string
	GetServerPort() string
	GetRedisAddr() string
	GetJWTSecret() string
	GetRefreshSecret() string
	GetFirebaseCredentials() string
	GetDemoPassword() string
}

type DBProvider interface {
	DB() *sqlx.DB
	Close() error
}

type ZapLoggerProvider interface {
	InitLogger()
	SyncLogger()
	GetLogger() *zap.Logger
}

type RedisProvider interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRangeByScore(ctx context.Context, key, min, max string) ([]string, error)
	ZRemRangeByScore(ctx context.Context, key, min, max string) error
	Publish(ctx context.Context, channel string, payload []byte) error
	Ping(ctx context.Context) error
	Close() error
}

type FirebaseProvider interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
	GetUserByUID(ctx context.Context, uid string) (*firebaseauth.UserRecord, error)
}

// UserDirectory resolves the session subject to a user record.
type UserDirectory interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}
