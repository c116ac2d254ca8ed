package configprovider

import (
	"fmt"
	"log"
	"os"

	"labtrack/providers"

	"github.com/joho/godotenv"
)

type EnvConfigProvider struct {
	dbUser              string
	dbPassword          string
	dbHost              string
	dbPort              string
	dbName              string
	serverPort          string
	redisAddr           string
	jwtSecret           string
	refreshSecret       string
	firebaseCredentials string
	demoPassword        string
}

func NewConfigProvider() providers.ConfigProvider {
	return &EnvConfigProvider{}
}

func (e *EnvConfigProvider) LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not loaded, using system envs")
	}

	e.dbUser = os.Getenv("DB_USER")
	e.dbPassword = os.Getenv("DB_PASSWORD")
	e.dbHost = os.Getenv("DB_HOST")
	e.dbPort = getEnv("DB_PORT", "5432")
	e.dbName = os.Getenv("DB_NAME")
	e.serverPort = getEnv("SERVER_PORT", "8080")
	e.redisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	e.jwtSecret = os.Getenv("SECRET_KEY")
	e.refreshSecret = os.Getenv("REFRESH_TOKEN")
	e.firebaseCredentials = os.Getenv("FIREBASE_CREDENTIALS")
	e.demoPassword = os.Getenv("DEMO_PASSWORD")

	if e.jwtSecret == "" || e.refreshSecret == "" {
		return fmt.Errorf("SECRET_KEY and REFRESH_TOKEN must be set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (e *EnvConfigProvider) GetServerPort() string {
	return e.serverPort
}

func (e *EnvConfigProvider) GetDatabaseString() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		e.dbUser, e.dbPassword, e.dbHost, e.dbPort, e.dbName)
}

func (e *EnvConfigProvider) GetRedisAddr() string {
	return e.redisAddr
}

func (e *EnvConfigProvider) GetJWTSecret() string {
	return e.jwtSecret
}

func (e *EnvConfigProvider) GetRefreshSecret() string {
	return e.refreshSecret
}

// GetFirebaseCredentials is the path to a service account JSON file. Empty
// disables Firebase sign-in.
func (e *EnvConfigProvider) GetFirebaseCredentials() string {
	return e.firebaseCredentials
}

// GetDemoPassword seeds the demo directory when set.
func (e *EnvConfigProvider) GetDemoPassword() string {
	return e.demoPassword
}
