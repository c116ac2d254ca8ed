package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"labtrack/providers"
	configprovider "labtrack/providers/configProvider"
	"labtrack/providers/databaseProvider"
	firebaseprovider "labtrack/providers/firebaseProvider"
	"labtrack/providers/loggerProvider"
	metricsprovider "labtrack/providers/metricsProvider"
	"labtrack/providers/middlewareprovider"
	redisprovider "labtrack/providers/redisProvider"
	"labtrack/serviceprovider/auth"
	alertservice "labtrack/services/alert"
	equipmentservice "labtrack/services/equipment"
	maintenanceservice "labtrack/services/maintenance"
	reportservice "labtrack/services/report"
	userservice "labtrack/services/user"

	"go.uber.org/zap"
)

const alertEvaluationInterval = 15 * time.Minute

type Server struct {
	Config             providers.ConfigProvider
	DB                 providers.DBProvider
	Redis              providers.RedisProvider
	Logger             providers.ZapLoggerProvider
	Middleware         providers.AuthMiddlewareService
	UserHandler        *userservice.UserHandler
	EquipmentHandler   *equipmentservice.EquipmentHandler
	MaintenanceHandler *maintenanceservice.MaintenanceHandler
	AlertHandler       *alertservice.AlertHandler
	ReportHandler      *reportservice.ReportHandler
	alertService       alertservice.AlertService
	stopScheduler      context.CancelFunc
	httpServer         *http.Server
}

func SrvInit() *Server {
	logger := loggerProvider.NewLogProvider()
	logger.InitLogger()

	cfg := configprovider.NewConfigProvider()
	if err := cfg.LoadEnv(); err != nil {
		logger.GetLogger().Fatal("invalid configuration", zap.Error(err))
	}
	metricsprovider.Init()

	db := databaseProvider.NewDBProvider(cfg.GetDatabaseString(), logger.GetLogger())
	redis := redisprovider.NewRedisProvider(cfg.GetRedisAddr())
	if err := redis.Ping(context.Background()); err != nil {
		logger.GetLogger().Warn("redis unreachable, dismissals and alert events degrade", zap.Error(err))
	}

	var firebase providers.FirebaseProvider
	if creds := cfg.GetFirebaseCredentials(); creds != "" {
		fb, err := firebaseprovider.NewFirebaseProvider(context.Background(), creds)
		if err != nil {
			logger.GetLogger().Warn("firebase sign-in disabled", zap.Error(err))
		} else {
			firebase = fb
		}
	}

	// repositories
	userRepo := userservice.NewUserRepository(db.DB())
	equipmentRepo := equipmentservice.NewEquipmentRepository(db.DB())
	maintenanceRepo := maintenanceservice.NewMaintenanceRepository(db.DB())
	alertRepo := alertservice.NewAlertRepository(db.DB())

	jwt := auth.NewJWTService(cfg.GetJWTSecret(), cfg.GetRefreshSecret())
	middleware := middlewareprovider.NewAuthMiddlewareService(jwt, userRepo, logger)

	// services
	userService := userservice.NewUserService(userRepo, jwt, redis, firebase, logger)
	equipmentService := equipmentservice.NewEquipmentService(equipmentRepo, logger)
	maintenanceService := maintenanceservice.NewMaintenanceService(maintenanceRepo, equipmentRepo, userRepo, logger)
	alertService := alertservice.NewAlertService(alertRepo, equipmentRepo, maintenanceRepo,
		alertservice.NewRedisDismissalStore(redis), logger,
		alertservice.WithNotifier(alertservice.NewRedisNotifier(redis)))
	reportService := reportservice.NewReportService(equipmentRepo, alertRepo, maintenanceRepo, logger)

	if err := userService.SeedDemoUsers(context.Background(), cfg.GetDemoPassword()); err != nil {
		logger.GetLogger().Error("failed to seed demo users", zap.Error(err))
	}

	return &Server{
		Config:             cfg,
		DB:                 db,
		Redis:              redis,
		Logger:             logger,
		Middleware:         middleware,
		UserHandler:        userservice.NewUserHandler(userService, middleware, logger),
		EquipmentHandler:   equipmentservice.NewEquipmentHandler(equipmentService, middleware, logger),
		MaintenanceHandler: maintenanceservice.NewMaintenanceHandler(maintenanceService, middleware, logger),
		AlertHandler:       alertservice.NewAlertHandler(alertService, middleware, logger),
		ReportHandler:      reportservice.NewReportHandler(reportService, middleware, logger),
		alertService:       alertService,
	}
}

func (s *Server) Start() {
	addr := ":" + s.Config.GetServerPort()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.InjectRoutes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.stopScheduler = cancel
	go alertservice.RunScheduler(ctx, s.alertService, alertEvaluationInterval, s.Logger.GetLogger())

	s.Logger.GetLogger().Info("server running", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func (s *Server) Stop() {
	s.Logger.GetLogger().Info("shutting down server...")
	if s.stopScheduler != nil {
		s.stopScheduler()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.Logger.GetLogger().Error("error shutting down server", zap.Error(err))
		}
	}
	if err := s.Redis.Close(); err != nil {
		s.Logger.GetLogger().Error("error closing redis", zap.Error(err))
	}
	if err := s.DB.Close(); err != nil {
		s.Logger.GetLogger().Error("error closing DB", zap.Error(err))
	}
	s.Logger.GetLogger().Info("server shutdown complete")
}
