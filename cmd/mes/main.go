package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/superpjh-stack/Steel-MES-sub000/internal/config"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/entity"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/handler"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/repository"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/mes/service"
	"github.com/superpjh-stack/Steel-MES-sub000/internal/middleware"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// .env 파일 로드
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 로거 초기화
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting steel-mes service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// 데이터베이스 초기화
	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// 테이블 마이그레이션
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.WorkOrder{},
		&entity.Equipment{},
		&entity.EquipmentLog{},
		&entity.ProductionLog{},
		&entity.Lot{},
		&entity.MaterialLotAssignment{},
		&entity.SpcMeasurement{},
		&entity.Inspection{},
		&entity.Nonconformance{},
		&entity.Shipment{},
	); err != nil {
		zapLogger.Fatal("AutoMigrate failed", zap.Error(err))
	}
	zapLogger.Info("Database migration completed")

	// Redis 초기화
	rdb := initRedis(cfg.Redis)

	// 의존성 초기화
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb)
	handlers := handler.NewHandlers(services, zapLogger)

	// Gin 모드 설정
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 라우터 생성
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 서버 기동
	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 우아한 종료
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	// 헬스 체크
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 버전 정보
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	// API v1
	mes := r.Group("/api/v1/mes")
	mes.Use(middleware.JWTAuth(cfg.JWT.Secret))
	{
		// 작업지시
		workOrders := mes.Group("/work-orders")
		{
			workOrders.GET("", h.WorkOrder.List)
			workOrders.POST("", h.WorkOrder.Create)
			workOrders.GET("/export", h.WorkOrder.Export)
			workOrders.GET("/:id", h.WorkOrder.Get)
			workOrders.PATCH("/:id/status", h.WorkOrder.Transition)
			workOrders.GET("/:id/production-logs", h.Production.ListByWorkOrder)
			workOrders.POST("/:id/material-lot", h.Production.AssignMaterialLot)
		}

		// 설비
		equipment := mes.Group("/equipment")
		{
			equipment.GET("", h.Equipment.List)
			equipment.POST("", h.Equipment.Create)
			equipment.GET("/:id", h.Equipment.Get)
			equipment.PATCH("/:id/status", h.Equipment.Transition)
			equipment.POST("/:id/logs", h.Equipment.AppendLog)
			equipment.GET("/:id/oee", h.Equipment.OEE)
		}

		// 생산 실적
		mes.POST("/production-logs", h.Production.Record)

		// LOT 추적
		lots := mes.Group("/lots")
		{
			lots.GET("/:lotNo/trace", h.Trace.Trace)
			lots.GET("/:lotNo/shipments", h.Shipment.ListByLot)
		}

		// SPC
		spc := mes.Group("/spc")
		{
			spc.POST("/measurements", h.Spc.Ingest)
			spc.GET("/chart", h.Spc.Chart)
		}

		// 검사
		inspections := mes.Group("/inspections")
		{
			inspections.GET("", h.Quality.ListInspections)
			inspections.POST("", h.Quality.CreateInspection)
		}

		// 부적합 보고
		ncrs := mes.Group("/ncrs")
		{
			ncrs.GET("", h.Quality.ListNCRs)
			ncrs.POST("", h.Quality.CreateNCR)
			ncrs.GET("/:id", h.Quality.GetNCR)
			ncrs.PATCH("/:id", middleware.RequireRole("qc", "supervisor", "manager"), h.Quality.TransitionNCR)
		}

		// 출하
		mes.POST("/shipments", h.Shipment.Create)
	}
}
