package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/iliyamo/car-wash-booking/internal/config"
	"github.com/iliyamo/car-wash-booking/internal/database"
	"github.com/iliyamo/car-wash-booking/internal/handler"
	"github.com/iliyamo/car-wash-booking/internal/repository"
	"github.com/iliyamo/car-wash-booking/internal/router"
	"github.com/iliyamo/car-wash-booking/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := config.NewLogger(cfg.Env)
	defer func() { _ = log.Sync() }()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal("run migrations", zap.Error(err))
	}
	if err := database.EnsureAdmin(ctx, db, cfg.AdminPhone, cfg.AdminPassword, cfg.BcryptCost); err != nil {
		log.Fatal("bootstrap admin", zap.Error(err))
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unavailable, rate limiting and response cache disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	vehicles := repository.NewVehicleRepo(db)
	stages := repository.NewStageRepo(db)
	packages := repository.NewPackageRepo(db)
	bookings := repository.NewBookingRepo(db)
	history := repository.NewHistoryRepo(db)
	payments := repository.NewPaymentRepo(db)
	assignments := repository.NewAssignmentRepo(db)

	engine := service.NewBookingEngine(db, bookings, history, payments, stages, packages, vehicles, log)
	paySvc := service.NewPaymentService(payments, log)
	assignSvc := service.NewAssignmentService(assignments, bookings, users, log)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
	router.RegisterPublic(e, handler.NewPublicHandler(stages, packages), rdb, config.LoadRateLimitConfig(), config.LoadCacheConfig())
	router.RegisterCustomer(e, handler.NewCustomerHandler(vehicles, engine, paySvc), cfg.JWTSecret)
	router.RegisterStaff(e, handler.NewStaffHandler(engine, paySvc, assignSvc), cfg.JWTSecret)
	router.RegisterAdmin(e, handler.NewAdminHandler(cfg, stages, packages, users), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
