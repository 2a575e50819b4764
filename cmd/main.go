package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kelvinmenegasse/idp-server/config"
	"github.com/kelvinmenegasse/idp-server/db"
	accounthandler "github.com/kelvinmenegasse/idp-server/internal/account/handler"
	accountrepo "github.com/kelvinmenegasse/idp-server/internal/account/repository/postgres"
	accountservice "github.com/kelvinmenegasse/idp-server/internal/account/service"
	authhandler "github.com/kelvinmenegasse/idp-server/internal/auth/handler"
	authrepo "github.com/kelvinmenegasse/idp-server/internal/auth/repository/postgres"
	authservice "github.com/kelvinmenegasse/idp-server/internal/auth/service"
	"github.com/kelvinmenegasse/idp-server/internal/logger"
	"github.com/kelvinmenegasse/idp-server/internal/mail"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	if err := db.Migrate(cfg.DBURL); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	var mailer mail.Mailer
	if cfg.Env == "production" {
		mailer = mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser,
			cfg.SMTPPassword, cfg.MailFrom, cfg.FrontendDomain)
	} else {
		mailer = mail.NewLogMailer(zlog)
	}

	accountStore := accountrepo.NewAccountRepository(dbPool)
	sessionStore := authrepo.NewSessionRepository(dbPool)

	accountService := accountservice.NewAccountService(accountStore, mailer, cfg, zlog)
	tokenService := authservice.NewTokenService(sessionStore, zlog,
		cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin, cfg.AppDomain)
	authService := authservice.NewAuthService(accountService, tokenService, zlog)

	authHandler := authhandler.NewAuthHandler(authService, tokenService)
	accountHandler := accounthandler.NewAccountHandler(accountService)

	app := fiber.New()
	authhandler.RegisterRoutes(app, authHandler)
	accounthandler.RegisterRoutes(app, accountHandler, authHandler.RequireAccessToken())

	zlog.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
