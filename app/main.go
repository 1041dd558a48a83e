package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/Stevensbe/system-procon-sub001/internal/routes"
	"github.com/Stevensbe/system-procon-sub001/pkg/config"
	"github.com/Stevensbe/system-procon-sub001/pkg/database/postgresql"
	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
	"github.com/Stevensbe/system-procon-sub001/pkg/eventbus"
	applogger "github.com/Stevensbe/system-procon-sub001/pkg/logger"
	"github.com/Stevensbe/system-procon-sub001/pkg/service"
	"github.com/Stevensbe/system-procon-sub001/pkg/utils"
)

func main() {
	e := echo.New()
	e.HideBanner = true
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("pânico na requisição",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Erro interno do servidor", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	e.Validator = utils.NewValidator(validator.New())

	dbConn, err := postgresql.ConnectDB(cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("não foi possível conectar ao banco", zap.Error(err))
	}
	defer dbConn.Close()

	if err := postgresql.RunMigrations(dbConn, "migrations"); err != nil {
		logger.Fatal("não foi possível aplicar as migrações", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("não foi possível conectar ao Redis",
			zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)
	bus := eventbus.New(logger.Named("eventbus"))

	loggers := &routes.Loggers{
		Main:       logger,
		Protocolo:  logger.Named("protocolo"),
		Integracao: logger.Named("integracao"),
		Monitor:    logger.Named("prazo_monitor"),
	}

	prazoMonitor, err := routes.InitRouter(e, dbConn, redisClient, jwtSvc, bus, cfg, loggers)
	if err != nil {
		logger.Fatal("não foi possível montar as rotas", zap.Error(err))
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	go prazoMonitor.Run(workerCtx)

	go func() {
		logger.Info("servidor iniciado", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("erro ao iniciar o servidor", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("encerrando o servidor")
	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("encerramento forçado", zap.Error(err))
	}
}
