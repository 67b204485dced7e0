package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/myplanner/backend/api/handler"
	"github.com/myplanner/backend/internal/config"
	"github.com/myplanner/backend/internal/infrastructure/buffer"
	"github.com/myplanner/backend/internal/infrastructure/monitor"
	pgInfra "github.com/myplanner/backend/internal/infrastructure/postgres"
	redisInfra "github.com/myplanner/backend/internal/infrastructure/redis"
	"github.com/myplanner/backend/internal/middleware"
	"github.com/myplanner/backend/internal/router"
	"github.com/myplanner/backend/internal/services"
	"github.com/myplanner/backend/internal/services/lifecycle"
	"github.com/myplanner/backend/pkg/httpcontext"
	"github.com/myplanner/backend/pkg/logger"
	"github.com/myplanner/backend/repository/postgres"
	redisRepo "github.com/myplanner/backend/repository/redis"
	authUC "github.com/myplanner/backend/usecase/auth"
	commentUC "github.com/myplanner/backend/usecase/comment"
	eventUC "github.com/myplanner/backend/usecase/event"
	listUC "github.com/myplanner/backend/usecase/list"
	profileUC "github.com/myplanner/backend/usecase/profile"
	reminderUC "github.com/myplanner/backend/usecase/reminder"
	tagUC "github.com/myplanner/backend/usecase/tag"
	taskUC "github.com/myplanner/backend/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	bufferStore, err := buffer.Open(cfg.Buffer.Path, "buffer")
	if err != nil {
		zapLogger.Fatal("failed to open buffer store", zap.Error(err))
	}
	manager.Register("buffer", func(ctx context.Context) error {
		return bufferStore.Close()
	})

	mon := monitor.New(pool, redisClient, bufferStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	listRepo := postgres.NewListRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	tagRepo := postgres.NewTagRepository(pool)
	reminderRepo := postgres.NewReminderRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, 24*time.Hour)

	bufferProcessor := services.NewBufferProcessor(
		bufferStore,
		mon,
		listRepo,
		taskRepo,
		zapLogger,
		services.ProcessorConfig{
			Interval:   cfg.Buffer.SyncInterval,
			BatchSize:  50,
			MaxRetries: cfg.Buffer.MaxRetry,
		},
	)
	bufferProcessor.Start()
	manager.Register("buffer_processor", func(ctx context.Context) error {
		bufferProcessor.Stop(ctx)
		return nil
	})

	bufferBridge := services.NewBufferBridge(bufferProcessor)

	authUseCase := authUC.New(userRepo, sessionRepo, cfg.JWT.Secret, cfg.JWT.Issuer, zapLogger)
	profileUseCase := profileUC.New(userRepo, zapLogger)
	listUseCase := listUC.New(listRepo, bufferBridge, zapLogger)
	taskUseCase := taskUC.New(taskRepo, listRepo, tagRepo, bufferBridge, zapLogger)
	tagUseCase := tagUC.New(tagRepo, zapLogger)
	reminderUseCase := reminderUC.New(reminderRepo, taskRepo, zapLogger)
	commentUseCase := commentUC.New(commentRepo, taskRepo, zapLogger)
	eventUseCase := eventUC.New(eventRepo, taskRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:     apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger, time.Hour),
		Profile:  apiHandler.NewProfileHandler(profileUseCase, ctxAdapter, zapLogger),
		List:     apiHandler.NewListHandler(listUseCase, ctxAdapter, zapLogger),
		Task:     apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Tag:      apiHandler.NewTagHandler(tagUseCase, ctxAdapter, zapLogger),
		Reminder: apiHandler.NewReminderHandler(reminderUseCase, ctxAdapter, zapLogger),
		Comment:  apiHandler.NewCommentHandler(commentUseCase, ctxAdapter, zapLogger),
		Event:    apiHandler.NewEventHandler(eventUseCase, ctxAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
