package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/fadilmartias/mentor-eval/internal/config"
	"github.com/fadilmartias/mentor-eval/internal/domain/fiber/handler"
	"github.com/fadilmartias/mentor-eval/internal/middleware"
	"github.com/fadilmartias/mentor-eval/internal/repository"
	"github.com/fadilmartias/mentor-eval/internal/service"
	"github.com/fadilmartias/mentor-eval/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// services wires repositories and usecases over one database.
type services struct {
	evaluations *usecase.EvaluationUsecase
	summaries   *usecase.SummaryUsecase
	templates   *usecase.CriteriaTemplateUsecase
	users       *usecase.UserUsecase
	publisher   *service.RedisSummaryPublisher
}

func newServices(ctx context.Context, db *gorm.DB, log *zap.Logger) (*services, error) {
	publisher, err := service.NewRedisSummaryPublisher(ctx, config.LoadRedisConfig(), log)
	if err != nil {
		return nil, err
	}
	// keep a disabled publisher out of the interface so no typed nil leaks in
	var summaryPublisher usecase.SummaryPublisher
	if publisher != nil {
		summaryPublisher = publisher
	}

	evaluationRepo := repository.NewEvaluationRepository(db)
	templateRepo := repository.NewCriteriaTemplateRepository(db)
	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)

	summaries := usecase.NewSummaryUsecase(repository.NewSummaryRepository(db), summaryPublisher, log)
	return &services{
		evaluations: usecase.NewEvaluationUsecase(evaluationRepo, templateRepo, userRepo, jobRepo, summaries, log),
		summaries:   summaries,
		templates:   usecase.NewCriteriaTemplateUsecase(templateRepo, log),
		users:       usecase.NewUserUsecase(userRepo, jobRepo),
		publisher:   publisher,
	}, nil
}

func serve(ctx context.Context) error {
	log := newLogger()
	defer log.Sync()

	appConfig := config.LoadAppConfig()

	db, err := ConnectDB(log)
	if err != nil {
		return err
	}
	svc, err := newServices(ctx, db, log)
	if err != nil {
		return err
	}
	defer svc.publisher.Close()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return c.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	app.Use(fiberLogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(appConfig.RateLimit, 1*time.Minute))

	handler.Register(app,
		handler.NewEvaluationHandler(svc.evaluations),
		handler.NewUserHandler(svc.users, svc.evaluations, svc.summaries),
		handler.NewTemplateHandler(svc.templates),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("port", appConfig.Port), zap.String("env", appConfig.Env))
		errCh <- app.Listen(appConfig.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
