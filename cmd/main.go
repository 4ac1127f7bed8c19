package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Launchpad/config"
	"github.com/lshigami/Launchpad/database"
	"github.com/lshigami/Launchpad/internal/controller"
	adminctrl "github.com/lshigami/Launchpad/internal/controller/admin"
	userctrl "github.com/lshigami/Launchpad/internal/controller/user"
	"github.com/lshigami/Launchpad/internal/llm"
	"github.com/lshigami/Launchpad/internal/logger"
	"github.com/lshigami/Launchpad/internal/middleware"
	"github.com/lshigami/Launchpad/internal/model"
	"github.com/lshigami/Launchpad/internal/monitoring"
	"github.com/lshigami/Launchpad/internal/repository"
	"github.com/lshigami/Launchpad/internal/scheduler"
	"github.com/lshigami/Launchpad/internal/service"
	"github.com/lshigami/Launchpad/internal/session"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Swagger docs are generated with `swag init -g cmd/main.go` into ./docs;
// add a blank import of that package to serve them.

// @title Launchpad API
// @version 1.0
// @description Career readiness journey: diagnostic quiz, readiness dashboard, learning path, mock interview and mentor matching, backed by an LLM.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			llm.NewProviderFromConfig,
			session.NewStore,
			middleware.NewRateLimiterFromConfig,
			scheduler.NewSweeper,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewQuizResultRepository,
			repository.NewInterviewRecordRepository,
		),

		fx.Provide(
			service.NewScoreConverterService,
			service.NewContentService,
			service.NewSessionService,
			service.NewQuizService,
			service.NewDashboardService,
			service.NewInterviewService,
			service.NewMentorService,
			service.NewHistoryService,
		),

		fx.Provide(
			controller.NewController,
			userctrl.NewSessionController,
			userctrl.NewQuizController,
			userctrl.NewDashboardController,
			userctrl.NewInterviewController,
			userctrl.NewMentorController,
			adminctrl.NewHistoryController,
		),

		fx.Invoke(logger.Configure),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(StartSweeper),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	monitoring.Init()

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())
	r.Use(monitoring.MetricsMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", monitoring.PrometheusHandler())

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	limiter *middleware.RateLimiter,
	systemCtrl *controller.Controller,
	sessionCtrl *userctrl.SessionController,
	quizCtrl *userctrl.QuizController,
	dashboardCtrl *userctrl.DashboardController,
	interviewCtrl *userctrl.InterviewController,
	mentorCtrl *userctrl.MentorController,
	historyCtrl *adminctrl.HistoryController,
) {
	systemCtrl.RegisterRoutes(router)

	limit := limiter.Middleware()
	api := router.Group("/api/v1")
	sessionCtrl.RegisterRoutes(api)
	quizCtrl.RegisterRoutes(api, limit)
	dashboardCtrl.RegisterRoutes(api, limit)
	interviewCtrl.RegisterRoutes(api, limit)
	mentorCtrl.RegisterRoutes(api, limit)
	historyCtrl.RegisterRoutes(api)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Launchpad API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func StartSweeper(lc fx.Lifecycle, sweeper *scheduler.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return sweeper.Start()
		},
		OnStop: func(context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&model.QuizResult{}, &model.InterviewRecord{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
