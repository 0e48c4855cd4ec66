package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/ebeyer/lapwise/config"
	"github.com/ebeyer/lapwise/database"
	"github.com/ebeyer/lapwise/internal/controller"
	"github.com/ebeyer/lapwise/internal/logger"
	"github.com/ebeyer/lapwise/internal/middleware"
	"github.com/ebeyer/lapwise/internal/model"
	"github.com/ebeyer/lapwise/internal/repository"
	"github.com/ebeyer/lapwise/internal/security"
	"github.com/ebeyer/lapwise/internal/service"
)

func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			security.NewTokenMaker,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewGroupRepository,
			repository.NewResourceRepository,
			repository.NewCardRepository,
			repository.NewTopicRepository,
			repository.NewStandardRepository,
			repository.NewGoalRepository,
			repository.NewLapRepository,
			repository.NewAttemptRepository,
		),

		fx.Provide(
			service.NewAuthService,
			service.NewUserService,
			service.NewResourceService,
			service.NewCardService,
			service.NewTopicService,
			service.NewStandardService,
			service.NewGroupService,
			service.NewGoalService,
			service.NewLapService,
			service.NewAttemptService,
		),

		fx.Provide(
			controller.NewAuthController,
			controller.NewUserController,
			controller.NewResourceController,
			controller.NewCardController,
			controller.NewCatalogController,
			controller.NewGoalController,
			controller.NewLapController,
			controller.NewAttemptController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedFirstSuperuser),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens *security.TokenMaker,
	userRepo repository.UserRepository,
	authCtrl *controller.AuthController,
	userCtrl *controller.UserController,
	resourceCtrl *controller.ResourceController,
	cardCtrl *controller.CardController,
	catalogCtrl *controller.CatalogController,
	goalCtrl *controller.GoalController,
	lapCtrl *controller.LapController,
	attemptCtrl *controller.AttemptController,
) {
	api := router.Group("/api/v1")

	// Open routes
	api.POST("/signup", authCtrl.Signup)
	api.POST("/login/access-token", authCtrl.Login)

	// Everything else requires a resolved bearer token.
	authed := api.Group("")
	authed.Use(middleware.Auth(tokens, userRepo))
	{
		users := authed.Group("/users")
		users.GET("", middleware.RequireSuperuser(), userCtrl.List)
		users.GET("/me", userCtrl.Me)
		users.PATCH("/me", userCtrl.UpdateMe)

		resources := authed.Group("/resources")
		resources.POST("", resourceCtrl.Create)
		resources.GET("", resourceCtrl.List)
		resources.GET("/:resource_id", resourceCtrl.Get)
		resources.PATCH("/:resource_id", resourceCtrl.Update)
		resources.DELETE("/:resource_id", resourceCtrl.Delete)
		resources.POST("/standard-link", resourceCtrl.LinkStandard)
		resources.POST("/standard-link/multi", resourceCtrl.LinkStandards)

		cards := authed.Group("/cards")
		cards.POST("", cardCtrl.Create)
		cards.POST("/batch", cardCtrl.CreateBatch)
		cards.GET("", cardCtrl.ByResource)
		cards.GET("/:card_id", cardCtrl.Get)
		cards.PATCH("/:card_id", cardCtrl.Update)

		topics := authed.Group("/topics")
		topics.POST("", middleware.RequireSuperuser(), catalogCtrl.CreateTopic)
		topics.GET("", catalogCtrl.ListTopics)

		standards := authed.Group("/standards")
		standards.POST("", middleware.RequireSuperuser(), catalogCtrl.CreateStandard)
		standards.GET("", catalogCtrl.ListStandards)
		standards.GET("/:standard_id", catalogCtrl.GetStandard)

		groups := authed.Group("/groups")
		groups.POST("", middleware.RequireSuperuser(), catalogCtrl.CreateGroup)
		groups.POST("/members", middleware.RequireSuperuser(), catalogCtrl.AddGroupMember)

		goals := authed.Group("/goals")
		goals.POST("", middleware.RequireTeacher(), goalCtrl.Create)
		goals.GET("/:goal_id", goalCtrl.Get)
		goals.DELETE("/:goal_id", middleware.RequireTeacher(), goalCtrl.Delete)
		goals.POST("/resource-link", middleware.RequireTeacher(), goalCtrl.LinkResource)
		goals.POST("/resource-link/multi", middleware.RequireTeacher(), goalCtrl.LinkResources)

		laps := authed.Group("/laps")
		laps.POST("", middleware.RequireStudent(), lapCtrl.Create)
		laps.GET("/:lap_id", lapCtrl.Get)
		laps.PATCH("/:lap_id", middleware.RequireStudent(), lapCtrl.Update)

		attempts := authed.Group("/attempts")
		attempts.POST("", middleware.RequireStudent(), attemptCtrl.Create)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// SeedFirstSuperuser makes sure the configured superuser account exists, so
// topics, standards and groups can always be administered.
func SeedFirstSuperuser(cfg *config.Config, userRepo repository.UserRepository) error {
	if cfg.FirstSuperuser.Email == "" {
		return nil
	}
	existing, err := userRepo.FindByEmail(cfg.FirstSuperuser.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hashed, err := security.HashPassword(cfg.FirstSuperuser.Password)
	if err != nil {
		return err
	}
	user := model.User{
		Email:          cfg.FirstSuperuser.Email,
		IsActive:       true,
		IsSuperuser:    true,
		HashedPassword: hashed,
	}
	if err := userRepo.Create(&user); err != nil {
		return err
	}
	log.Info().Str("email", user.Email).Msg("First superuser created")
	return nil
}
