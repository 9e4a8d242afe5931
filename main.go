package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"quizarena/internal/auth"
	"quizarena/internal/config"
	"quizarena/internal/event"
	"quizarena/internal/handlers"
	"quizarena/internal/logger"
	"quizarena/internal/metrics"
	"quizarena/internal/middleware"
	"quizarena/internal/service"
	"quizarena/internal/store"
)

func main() {
	// Load env; missing .env just means values come from the system env
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		panic(err)
	}

	log := logger.New("quizarena", cfg.LogLevel)

	// RabbitMQ event publisher, optional
	var publisher *event.EventPublisher
	if cfg.AMQPURL != "" && cfg.AMQPExchange != "" {
		publisher, err = event.NewEventPublisher(cfg.AMQPURL, cfg.AMQPExchange, log.Logger)
		if err != nil {
			log.WithError(err).Fatal("connect to RabbitMQ")
		}
		defer publisher.Close()
	} else {
		log.Info("RabbitMQ not configured, events will not be published")
	}

	db := store.New()
	ctx := context.Background()
	if err := db.Seed(ctx); err != nil {
		log.WithError(err).Fatal("seed store")
	}

	jwtService, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTLHours)
	if err != nil {
		log.WithError(err).Fatal("init jwt service")
	}

	userService := service.NewUserService(db.Users, cfg.BcryptCost)
	catalogService := service.NewCatalogService(db.Themes, db.Questions)
	statsService := service.NewStatsService(db.Stats, db.Sessions, db.Users)
	attemptService := service.NewAttemptService(db.Themes, db.Questions, db.Sessions, statsService)
	leaderboardService := service.NewLeaderboardService(db.Users, db.Sessions, db.Stats)

	adminUser, err := userService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.WithError(err).Fatal("create admin account")
	}
	log.WithUserID(adminUser.ID).Info("admin account ready")

	m, registry := metrics.New("api")

	authHandler := handlers.NewAuthHandler(userService, jwtService, log)
	themeHandler := handlers.NewThemeHandler(catalogService, log)
	questionHandler := handlers.NewQuestionHandler(catalogService, log)
	quizHandler := handlers.NewQuizHandler(attemptService, m, log)
	statsHandler := handlers.NewStatsHandler(statsService, log)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService, log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(m.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler(registry))

	api := r.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", func(c *gin.Context) {
			authHandler.Register(c)
			if c.Writer.Status() == http.StatusCreated {
				publisher.Publish(event.UserRegistered, gin.H{"timestamp": time.Now()})
			}
		})
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/logout", authHandler.Logout)
		authRoutes.GET("/me", middleware.RequireAuth(jwtService), authHandler.Me)
	}

	// Public catalog and leaderboards
	api.GET("/themes", themeHandler.ListThemes)
	api.GET("/themes/:id", themeHandler.GetTheme)
	api.GET("/leaderboard/global", leaderboardHandler.Global)
	api.GET("/leaderboard/theme/:themeId", leaderboardHandler.Theme)

	// Player routes
	player := api.Group("", middleware.RequireAuth(jwtService))
	{
		player.GET("/themes/:id/questions", quizHandler.ThemeQuestions)
		player.POST("/quiz/submit", func(c *gin.Context) {
			quizHandler.Submit(c)
			if c.Writer.Status() == http.StatusOK {
				publisher.Publish(event.SessionCompleted, gin.H{
					"user_id":   middleware.UserID(c),
					"timestamp": time.Now(),
				})
			}
		})
		player.GET("/users/me/stats", statsHandler.MyStats)
	}

	// Admin routes
	adminRoutes := api.Group("/admin", middleware.RequireAuth(jwtService), middleware.RequireAdmin())
	{
		adminRoutes.GET("/users", authHandler.ListUsers)
		adminRoutes.GET("/themes", themeHandler.ListAllThemes)
		adminRoutes.POST("/themes", func(c *gin.Context) {
			themeHandler.CreateTheme(c)
			if c.Writer.Status() == http.StatusCreated {
				publisher.Publish(event.ThemeCreated, gin.H{"timestamp": time.Now()})
			}
		})
		adminRoutes.PUT("/themes/:id", func(c *gin.Context) {
			themeHandler.UpdateTheme(c)
			if c.Writer.Status() == http.StatusOK {
				publisher.Publish(event.ThemeUpdated, gin.H{"id": c.Param("id"), "timestamp": time.Now()})
			}
		})
		adminRoutes.DELETE("/themes/:id", func(c *gin.Context) {
			themeHandler.DeleteTheme(c)
			if c.Writer.Status() == http.StatusOK {
				publisher.Publish(event.ThemeDeleted, gin.H{"id": c.Param("id"), "timestamp": time.Now()})
			}
		})
		adminRoutes.GET("/questions", questionHandler.ListQuestions)
		adminRoutes.GET("/questions/:id", questionHandler.GetQuestion)
		adminRoutes.POST("/questions", func(c *gin.Context) {
			questionHandler.CreateQuestion(c)
			if c.Writer.Status() == http.StatusCreated {
				publisher.Publish(event.QuestionCreated, gin.H{"timestamp": time.Now()})
			}
		})
		adminRoutes.PUT("/questions/:id", func(c *gin.Context) {
			questionHandler.UpdateQuestion(c)
			if c.Writer.Status() == http.StatusOK {
				publisher.Publish(event.QuestionUpdated, gin.H{"id": c.Param("id"), "timestamp": time.Now()})
			}
		})
		adminRoutes.DELETE("/questions/:id", func(c *gin.Context) {
			questionHandler.DeleteQuestion(c)
			if c.Writer.Status() == http.StatusOK {
				publisher.Publish(event.QuestionDeleted, gin.H{"id": c.Param("id"), "timestamp": time.Now()})
			}
		})
	}

	log.WithField("addr", cfg.HTTPAddr).Info("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
