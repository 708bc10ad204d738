package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"elearning-service/internal/config"
	"elearning-service/internal/db"
	"elearning-service/internal/event"
	"elearning-service/internal/handlers"
	"elearning-service/internal/middleware"
	"elearning-service/internal/models"
	"elearning-service/internal/repository"
	"elearning-service/internal/service"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()
	gin.SetMode(cfg.Server.GinMode)

	if err := db.InitMongo(cfg.MongoDB.URI, cfg.MongoDB.Timeout); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	database := db.Client.Database(cfg.MongoDB.Database)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoDB.Timeout)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		cancel()
		log.Fatalf("Failed to create indexes: %v", err)
	}
	cancel()

	// Redis is optional; without it the leaderboard reads straight from Mongo.
	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	} else {
		log.Println("Redis not configured, leaderboard caching disabled")
	}

	publisher, err := event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// Repositories
	userRepo := repository.NewUserRepository(database)
	courseRepo := repository.NewCourseRepository(database)
	quizRepo := repository.NewQuizRepository(database)
	attemptRepo := repository.NewAttemptRepository(database)
	feedbackRepo := repository.NewFeedbackRepository(database)
	materialRepo := repository.NewMaterialRepository(database)
	leaderboardCache := repository.NewLeaderboardCache(redisClient, cfg.Leaderboard.CacheTTL)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.TTL)
	userService := service.NewUserService(userRepo)
	courseService := service.NewCourseService(courseRepo)
	quizService := service.NewQuizService(quizRepo, courseRepo)
	attemptService := service.NewAttemptService(attemptRepo, quizRepo, userRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo, attemptRepo, quizRepo)
	materialService := service.NewMaterialService(materialRepo, courseRepo)
	leaderboardService := service.NewLeaderboardService(userRepo, leaderboardCache)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, userService, publisher)
	courseHandler := handlers.NewCourseHandler(courseService)
	quizHandler := handlers.NewQuizHandler(quizService, attemptService, publisher)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, publisher)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	materialHandler := handlers.NewMaterialHandler(materialService, publisher)
	adminHandler := handlers.NewAdminHandler(userService, courseService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "x-auth-token", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
	})

	authRequired := middleware.Auth(authService)
	facultyOnly := middleware.RequireRole(models.RoleFaculty)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", authRequired, authHandler.Me)
	}

	courses := r.Group("/api/courses")
	{
		courses.POST("/", authRequired, facultyOnly, courseHandler.CreateCourse)
		courses.GET("/", courseHandler.ListCourses)
	}

	quizzes := r.Group("/api/quizzes")
	{
		quizzes.POST("/", authRequired, facultyOnly, quizHandler.CreateQuiz)
		quizzes.GET("/", quizHandler.ListQuizzes)
		quizzes.GET("/:id", quizHandler.GetQuiz)
		quizzes.POST("/:id/attempt", authRequired, quizHandler.SubmitAttempt)
	}

	feedback := r.Group("/api/feedback", authRequired)
	{
		feedback.GET("/attempt/:attemptId", feedbackHandler.GetForAttempt)
		feedback.GET("/user/:userId", feedbackHandler.ListForUser)
		feedback.GET("/quiz/:quizId", feedbackHandler.ListForQuiz)
	}

	r.GET("/api/leaderboard/top/:n", leaderboardHandler.Top)

	materials := r.Group("/api/materials")
	{
		materials.POST("/", authRequired, facultyOnly, materialHandler.CreateMaterial)
		materials.GET("/", materialHandler.ListMaterials)
		materials.GET("/course/:courseId", materialHandler.ListByCourse)
		materials.DELETE("/:id", authRequired, facultyOnly, materialHandler.DeleteMaterial)
	}

	admin := r.Group("/api/admin", authRequired, adminOnly)
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/users/:id", adminHandler.GetUser)
		admin.PUT("/users/:id", adminHandler.UpdateUser)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
		admin.GET("/courses", adminHandler.ListCourses)
		admin.PUT("/courses/:id", adminHandler.UpdateCourse)
		admin.DELETE("/courses/:id", adminHandler.DeleteCourse)
	}

	log.Printf("Server running on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
