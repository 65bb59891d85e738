// @title LearnHub API
// @version 1.0
// @description Learning platform backend: users, roles, quizzes, assessments and graded quiz submissions.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"learnhub/internal/adapter"
	"learnhub/internal/cache"
	"learnhub/internal/config"
	"learnhub/internal/database"
	"learnhub/internal/handler"
	"learnhub/internal/logger"
	"learnhub/internal/middleware"
	"learnhub/internal/repository"
	"learnhub/internal/service"

	_ "learnhub/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Connect to Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("RedisCacheAdapter initialized")

	// Initialize repositories
	quizRepository := repository.NewSQLXQuizRepository(db)
	assessmentRepository := repository.NewSQLXAssessmentRepository(db)
	submissionRepository := repository.NewSQLXSubmissionRepository(db)
	userRepository := repository.NewSQLXUserRepository(db)
	userRoleRepository := repository.NewSQLXUserRoleRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize services
	quizCacheService := service.NewQuizCacheService(quizRepository, cacheAdapter, cfg.Cache.QuizTTL)
	quizService := service.NewQuizService(quizRepository, quizCacheService)
	assessmentService := service.NewAssessmentService(assessmentRepository)
	submissionService := service.NewSubmissionService(submissionRepository, quizRepository, txManager, nil)
	userService := service.NewUserService(userRepository, userRoleRepository)
	userRoleService := service.NewUserRoleService(userRoleRepository)
	authService := service.NewAuthService(userRepository, cfg.JWT, nil)

	// Initialize handlers
	systemHandler := handler.NewSystemHandler(db, cacheAdapter)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	userRoleHandler := handler.NewUserRoleHandler(userRoleService)
	quizHandler := handler.NewQuizHandler(quizService)
	assessmentHandler := handler.NewAssessmentHandler(assessmentService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	api.Get("/system/healthcheck", systemHandler.Healthcheck)

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", authHandler.SignUp)
	authGroup.Post("/signin", authHandler.SignIn)

	protected := middleware.Protected(authService)

	userGroup := api.Group("/users", protected)
	userGroup.Post("/", userHandler.CreateUser)
	userGroup.Get("/", userHandler.GetAllUsers)
	userGroup.Get("/:id", userHandler.GetUser)
	userGroup.Put("/:id", userHandler.UpdateUser)
	userGroup.Delete("/:id", userHandler.DeleteUser)

	roleGroup := api.Group("/user-roles", protected)
	roleGroup.Post("/", userRoleHandler.CreateRole)
	roleGroup.Get("/", userRoleHandler.GetAllRoles)
	roleGroup.Get("/:id", userRoleHandler.GetRole)
	roleGroup.Put("/:id", userRoleHandler.UpdateRole)
	roleGroup.Delete("/:id", userRoleHandler.DeleteRole)

	quizGroup := api.Group("/quizzes", protected)
	quizGroup.Post("/", quizHandler.CreateQuiz)
	quizGroup.Get("/", quizHandler.GetAllQuizzes)
	quizGroup.Get("/instructor/:instructorId", quizHandler.GetQuizzesByInstructor)
	quizGroup.Get("/:id", quizHandler.GetQuiz)
	quizGroup.Put("/:id", quizHandler.UpdateQuiz)
	quizGroup.Delete("/:id", quizHandler.DeleteQuiz)

	assessmentGroup := api.Group("/assessments", protected)
	assessmentGroup.Post("/", assessmentHandler.CreateAssessment)
	assessmentGroup.Get("/", assessmentHandler.GetAllAssessments)
	assessmentGroup.Get("/instructor/:instructorId", assessmentHandler.GetAssessmentsByInstructor)
	assessmentGroup.Get("/:id", assessmentHandler.GetAssessment)
	assessmentGroup.Put("/:id", assessmentHandler.UpdateAssessment)
	assessmentGroup.Delete("/:id", assessmentHandler.DeleteAssessment)

	submissionGroup := api.Group("/quiz-submissions", protected)
	submissionGroup.Post("/submit", submissionHandler.SubmitQuiz)
	submissionGroup.Post("/", submissionHandler.CreateSubmission)
	submissionGroup.Get("/", submissionHandler.GetAllSubmissions)
	submissionGroup.Get("/student/:studentId", submissionHandler.GetSubmissionsByStudent)
	submissionGroup.Get("/quiz/:quizId", submissionHandler.GetSubmissionsByQuiz)
	submissionGroup.Get("/:id", submissionHandler.GetSubmission)
	submissionGroup.Put("/:id", submissionHandler.UpdateSubmission)
	submissionGroup.Delete("/:id", submissionHandler.DeleteSubmission)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
