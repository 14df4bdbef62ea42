package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog-api/pkg/cache"
	"blog-api/pkg/config"
	"blog-api/pkg/database"
	"blog-api/pkg/jwt"
	"blog-api/pkg/logger"
	"blog-api/pkg/middleware"
	"blog-api/pkg/queue"
	"blog-api/pkg/s3"
	webHTTP "blog-api/services/webapi/internal/controller/http"
	"blog-api/services/webapi/internal/entity"
	redisRepo "blog-api/services/webapi/internal/repo/cache"
	"blog-api/services/webapi/internal/repo/persistent"
	"blog-api/services/webapi/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "blog-api/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	queueClient *queue.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// Without Redis logout is a no-op and rate limiting is off
		log.Warn("Failed to connect to redis: %v (continuing without revocation and rate limiting)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Warn("Failed to create S3 client: %v (cover uploads disabled)", err)
		s3Client = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		queueClient: queueClient,
		jwtService:  jwt.NewService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience),
	}, nil
}

// Optional clients are handed to the use cases as untyped nil interfaces so
// their nil checks hold.
func (a *App) ports() (usecase.TokenRevoker, middleware.TokenRevocationChecker, usecase.ImageStore, usecase.EventPublisher) {
	var (
		revoker usecase.TokenRevoker
		checker middleware.TokenRevocationChecker
		images  usecase.ImageStore
		events  usecase.EventPublisher
	)
	if a.redisClient != nil {
		store := redisRepo.NewRevocationStore(a.redisClient)
		revoker, checker = store, store
	}
	if a.s3Client != nil {
		images = a.s3Client
	}
	if a.queueClient != nil {
		events = a.queueClient
	}
	return revoker, checker, images, events
}

func (a *App) Router() *gin.Engine {
	revoker, checker, images, events := a.ports()

	// Initialize repositories
	repos := persistent.NewRepositories(a.db)
	uow := persistent.NewUnitOfWork(a.db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(repos.Users, uow, a.jwtService, revoker, events, a.log)
	userUseCase := usecase.NewUserUseCase(repos.Users, uow, a.log)
	postUseCase := usecase.NewPostUseCase(repos.Posts, uow, images, a.log)
	pollUseCase := usecase.NewPollUseCase(repos.Polls, uow, a.log)
	commentUseCase := usecase.NewCommentUseCase(repos.Comments, uow, events, a.log)

	// Initialize HTTP handlers
	userHandler := webHTTP.NewUserHandler(authUseCase, userUseCase, a.log)
	postHandler := webHTTP.NewPostHandler(postUseCase, a.log)
	pollHandler := webHTTP.NewPollHandler(pollUseCase, a.log)
	commentHandler := webHTTP.NewCommentHandler(commentUseCase, a.log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Location", webHTTP.TotalCountHeader},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authenticated := middleware.AuthMiddleware(a.jwtService, checker)
	administrator := middleware.RequireRoles(string(entity.RoleAdministrator))
	blogger := middleware.RequireRoles(string(entity.RoleBlogger))
	anyRole := middleware.RequireRoles(string(entity.RoleAdministrator), string(entity.RoleBlogger))
	loginLimit := middleware.RateLimitMiddleware(a.redisClient, a.cfg.LoginRateLimit, time.Duration(a.cfg.LoginRateWindowSeconds)*time.Second)

	api := r.Group("/api")

	users := api.Group("/user")
	{
		users.POST("/register", loginLimit, userHandler.Register)
		users.POST("/login", loginLimit, userHandler.Login)
		users.GET("/checkusernameavailability/:name", userHandler.UsernameAvailable)
		users.GET("/:id", userHandler.GetUser)

		users.POST("/logout", authenticated, anyRole, userHandler.Logout)
		users.GET("", authenticated, administrator, userHandler.ListUsers)
		users.PATCH("/editpersonaldata/:id", authenticated, blogger, userHandler.EditPersonalData)
		users.PATCH("/changepassword/:id", authenticated, anyRole, userHandler.ChangePassword)
		users.DELETE("/:id", authenticated, administrator, userHandler.DeleteUser)
		users.PATCH("/ban/:id", authenticated, administrator, userHandler.BanUser)
		users.PATCH("/unban/:id", authenticated, administrator, userHandler.UnbanUser)
	}

	posts := api.Group("/posts")
	{
		posts.GET("", postHandler.ListPosts)
		posts.GET("/user", authenticated, blogger, postHandler.ListUserPosts)
		posts.GET("/:id", postHandler.GetPost)
		posts.POST("", authenticated, blogger, postHandler.CreatePost)
		posts.PUT("/:id", authenticated, blogger, postHandler.UpdatePost)
		posts.DELETE("/:id", authenticated, blogger, postHandler.DeletePost)
		posts.POST("/:id/cover", authenticated, blogger, postHandler.UploadCoverImage)
	}

	polls := api.Group("/polls")
	{
		polls.GET("/post/:postId", pollHandler.ListPostPolls)
		polls.GET("/user", authenticated, blogger, pollHandler.ListUserPolls)
		polls.GET("/results/:id", pollHandler.GetResults)
		polls.GET("/:id", pollHandler.GetPoll)
		polls.POST("", authenticated, blogger, pollHandler.CreatePoll)
		polls.POST("/attachpoll", authenticated, blogger, pollHandler.AttachPoll)
		polls.POST("/:id/vote", authenticated, anyRole, pollHandler.Vote)
		polls.PUT("/:id", authenticated, blogger, pollHandler.UpdatePoll)
		polls.DELETE("/remove", authenticated, blogger, pollHandler.RemovePoll)
		polls.DELETE("/:id", authenticated, blogger, pollHandler.DeletePoll)
	}

	comments := api.Group("/comments")
	{
		comments.GET("/post/:postId", commentHandler.ListPostComments)
		comments.POST("", loginLimit, commentHandler.SubmitComment)
		comments.GET("/unapproved", authenticated, administrator, commentHandler.ListUnapproved)
		comments.PATCH("/approve/:id", authenticated, administrator, commentHandler.ApproveComment)
		comments.DELETE("/:id", authenticated, administrator, commentHandler.DeleteComment)
	}

	return r
}

func (a *App) Run() error {
	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		a.log.Info("Blog API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down blog API...")
}

func (a *App) Shutdown() error {
	// The server gets 5 seconds to drain in-flight requests
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	a.log.Info("Blog API exited")
	return nil
}
