package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"libraryhub/config"
	"libraryhub/database"
	applicationRepo "libraryhub/database/repository/application"
	bookRepo "libraryhub/database/repository/book"
	contentRepo "libraryhub/database/repository/content"
	newsRepo "libraryhub/database/repository/news"
	notificationRepo "libraryhub/database/repository/notification"
	reservationRepo "libraryhub/database/repository/reservation"
	themeRepo "libraryhub/database/repository/theme"
	userRepoPkg "libraryhub/database/repository/user"
	"libraryhub/handlers"
	"libraryhub/middleware"
	"libraryhub/routes"
	"libraryhub/services/auth"
	"libraryhub/services/catalog"
	"libraryhub/services/content"
	"libraryhub/services/membership"
	"libraryhub/services/news"
	"libraryhub/services/notification"
	"libraryhub/services/theme"
	"libraryhub/services/user"
	"libraryhub/utils"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.InitDB(); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	db := database.DB()

	sessions, err := auth.NewRedisSessionStore(
		config.AppConfig.RedisAddr,
		config.AppConfig.RedisPassword,
		config.AppConfig.RedisSessionDB,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	books := bookRepo.NewMongoBookRepo(db)
	reservations := reservationRepo.NewMongoReservationRepo(db)
	contents := contentRepo.NewMongoContentRepo(db)
	newsItems := newsRepo.NewMongoNewsRepo(db)
	notifications := notificationRepo.NewMongoNotificationRepo(db)
	themes := themeRepo.NewMongoThemeRepo(db)
	applications := applicationRepo.NewMongoApplicationRepo(db)

	for _, repo := range []indexer{userRepo, books, reservations, contents, newsItems, notifications, themes, applications} {
		if err := repo.EnsureIndexes(context.Background()); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
	}

	// services.
	authService := auth.NewAuthService(userRepo, sessions, config.AppConfig.JWTSecret, config.AppConfig.TokenTTL)
	userService := &user.DefaultUserService{Repo: userRepo}
	catalogService := &catalog.DefaultCatalogService{Books: books, Reservations: reservations}
	contentService := &content.DefaultContentService{Repo: contents}
	newsService := &news.DefaultNewsService{Repo: newsItems}
	themeService := &theme.DefaultThemeService{Repo: themes}
	notificationService, err := notification.NewDefaultNotificationService(notifications, userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	membershipService := &membership.DefaultMembershipService{
		Applications: applications,
		Users:        userRepo,
		Notifier:     notificationService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthService:         authService,
		AuthHandler:         handlers.NewAuthHandler(authService, userService),
		UserHandler:         handlers.NewUserHandler(userService),
		AdminHandler:        handlers.NewAdminHandler(userService),
		BookHandler:         handlers.NewBookHandler(catalogService),
		ReservationHandler:  handlers.NewReservationHandler(catalogService),
		ContentHandler:      handlers.NewContentHandler(contentService),
		NewsHandler:         handlers.NewNewsHandler(newsService),
		NotificationHandler: handlers.NewNotificationHandler(notificationService),
		ThemeHandler:        handlers.NewThemeHandler(themeService),
		ApplicationHandler:  handlers.NewApplicationHandler(membershipService),
		HealthHandler: handlers.NewHealthHandler(
			func(ctx context.Context) error { return database.MongoClient.Ping(ctx, readpref.Primary()) },
			sessions.Ping,
		),
	}

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(config.TrustedProxies()); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(middleware.Metrics())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	router.Use(middleware.RequestTimeout(config.AppConfig.RequestTimeout))

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := sessions.Close(); err != nil {
		logger.Sugar().Warnf("main: closing redis: %v", err)
	}
	if err := database.Close(ctx); err != nil {
		logger.Sugar().Warnf("main: closing mongo: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
