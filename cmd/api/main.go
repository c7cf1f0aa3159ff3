package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stayhub/internal/config"
	"stayhub/internal/database"
	"stayhub/internal/domain"
	"stayhub/internal/middleware"
	"stayhub/internal/modules/admin"
	"stayhub/internal/modules/analytics"
	"stayhub/internal/modules/auth"
	"stayhub/internal/modules/booking"
	"stayhub/internal/modules/catalog"
	"stayhub/internal/modules/chat"
	"stayhub/internal/modules/favorite"
	"stayhub/internal/modules/payment"
	"stayhub/internal/modules/review"
	"stayhub/internal/notify"
	"stayhub/internal/pkg/cache"
	jwtsvc "stayhub/internal/pkg/jwt"
	"stayhub/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	chatRepo := repository.NewChatRepository(db)
	eventRepo := repository.NewEventRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	var searchCache cache.Store
	if cfg.MemcacheAddr != "" {
		searchCache = cache.NewMemcacheStore(cfg.MemcacheAddr)
	} else {
		searchCache = cache.NewMemoryStore(1000)
	}

	var publisher analytics.Publisher
	if cfg.AMQPURL != "" {
		amqpPub, err := analytics.NewAMQPPublisher(cfg.AMQPURL, "")
		if err != nil {
			log.Printf("level=warn msg=\"event publisher unavailable\" err=%v", err)
		} else {
			defer amqpPub.Close()
			publisher = amqpPub
		}
	}

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(propertyRepo, searchCache, cfg.SearchCacheTTL)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, propertyRepo, notify.LogSMS{}, nil)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(paymentRepo, bookingRepo, cfg.GatewaySecret, log.Printf)
	paymentHandler := payment.NewHandler(paymentService, log.Printf)

	reviewService := review.NewService(reviewRepo, propertyRepo, bookingRepo, db)
	reviewHandler := review.NewHandler(reviewService)

	favoriteHandler := favorite.NewHandler(favoriteRepo)

	chatHub := chat.NewHub()
	defer chatHub.Close()
	chatService := chat.NewService(chatRepo, chat.RuleCompleter{}, chatHub)
	chatHandler := chat.NewHandler(chatService, chatHub)

	analyticsService := analytics.NewService(eventRepo, publisher, nil, nil)
	analyticsHandler := analytics.NewHandler(analyticsService)

	adminService := admin.NewService(userRepo, propertyRepo, bookingRepo)
	adminHandler := admin.NewHandler(adminService)

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow, nil)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())
	r.Use(limiter.Middleware())

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterPublicRoutes(api)
		reviewHandler.RegisterPublicRoutes(api)
		paymentHandler.RegisterPublicRoutes(api)

		// anonymous-friendly: identity attached when a token is present
		open := api.Group("/")
		open.Use(middleware.OptionalAuth(j))
		{
			bookingHandler.RegisterRoutes(open)
			chatHandler.RegisterRoutes(open)
			analyticsHandler.RegisterRoutes(open)
		}

		// authenticated users
		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterUserRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
		}

		// hosts
		host := api.Group("/host")
		host.Use(middleware.Auth(j), middleware.RequireRole(string(domain.RoleHost)))
		{
			catalogHandler.RegisterHostRoutes(host)
		}

		// admins
		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.Auth(j), middleware.RequireRole(string(domain.RoleAdmin)))
		{
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	log.Printf("level=info msg=\"listening\" port=%s env=%s", cfg.Port, cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
