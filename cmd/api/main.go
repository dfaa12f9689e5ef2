package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tendorai/internal/config"
	"tendorai/internal/database"
	"tendorai/internal/domain/admin"
	"tendorai/internal/domain/analytics"
	"tendorai/internal/domain/article"
	"tendorai/internal/domain/auth"
	"tendorai/internal/domain/lead"
	"tendorai/internal/domain/review"
	"tendorai/internal/domain/tier"
	"tendorai/internal/domain/vendor"
	"tendorai/internal/jobs"
	"tendorai/internal/mail"
	"tendorai/internal/middleware"
	"tendorai/internal/notify"
	jwtsvc "tendorai/internal/pkg/jwt"
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

	if err := db.AutoMigrate(
		&auth.User{},
		&vendor.Vendor{},
		&lead.Lead{},
		&lead.Note{},
		&review.Review{},
		&review.Request{},
		&article.Article{},
	); err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	hub := notify.NewHub()
	sender := notify.NewSender(hub)
	wsHandler := notify.NewWSHandler(hub, j)

	var leadMailer lead.Mailer
	var reviewMailer review.Mailer
	if m := mail.NewSender(cfg); m != nil {
		leadMailer = m
		reviewMailer = m
	}

	vendorRepo := vendor.NewRepository(db)
	vendorService := vendor.NewService(vendorRepo)
	vendorHandler := vendor.NewHandler(vendorService)

	leadRepo := lead.NewRepository(db)
	leadService := lead.NewService(leadRepo, vendorRepo, sender, leadMailer)
	leadHandler := lead.NewHandler(leadService)

	reviewRepo := review.NewRepository(db)
	reviewService := review.NewService(reviewRepo, vendorRepo, leadRepo, reviewMailer, cfg.PublicBaseURL)
	reviewHandler := review.NewHandler(reviewService)

	analyticsService := analytics.NewService(leadRepo, vendorRepo)
	analyticsHandler := analytics.NewHandler(analyticsService)

	articleRepo := article.NewRepository(db)
	articleService := article.NewService(articleRepo)
	articleHandler := article.NewHandler(articleService)

	adminService := admin.NewService(db, vendorRepo, reviewRepo)
	adminHandler := admin.NewHandler(adminService)

	authRepo := auth.NewRepository(db)
	authService := auth.NewService(authRepo, j)
	authHandler := auth.NewHandler(authService)

	scheduler := jobs.NewScheduler(reviewService)
	if err := scheduler.Start(); err != nil {
		log.Fatal(err)
	}
	defer scheduler.Stop()

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	notify.RegisterRoutes(r, wsHandler)

	// resolves the authenticated vendor's raw tier for route gating
	tierLookup := tier.TierLookup(func(c *gin.Context) (string, error) {
		v, err := vendorService.GetProfile(c.Request.Context(), c.GetInt64("user_id"))
		if err != nil {
			return "", err
		}
		return v.Tier, nil
	})

	v1 := r.Group("/api/v1")
	{
		// public
		auth.RegisterPublicRoutes(v1, authHandler)
		vendor.RegisterPublicRoutes(v1, vendorHandler)
		lead.RegisterPublicRoutes(v1, leadHandler)
		review.RegisterPublicRoutes(v1, reviewHandler)
		article.RegisterPublicRoutes(v1, articleHandler)

		// any authenticated account
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			auth.RegisterProtectedRoutes(protected, authHandler)
		}

		// vendor dashboard
		vendorGroup := v1.Group("/")
		vendorGroup.Use(middleware.Auth(j), middleware.VendorOnly())
		{
			vendor.RegisterVendorRoutes(vendorGroup, vendorHandler)
			lead.RegisterVendorRoutes(vendorGroup, leadHandler)
			review.RegisterVendorRoutes(vendorGroup, reviewHandler)
			analytics.RegisterVendorRoutes(vendorGroup, analyticsHandler, tierLookup)
		}

		// admin console
		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			admin.RegisterRoutes(adminGroup, adminHandler)
			review.RegisterAdminRoutes(adminGroup, reviewHandler)
			article.RegisterAdminRoutes(adminGroup, articleHandler)
		}
	}

	log.Printf("listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
