package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/osociohoteleiro/praiabela/config"
	"github.com/osociohoteleiro/praiabela/controllers"
	"github.com/osociohoteleiro/praiabela/middleware"
	"github.com/osociohoteleiro/praiabela/routes"
	"github.com/osociohoteleiro/praiabela/services"
)

func rateLimiterFromEnv() *middleware.RateLimiter {
	window := 15 * time.Minute
	if raw := os.Getenv("RATE_LIMIT_WINDOW_MINUTES"); raw != "" {
		if d, err := time.ParseDuration(raw + "m"); err == nil {
			window = d
		}
	}
	max := 100
	if raw := os.Getenv("RATE_LIMIT_MAX"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			max = n
		}
	}
	return middleware.NewRateLimiter(window, max)
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set.")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied")

	// Blob store is optional at boot: without it the upload routes
	// answer with a storage error but everything else works.
	storageSvc, err := services.NewStorageService(context.Background())
	if err != nil {
		log.Printf("⚠️  Blob store unavailable: %v", err)
		storageSvc = nil
	}

	authSvc := services.NewAuthService(db, jwtSecret)
	mediaSvc := services.NewMediaService(db)

	ctrl := routes.Controllers{
		Auth:        controllers.NewAuthController(authSvc),
		Rooms:       controllers.NewRoomController(services.NewRoomService(db)),
		Packages:    controllers.NewPackageController(services.NewPackageService(db)),
		Promotions:  controllers.NewPromotionController(services.NewPromotionService(db)),
		Experiences: controllers.NewExperienceController(services.NewExperienceService(db)),
		Gallery:     controllers.NewGalleryController(services.NewGalleryService(db)),
		SiteInfo:    controllers.NewSiteInfoController(services.NewSiteInfoService(db)),
		Media:       controllers.NewMediaController(mediaSvc),
		Upload:      controllers.NewUploadController(storageSvc, mediaSvc),
	}

	router := routes.SetupRouter(ctrl, authSvc, rateLimiterFromEnv())

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
