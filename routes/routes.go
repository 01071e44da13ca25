package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/osociohoteleiro/praiabela/controllers"
	"github.com/osociohoteleiro/praiabela/middleware"
	"github.com/osociohoteleiro/praiabela/services"
	"github.com/osociohoteleiro/praiabela/utils"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers groups everything SetupRouter wires up.
type Controllers struct {
	Auth        *controllers.AuthController
	Rooms       *controllers.RoomController
	Packages    *controllers.PackageController
	Promotions  *controllers.PromotionController
	Experiences *controllers.ExperienceController
	Gallery     *controllers.GalleryController
	SiteInfo    *controllers.SiteInfoController
	Media       *controllers.MediaController
	Upload      *controllers.UploadController
}

func SetupRouter(ctrl Controllers, authSvc *services.AuthService, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	requireAuth := middleware.RequireAuth(authSvc)

	api := r.Group("/api")
	api.Use(limiter.Middleware())
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "API Pousada Praia Bela funcionando!"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/login", ctrl.Auth.Login)
			auth.GET("/verify", requireAuth, ctrl.Auth.Verify)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", ctrl.Rooms.ListPublic)
			rooms.GET("/admin/all", requireAuth, ctrl.Rooms.ListAdmin)
			rooms.GET("/:id", ctrl.Rooms.GetByID)
			rooms.POST("", requireAuth, ctrl.Rooms.Create)
			rooms.PUT("/:id", requireAuth, ctrl.Rooms.Update)
			rooms.DELETE("/:id", requireAuth, ctrl.Rooms.Delete)
		}

		packages := api.Group("/packages")
		{
			packages.GET("", ctrl.Packages.ListPublic)
			packages.GET("/admin/all", requireAuth, ctrl.Packages.ListAdmin)
			packages.GET("/:id", ctrl.Packages.GetByID)
			packages.POST("", requireAuth, ctrl.Packages.Create)
			packages.PUT("/:id", requireAuth, ctrl.Packages.Update)
			packages.DELETE("/:id", requireAuth, ctrl.Packages.Delete)
		}

		promotions := api.Group("/promotions")
		{
			promotions.GET("", ctrl.Promotions.ListPublic)
			promotions.GET("/admin", requireAuth, ctrl.Promotions.ListAdmin)
			promotions.GET("/:id", ctrl.Promotions.GetByID)
			promotions.POST("", requireAuth, ctrl.Promotions.Create)
			promotions.PUT("/:id", requireAuth, ctrl.Promotions.Update)
			promotions.DELETE("/:id", requireAuth, ctrl.Promotions.Delete)
		}

		experiences := api.Group("/experiences")
		{
			experiences.GET("", ctrl.Experiences.ListPublic)
			experiences.GET("/admin/all", requireAuth, ctrl.Experiences.ListAdmin)
			experiences.GET("/:id", ctrl.Experiences.GetByID)
			experiences.POST("", requireAuth, ctrl.Experiences.Create)
			experiences.PUT("/reorder/batch", requireAuth, ctrl.Experiences.Reorder)
			experiences.PUT("/:id", requireAuth, ctrl.Experiences.Update)
			experiences.DELETE("/:id", requireAuth, ctrl.Experiences.Delete)
		}

		gallery := api.Group("/gallery")
		{
			gallery.GET("", ctrl.Gallery.ListPublic)
			gallery.GET("/admin/all", requireAuth, ctrl.Gallery.ListAdmin)
			gallery.POST("", requireAuth, ctrl.Gallery.Create)
			gallery.PUT("/reorder/batch", requireAuth, ctrl.Gallery.Reorder)
			gallery.PUT("/:id", requireAuth, ctrl.Gallery.Update)
			gallery.DELETE("/:id", requireAuth, ctrl.Gallery.Delete)
		}

		siteInfo := api.Group("/site-info")
		{
			siteInfo.GET("", ctrl.SiteInfo.Get)
			siteInfo.PUT("", requireAuth, ctrl.SiteInfo.Update)
		}

		api.GET("/media", requireAuth, ctrl.Media.List)

		upload := api.Group("/upload", requireAuth)
		{
			upload.POST("/image", ctrl.Upload.UploadImage)
			upload.POST("/video", ctrl.Upload.UploadVideo)
			upload.POST("/images", ctrl.Upload.UploadImages)
			upload.DELETE("/*key", ctrl.Upload.DeleteFile)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		utils.JSONError(c, http.StatusNotFound, utils.CodeNotFound, "Rota não encontrada")
	})

	return r
}
