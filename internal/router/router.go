package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/restaurantcms/backend/config"
	"github.com/restaurantcms/backend/internal/handler"
	"github.com/restaurantcms/backend/internal/middleware"
	"github.com/restaurantcms/backend/internal/pkg/jwt"
)

func Setup(
	cfg *config.Config,
	j *jwt.JWT,
	contentHandler *handler.ContentHandler,
	navigationHandler *handler.NavigationHandler,
	pageHandler *handler.PageHandler,
	authHandler *handler.AuthHandler,
	lookupHandler *handler.LookupHandler,
	uploadHandler *handler.UploadHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 上传文件静态回源
	r.Static("/uploads", cfg.Upload.Dir)

	api := r.Group("/api")
	{
		// 公开读取接口
		api.GET("/content", contentHandler.List)
		api.GET("/navigation", navigationHandler.List)
		api.GET("/pages", pageHandler.List)
		api.GET("/pages/slug/:slug", pageHandler.GetBySlug)
		api.GET("/currencies", lookupHandler.ListCurrencies)
		api.GET("/contact-types", lookupHandler.ListContactTypes)
		api.GET("/configuration", lookupHandler.ListConfiguration)

		// 登录与密码重置
		api.POST("/administrators/login", authHandler.Login)
		api.POST("/password-reset/request", authHandler.RequestReset)
		api.POST("/password-reset/reset", authHandler.ConsumeReset)

		// 以下接口需要登录
		auth := api.Group("")
		auth.Use(middleware.Auth(j))
		{
			auth.PUT("/content/:id/settings", contentHandler.UpdateSettings)
			auth.DELETE("/content/:id", contentHandler.Delete)

			auth.POST("/chefs", contentHandler.CreateChef)
			auth.PUT("/chefs/:id", contentHandler.UpdateChef)
			auth.POST("/menu-items", contentHandler.CreateMenuItem)
			auth.PUT("/menu-items/:id", contentHandler.UpdateMenuItem)
			auth.POST("/page-items", contentHandler.CreatePageItem)
			auth.PUT("/page-items/:id", contentHandler.UpdatePageItem)

			auth.POST("/navigation", navigationHandler.Create)
			auth.PUT("/navigation/:id", navigationHandler.Update)
			auth.DELETE("/navigation/:id", navigationHandler.Delete)

			auth.POST("/pages", pageHandler.Create)
			auth.PUT("/pages/:id", pageHandler.Update)
			auth.DELETE("/pages/:id", pageHandler.Delete)
			auth.GET("/pages/:id/content", pageHandler.GetContent)
			auth.PUT("/pages/:id/content", pageHandler.SetContent)

			auth.POST("/currencies", lookupHandler.CreateCurrency)
			auth.PUT("/currencies/:id", lookupHandler.UpdateCurrency)
			auth.DELETE("/currencies/:id", lookupHandler.DeleteCurrency)
			auth.POST("/contact-types", lookupHandler.CreateContactType)
			auth.PUT("/contact-types/:id", lookupHandler.UpdateContactType)
			auth.DELETE("/contact-types/:id", lookupHandler.DeleteContactType)
			auth.PUT("/configuration", lookupHandler.SetConfiguration)
			auth.DELETE("/configuration/:key", lookupHandler.DeleteConfiguration)

			auth.GET("/administrators", authHandler.ListAdministrators)
			auth.POST("/administrators", authHandler.CreateAdministrator)
			auth.PUT("/administrators/:id", authHandler.UpdateAdministrator)
			auth.DELETE("/administrators/:id", authHandler.DeleteAdministrator)

			auth.POST("/uploads", uploadHandler.Upload)
		}
	}

	return r
}
