package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"brasiliaimoveis/server/config"
	"brasiliaimoveis/server/internal/database"
	"brasiliaimoveis/server/internal/notify"
	"brasiliaimoveis/server/internal/storage"
)

func SetupRoutes(router *gin.Engine, db *database.Database, store *storage.ImageStore, notifier *notify.Service, cfg *config.Config, logger *logrus.Logger) {
	handler := NewHandler(db, store, notifier, logger)

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Método não permitido"})
	})

	router.Static("/storage", store.BaseDir())

	api := router.Group("/api")
	{
		api.GET("/meta", handler.GetMeta)
		api.GET("/properties", handler.GetProperties)
		api.GET("/properties/:id", handler.GetPropertyByID)
		api.GET("/contacts", handler.GetContacts)
		api.POST("/contacts", handler.CreateContact)
		api.GET("/financing", handler.GetFinancing)
		api.POST("/financing", handler.CreateFinancing)
		api.GET("/insurance", handler.GetInsurance)
		api.POST("/insurance", handler.CreateInsurance)
	}

	admin := api.Group("/admin", RequireServiceKey(cfg.ServiceKey))
	{
		admin.POST("/properties", handler.CreateProperty)
		admin.PUT("/properties/:id", handler.UpdateProperty)
		admin.DELETE("/properties/:id", handler.DeleteProperty)
		admin.GET("/stats", handler.GetDashboardStats)
		admin.POST("/images", handler.UploadImages)
		admin.DELETE("/images", handler.RemoveImages)
	}
}
