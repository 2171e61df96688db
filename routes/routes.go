package routes

import (
	"github.com/gin-gonic/gin"

	config "github.com/rewear/thrift-donations-go/config"
	controllers "github.com/rewear/thrift-donations-go/controllers"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	api := r.Group("/api")
	{
		api.GET("/", controllers.Root())
		api.GET("/health", controllers.Health())

		// Donations
		api.POST("/donations", controllers.CreateDonation(cfg))
		api.GET("/donations", controllers.ListDonations(cfg))
		api.GET("/donations/:id", controllers.GetDonationByTracking(cfg))
		api.PUT("/donations/:id/status", controllers.UpdateDonationStatus(cfg))

		// Thrift store
		api.POST("/thrift-items", controllers.CreateThriftItem(cfg))
		api.GET("/thrift-items", controllers.ListThriftItems(cfg))
		api.GET("/thrift-items/:id", controllers.GetThriftItem(cfg))

		// Impact tracking
		api.GET("/impact-stats", controllers.GetImpactStats(cfg))

		// Users
		api.POST("/users", controllers.CreateUser(cfg))
		api.GET("/users/:id", controllers.GetUser(cfg))

		// Development only: destructive reseed
		api.POST("/seed-mock-data", controllers.SeedMockData(cfg))
	}
}
