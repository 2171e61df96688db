package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	config "github.com/rewear/thrift-donations-go/config"
	models "github.com/rewear/thrift-donations-go/models"
)

// carbonFactorPerKg approximates CO2 savings per kilogram of clothing kept
// out of landfill.
const carbonFactorPerKg = 2.1

// computeImpactStats aggregates the report from full collection scans.
// Recycled is an approximation (donations minus reused), not a tracked
// category of its own.
func computeImpactStats(donations []models.DonationRequest, items []models.ThriftItem) models.ImpactStats {
	var totalWeight float64
	donors := make(map[string]struct{})
	for _, d := range donations {
		if d.EstimatedWeight != nil {
			totalWeight += *d.EstimatedWeight
		}
		donors[d.Email] = struct{}{}
	}

	var reused int
	var revenue float64
	for _, it := range items {
		if it.SoldAt != nil {
			reused++
			revenue += it.Price
		}
	}

	return models.ImpactStats{
		TotalClothesCollectedKg: totalWeight,
		TotalItemsReused:        reused,
		TotalItemsRecycled:      len(donations) - reused,
		CarbonFootprintSavedKg:  totalWeight * carbonFactorPerKg,
		TotalDonors:             len(donors),
		TotalRevenueGenerated:   revenue,
	}
}

// ---------------- GET ----------------
func GetImpactStats(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db := cfg.DB()

		cursor, err := db.Collection("donations").Find(ctx, bson.M{}, options.Find().SetLimit(listCap))
		if err != nil {
			slog.Error("scan donations failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute impact stats"})
			return
		}
		var donations []models.DonationRequest
		if err := cursor.All(ctx, &donations); err != nil {
			slog.Error("decode donations failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute impact stats"})
			return
		}

		cursor, err = db.Collection("thrift_items").Find(ctx, bson.M{}, options.Find().SetLimit(listCap))
		if err != nil {
			slog.Error("scan thrift items failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute impact stats"})
			return
		}
		var items []models.ThriftItem
		if err := cursor.All(ctx, &items); err != nil {
			slog.Error("decode thrift items failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute impact stats"})
			return
		}

		c.JSON(http.StatusOK, computeImpactStats(donations, items))
	}
}
