package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	config "github.com/rewear/thrift-donations-go/config"
	models "github.com/rewear/thrift-donations-go/models"
)

// seedThriftItems is the fixed development sample set.
func seedThriftItems() []models.ThriftItem {
	type sample struct {
		name, description string
		category          models.ClothingCategory
		size              models.Size
		condition         models.ClothingCondition
		price             float64
		image             string
	}
	samples := []sample{
		{"Vintage Denim Jacket", "Classic blue denim jacket in excellent condition",
			models.CategoryMen, models.SizeM, models.ConditionExcellent, 35.99,
			"https://images.unsplash.com/photo-1617331721458-bd3bd3f9c7f8"},
		{"Vintage Floral Sweater", "Multicolored vintage sweater with unique pattern",
			models.CategoryWomen, models.SizeL, models.ConditionGood, 28.50,
			"https://images.unsplash.com/photo-1733026019726-ca2354a60358"},
		{"Classic Blue Jeans", "Comfortable blue denim jeans",
			models.CategoryWomen, models.SizeM, models.ConditionGood, 22.99,
			"https://images.unsplash.com/photo-1614990354198-b06764dcb13c"},
		{"Vintage Leather Shoes", "Classic leather shoes in great condition",
			models.CategoryAccessories, models.SizeM, models.ConditionExcellent, 45.00,
			"https://images.pexels.com/photos/2918534/pexels-photo-2918534.jpeg"},
		{"Casual Summer Shirt", "Light casual shirt perfect for summer",
			models.CategoryMen, models.SizeL, models.ConditionGood, 18.75,
			"https://images.unsplash.com/photo-1647664856968-880b8eccd588"},
		{"Vintage Clothing Collection", "Assorted vintage pieces in good condition",
			models.CategoryMixed, models.SizeM, models.ConditionFair, 32.00,
			"https://images.unsplash.com/photo-1520006403909-838d6b92c22e"},
	}

	items := make([]models.ThriftItem, 0, len(samples))
	for _, s := range samples {
		items = append(items, models.ThriftItem{
			ID:          uuid.NewString(),
			Name:        s.name,
			Description: s.description,
			Category:    s.category,
			Size:        s.size,
			Condition:   s.condition,
			Price:       s.price,
			Images:      []string{s.image},
			IsAvailable: true,
			CreatedAt:   models.FlexNow(),
		})
	}
	return items
}

func seedDonations() []models.DonationRequest {
	weights := []float64{5.5, 8.2}
	return []models.DonationRequest{
		{
			ID:              uuid.NewString(),
			DonorName:       "Sarah Johnson",
			Email:           "sarah@example.com",
			Phone:           "555-0101",
			Address:         "123 Green Street",
			City:            "Eco City",
			PostalCode:      "12345",
			PickupDate:      "2024-01-15",
			PickupTime:      "10:00 AM",
			Categories:      []models.ClothingCategory{models.CategoryWomen, models.CategoryAccessories},
			EstimatedWeight: &weights[0],
			Photos:          []string{},
			TrackingID:      newTrackingID(),
			Status:          models.StatusCompleted,
			CreatedAt:       models.FlexNow(),
		},
		{
			ID:              uuid.NewString(),
			DonorName:       "Michael Chen",
			Email:           "michael@example.com",
			Phone:           "555-0102",
			Address:         "456 Sustainability Ave",
			City:            "Green Town",
			PostalCode:      "67890",
			PickupDate:      "2024-01-20",
			PickupTime:      "2:00 PM",
			Categories:      []models.ClothingCategory{models.CategoryMen},
			EstimatedWeight: &weights[1],
			Photos:          []string{},
			TrackingID:      newTrackingID(),
			Status:          models.StatusProcessed,
			CreatedAt:       models.FlexNow(),
		},
	}
}

// ---------------- SEED ----------------

// SeedMockData clears the donations, thrift_items and users collections and
// repopulates the fixed sample set. Development only; destructive.
func SeedMockData(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := cfg.DB()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		for _, name := range []string{"donations", "thrift_items", "users"} {
			if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
				slog.Error("clear collection failed", "collection", name, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not clear " + name})
				return
			}
		}

		itemCol := db.Collection("thrift_items")
		for _, item := range seedThriftItems() {
			if _, err := itemCol.InsertOne(ctx, item); err != nil {
				slog.Error("seed thrift item failed", "name", item.Name, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not seed thrift items"})
				return
			}
		}

		donationCol := db.Collection("donations")
		for _, donation := range seedDonations() {
			if _, err := donationCol.InsertOne(ctx, donation); err != nil {
				slog.Error("seed donation failed", "donor", donation.DonorName, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not seed donations"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Mock data seeded successfully"})
	}
}
