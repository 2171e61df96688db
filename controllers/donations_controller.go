package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	config "github.com/rewear/thrift-donations-go/config"
	models "github.com/rewear/thrift-donations-go/models"
	utils "github.com/rewear/thrift-donations-go/utils"
)

// listCap bounds every collection scan; there is no further pagination.
const listCap = 1000

// newTrackingID returns the public-facing donation code: "DN" plus the first
// 8 characters of a UUID, uppercased.
func newTrackingID() string {
	return "DN" + strings.ToUpper(uuid.NewString()[:8])
}

// pointsForWeight derives reward points at 10 per kilogram, truncated.
// Computed once at creation and never recomputed.
func pointsForWeight(weight *float64) int {
	if weight == nil {
		return 0
	}
	return int(*weight * 10)
}

// statusUpdateDoc builds the $set document for a status change. Transitions
// are unenforced: any status may follow any other. Only Completed stamps a
// processing time.
func statusUpdateDoc(status models.DonationStatus, agent string, now time.Time) bson.M {
	update := bson.M{"status": status}
	if agent != "" {
		update["assigned_agent"] = agent
	}
	if status == models.StatusCompleted {
		update["processed_at"] = models.NewFlexTime(now)
	}
	return update
}

// ---------------- CREATE ----------------
func CreateDonation(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.DonationRequestCreate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		for _, cat := range input.Categories {
			if !cat.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid clothing category: " + string(cat)})
				return
			}
		}

		donation := models.DonationRequest{
			ID:                  uuid.NewString(),
			DonorName:           input.DonorName,
			Email:               input.Email,
			Phone:               input.Phone,
			Address:             input.Address,
			City:                input.City,
			PostalCode:          input.PostalCode,
			PickupDate:          input.PickupDate,
			PickupTime:          input.PickupTime,
			Categories:          input.Categories,
			EstimatedWeight:     input.EstimatedWeight,
			SpecialInstructions: input.SpecialInstructions,
			Photos:              []string{},
			TrackingID:          newTrackingID(),
			Status:              models.StatusScheduled,
			CreatedAt:           models.FlexNow(),
			PointsEarned:        pointsForWeight(input.EstimatedWeight),
		}

		col := cfg.DB().Collection("donations")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := col.InsertOne(ctx, donation); err != nil {
			slog.Error("insert donation failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create donation request"})
			return
		}

		// Confirmation mail is best effort; the pickup is scheduled either way.
		if utils.EmailConfigured() {
			if err := utils.SendDonationConfirmation(donation); err != nil {
				slog.Warn("donation confirmation mail failed",
					"tracking_id", donation.TrackingID, "error", err)
			}
		}

		c.JSON(http.StatusCreated, donation)
	}
}

// ---------------- LIST ----------------
func ListDonations(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.DB().Collection("donations")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, bson.M{}, options.Find().SetLimit(listCap))
		if err != nil {
			slog.Error("list donations failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch donations"})
			return
		}

		var donations []models.DonationRequest
		if err := cursor.All(ctx, &donations); err != nil {
			slog.Error("decode donations failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode donations"})
			return
		}

		if len(donations) == 0 {
			c.JSON(http.StatusOK, []models.DonationRequest{})
			return
		}

		// --- Pick the most recently created donation ---
		latest := donations[0]
		for _, d := range donations {
			if d.CreatedAt.Time.After(latest.CreatedAt.Time) {
				latest = d
			}
		}

		// --- Generate ETag from latest donation ---
		etag := utils.GenerateETag(latest.ID, latest.CreatedAt.Time)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
		c.Header("Last-Modified", latest.CreatedAt.Time.UTC().Format(http.TimeFormat))

		c.JSON(http.StatusOK, donations)
	}
}

// ---------------- GET BY TRACKING CODE ----------------
func GetDonationByTracking(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		trackingID := c.Param("id")

		var donation models.DonationRequest
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := cfg.DB().
			Collection("donations").
			FindOne(ctx, bson.M{"tracking_id": trackingID}).
			Decode(&donation)
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
			return
		}
		if err != nil {
			slog.Error("get donation failed", "tracking_id", trackingID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch donation"})
			return
		}

		if notModified(c, donation.ID, donation.CreatedAt.Time) {
			return
		}

		c.JSON(http.StatusOK, donation)
	}
}

// ---------------- UPDATE STATUS ----------------
func UpdateDonationStatus(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		newStatus := models.DonationStatus(c.Query("new_status"))
		if newStatus == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "new_status is required"})
			return
		}
		if !newStatus.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + string(newStatus)})
			return
		}

		update := statusUpdateDoc(newStatus, c.Query("assigned_agent"), time.Now())

		col := cfg.DB().Collection("donations")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": update})
		if err != nil {
			slog.Error("update donation status failed", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update status"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
	}
}
