package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
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

// thriftFilter builds the listing query. Availability is always enforced;
// everything else is an optional conjunction. Price bounds are inclusive.
func thriftFilter(category, size, condition string, minPrice, maxPrice *float64) bson.M {
	filter := bson.M{"is_available": true}

	if category != "" {
		filter["category"] = category
	}
	if size != "" {
		filter["size"] = size
	}
	if condition != "" {
		filter["condition"] = condition
	}
	if minPrice != nil || maxPrice != nil {
		price := bson.M{}
		if minPrice != nil {
			price["$gte"] = *minPrice
		}
		if maxPrice != nil {
			price["$lte"] = *maxPrice
		}
		filter["price"] = price
	}
	return filter
}

func priceQuery(c *gin.Context, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.New(key + " must be a number")
	}
	return &v, nil
}

// ---------------- CREATE ----------------
func CreateThriftItem(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ThriftItemCreate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !input.Category.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid clothing category: " + string(input.Category)})
			return
		}
		if !input.Size.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size: " + string(input.Size)})
			return
		}
		if !input.Condition.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid condition: " + string(input.Condition)})
			return
		}

		images := input.Images
		if images == nil {
			images = []string{}
		}

		item := models.ThriftItem{
			ID:                 uuid.NewString(),
			Name:               input.Name,
			Description:        input.Description,
			Category:           input.Category,
			Size:               input.Size,
			Condition:          input.Condition,
			Price:              *input.Price,
			OriginalDonationID: input.OriginalDonationID,
			Images:             images,
			IsAvailable:        true,
			CreatedAt:          models.FlexNow(),
		}

		col := cfg.DB().Collection("thrift_items")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := col.InsertOne(ctx, item); err != nil {
			slog.Error("insert thrift item failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create thrift item"})
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// ---------------- LIST ----------------
func ListThriftItems(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v := c.Query("category"); v != "" && !models.ClothingCategory(v).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid clothing category: " + v})
			return
		}
		if v := c.Query("size"); v != "" && !models.Size(v).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size: " + v})
			return
		}
		if v := c.Query("condition"); v != "" && !models.ClothingCondition(v).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid condition: " + v})
			return
		}

		minPrice, err := priceQuery(c, "min_price")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		maxPrice, err := priceQuery(c, "max_price")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		filter := thriftFilter(
			c.Query("category"),
			c.Query("size"),
			c.Query("condition"),
			minPrice, maxPrice,
		)

		col := cfg.DB().Collection("thrift_items")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, filter, options.Find().SetLimit(listCap))
		if err != nil {
			slog.Error("list thrift items failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch thrift items"})
			return
		}

		var items []models.ThriftItem
		if err := cursor.All(ctx, &items); err != nil {
			slog.Error("decode thrift items failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode thrift items"})
			return
		}

		if len(items) == 0 {
			c.JSON(http.StatusOK, []models.ThriftItem{})
			return
		}

		// --- Pick the most recently created item ---
		latest := items[0]
		for _, it := range items {
			if it.CreatedAt.Time.After(latest.CreatedAt.Time) {
				latest = it
			}
		}

		etag := utils.GenerateETag(latest.ID, latest.CreatedAt.Time)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
		c.Header("Last-Modified", latest.CreatedAt.Time.UTC().Format(http.TimeFormat))

		c.JSON(http.StatusOK, items)
	}
}

// ---------------- GET ----------------
func GetThriftItem(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var item models.ThriftItem
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := cfg.DB().
			Collection("thrift_items").
			FindOne(ctx, bson.M{"id": id}).
			Decode(&item)
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		if err != nil {
			slog.Error("get thrift item failed", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch thrift item"})
			return
		}

		if notModified(c, item.ID, item.CreatedAt.Time) {
			return
		}

		c.JSON(http.StatusOK, item)
	}
}
