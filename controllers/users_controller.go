package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	config "github.com/rewear/thrift-donations-go/config"
	models "github.com/rewear/thrift-donations-go/models"
)

// ---------------- CREATE ----------------
func CreateUser(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UserCreate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Counters start at zero; no flow accrues them yet.
		user := models.User{
			ID:        uuid.NewString(),
			Name:      input.Name,
			Email:     input.Email,
			Phone:     input.Phone,
			Address:   input.Address,
			Badges:    []string{},
			CreatedAt: models.FlexNow(),
		}

		col := cfg.DB().Collection("users")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := col.InsertOne(ctx, user); err != nil {
			slog.Error("insert user failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
			return
		}

		c.JSON(http.StatusCreated, user)
	}
}

// ---------------- GET ----------------
func GetUser(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var user models.User
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := cfg.DB().
			Collection("users").
			FindOne(ctx, bson.M{"id": id}).
			Decode(&user)
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			slog.Error("get user failed", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch user"})
			return
		}

		if notModified(c, user.ID, user.CreatedAt.Time) {
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
