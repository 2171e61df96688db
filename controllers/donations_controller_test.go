package controllers

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	config "github.com/rewear/thrift-donations-go/config"
	models "github.com/rewear/thrift-donations-go/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewTrackingID(t *testing.T) {
	pattern := regexp.MustCompile(`^DN[0-9A-F]{8}$`)
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		code := newTrackingID()
		assert.Regexp(t, pattern, code)
		_, dup := seen[code]
		assert.False(t, dup, "tracking codes must be unique: %s", code)
		seen[code] = struct{}{}
	}
}

func TestPointsForWeight(t *testing.T) {
	assert.Equal(t, 0, pointsForWeight(nil))

	cases := []struct {
		weight float64
		want   int
	}{
		{10, 100},
		{5.5, 55},
		{0.19, 1}, // truncated, not rounded
		{0.04, 0},
		{8.29, 82},
	}
	for _, tc := range cases {
		w := tc.weight
		assert.Equal(t, tc.want, pointsForWeight(&w), "weight %v", tc.weight)
	}
}

func TestStatusUpdateDoc(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("completed stamps processed_at", func(t *testing.T) {
		update := statusUpdateDoc(models.StatusCompleted, "", now)
		assert.Equal(t, models.StatusCompleted, update["status"])
		ft, ok := update["processed_at"].(models.FlexTime)
		require.True(t, ok)
		assert.True(t, ft.Time.Equal(now))
		_, hasAgent := update["assigned_agent"]
		assert.False(t, hasAgent)
	})

	t.Run("other statuses never stamp processed_at", func(t *testing.T) {
		for _, s := range []models.DonationStatus{
			models.StatusScheduled, models.StatusPickedUp, models.StatusProcessed,
		} {
			update := statusUpdateDoc(s, "", now)
			_, ok := update["processed_at"]
			assert.False(t, ok, string(s))
		}
	})

	t.Run("agent recorded when present", func(t *testing.T) {
		update := statusUpdateDoc(models.StatusPickedUp, "Alex", now)
		assert.Equal(t, bson.M{"status": models.StatusPickedUp, "assigned_agent": "Alex"}, update)
	})
}

// Validation failures are rejected before any store access, so these run
// against an unconnected config.
func donationTestRouter() *gin.Engine {
	cfg := &config.Config{}
	r := gin.New()
	r.POST("/api/donations", CreateDonation(cfg))
	r.PUT("/api/donations/:id/status", UpdateDonationStatus(cfg))
	return r
}

func TestCreateDonationRejectsMissingFields(t *testing.T) {
	r := donationTestRouter()

	body := `{"donor_name": "Sam", "email": "sam@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/donations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestCreateDonationRejectsEmptyCategories(t *testing.T) {
	r := donationTestRouter()

	body := `{
		"donor_name": "Sam", "email": "sam@example.com", "phone": "555-0100",
		"address": "1 Main St", "city": "Eco City", "postal_code": "12345",
		"pickup_date": "2024-02-01", "pickup_time": "9:00 AM",
		"categories": []
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/donations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateDonationRejectsUnknownCategory(t *testing.T) {
	r := donationTestRouter()

	body := `{
		"donor_name": "Sam", "email": "sam@example.com", "phone": "555-0100",
		"address": "1 Main St", "city": "Eco City", "postal_code": "12345",
		"pickup_date": "2024-02-01", "pickup_time": "9:00 AM",
		"categories": ["Shoes"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/donations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid clothing category")
}

func TestUpdateDonationStatusRejectsBadStatus(t *testing.T) {
	r := donationTestRouter()

	req := httptest.NewRequest(http.MethodPut, "/api/donations/abc/status?new_status=Cancelled", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid status")

	req = httptest.NewRequest(http.MethodPut, "/api/donations/abc/status", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "new_status is required")
}
