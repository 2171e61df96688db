package models

type DonationRequest struct {
	ID                  string             `bson:"id" json:"id"`
	DonorName           string             `bson:"donor_name" json:"donor_name"`
	Email               string             `bson:"email" json:"email"`
	Phone               string             `bson:"phone" json:"phone"`
	Address             string             `bson:"address" json:"address"`
	City                string             `bson:"city" json:"city"`
	PostalCode          string             `bson:"postal_code" json:"postal_code"`
	PickupDate          string             `bson:"pickup_date" json:"pickup_date"`
	PickupTime          string             `bson:"pickup_time" json:"pickup_time"`
	Categories          []ClothingCategory `bson:"categories" json:"categories"`
	EstimatedWeight     *float64           `bson:"estimated_weight,omitempty" json:"estimated_weight,omitempty"`
	SpecialInstructions string             `bson:"special_instructions,omitempty" json:"special_instructions,omitempty"`
	Photos              []string           `bson:"photos" json:"photos"`
	TrackingID          string             `bson:"tracking_id" json:"tracking_id"`
	Status              DonationStatus     `bson:"status" json:"status"`
	CreatedAt           FlexTime           `bson:"created_at" json:"created_at"`
	ProcessedAt         *FlexTime          `bson:"processed_at,omitempty" json:"processed_at,omitempty"`
	AssignedAgent       string             `bson:"assigned_agent,omitempty" json:"assigned_agent,omitempty"`
	PointsEarned        int                `bson:"points_earned" json:"points_earned"`
}

type DonationRequestCreate struct {
	DonorName           string             `json:"donor_name" binding:"required"`
	Email               string             `json:"email" binding:"required"`
	Phone               string             `json:"phone" binding:"required"`
	Address             string             `json:"address" binding:"required"`
	City                string             `json:"city" binding:"required"`
	PostalCode          string             `json:"postal_code" binding:"required"`
	PickupDate          string             `json:"pickup_date" binding:"required"`
	PickupTime          string             `json:"pickup_time" binding:"required"`
	Categories          []ClothingCategory `json:"categories" binding:"required,min=1"`
	EstimatedWeight     *float64           `json:"estimated_weight"`
	SpecialInstructions string             `json:"special_instructions"`
}
