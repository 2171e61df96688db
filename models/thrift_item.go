package models

type ThriftItem struct {
	ID                 string            `bson:"id" json:"id"`
	Name               string            `bson:"name" json:"name"`
	Description        string            `bson:"description" json:"description"`
	Category           ClothingCategory  `bson:"category" json:"category"`
	Size               Size              `bson:"size" json:"size"`
	Condition          ClothingCondition `bson:"condition" json:"condition"`
	Price              float64           `bson:"price" json:"price"`
	OriginalDonationID string            `bson:"original_donation_id,omitempty" json:"original_donation_id,omitempty"`
	Images             []string          `bson:"images" json:"images"`
	IsAvailable        bool              `bson:"is_available" json:"is_available"`
	CreatedAt          FlexTime          `bson:"created_at" json:"created_at"`
	SoldAt             *FlexTime         `bson:"sold_at,omitempty" json:"sold_at,omitempty"`
}

type ThriftItemCreate struct {
	Name               string            `json:"name" binding:"required"`
	Description        string            `json:"description" binding:"required"`
	Category           ClothingCategory  `json:"category" binding:"required"`
	Size               Size              `json:"size" binding:"required"`
	Condition          ClothingCondition `json:"condition" binding:"required"`
	Price              *float64          `json:"price" binding:"required"`
	OriginalDonationID string            `json:"original_donation_id"`
	Images             []string          `json:"images"`
}
