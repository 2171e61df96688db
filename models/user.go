package models

type User struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	Phone          string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address        string    `bson:"address,omitempty" json:"address,omitempty"`
	TotalDonations int       `bson:"total_donations" json:"total_donations"`
	TotalPoints    int       `bson:"total_points" json:"total_points"`
	Badges         []string  `bson:"badges" json:"badges"`
	CreatedAt      FlexTime  `bson:"created_at" json:"created_at"`
	LastDonation   *FlexTime `bson:"last_donation,omitempty" json:"last_donation,omitempty"`
}

type UserCreate struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
