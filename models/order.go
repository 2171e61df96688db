package models

type CartItem struct {
	ItemID   string `bson:"item_id" json:"item_id"`
	Quantity int    `bson:"quantity" json:"quantity"`
}

// Order is a customer's cart snapshot. No endpoint exposes it yet; the shop
// checkout flow has not been built server-side.
type Order struct {
	ID            string     `bson:"id" json:"id"`
	CustomerName  string     `bson:"customer_name" json:"customer_name"`
	CustomerEmail string     `bson:"customer_email" json:"customer_email"`
	Items         []CartItem `bson:"items" json:"items"`
	TotalAmount   float64    `bson:"total_amount" json:"total_amount"`
	CreatedAt     FlexTime   `bson:"created_at" json:"created_at"`
	Status        string     `bson:"status" json:"status"`
}
