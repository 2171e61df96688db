package models

// ImpactStats is the on-demand environmental/financial report computed from
// the current contents of the donations and thrift_items collections.
type ImpactStats struct {
	TotalClothesCollectedKg float64 `json:"total_clothes_collected_kg"`
	TotalItemsReused        int     `json:"total_items_reused"`
	TotalItemsRecycled      int     `json:"total_items_recycled"`
	CarbonFootprintSavedKg  float64 `json:"carbon_footprint_saved_kg"`
	TotalDonors             int     `json:"total_donors"`
	TotalRevenueGenerated   float64 `json:"total_revenue_generated"`
}
