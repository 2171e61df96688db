package models

// Closed enumerations shared by donations and thrift inventory. Values
// serialize by their human-facing label in both JSON and Mongo.

type ClothingCategory string

const (
	CategoryMen         ClothingCategory = "Men"
	CategoryWomen       ClothingCategory = "Women"
	CategoryKids        ClothingCategory = "Kids"
	CategoryAccessories ClothingCategory = "Accessories"
	CategoryMixed       ClothingCategory = "Mixed/Textile Waste"
)

func (c ClothingCategory) Valid() bool {
	switch c {
	case CategoryMen, CategoryWomen, CategoryKids, CategoryAccessories, CategoryMixed:
		return true
	}
	return false
}

type ClothingCondition string

const (
	ConditionExcellent   ClothingCondition = "Excellent"
	ConditionGood        ClothingCondition = "Good"
	ConditionFair        ClothingCondition = "Fair"
	ConditionNeedsRepair ClothingCondition = "Needs Repair"
)

func (c ClothingCondition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionNeedsRepair:
		return true
	}
	return false
}

type DonationStatus string

const (
	StatusScheduled DonationStatus = "Scheduled"
	StatusPickedUp  DonationStatus = "Picked Up"
	StatusProcessed DonationStatus = "Processed"
	StatusCompleted DonationStatus = "Completed"
)

func (s DonationStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusPickedUp, StatusProcessed, StatusCompleted:
		return true
	}
	return false
}

type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

func (s Size) Valid() bool {
	switch s {
	case SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL:
		return true
	}
	return false
}
