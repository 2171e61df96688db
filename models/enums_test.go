package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClothingCategoryValid(t *testing.T) {
	for _, c := range []ClothingCategory{
		CategoryMen, CategoryWomen, CategoryKids, CategoryAccessories, CategoryMixed,
	} {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, ClothingCategory("Shoes").Valid())
	assert.False(t, ClothingCategory("men").Valid(), "labels are case sensitive")
	assert.False(t, ClothingCategory("").Valid())
}

func TestClothingConditionValid(t *testing.T) {
	for _, c := range []ClothingCondition{
		ConditionExcellent, ConditionGood, ConditionFair, ConditionNeedsRepair,
	} {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, ClothingCondition("Worn").Valid())
}

func TestDonationStatusValid(t *testing.T) {
	for _, s := range []DonationStatus{
		StatusScheduled, StatusPickedUp, StatusProcessed, StatusCompleted,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, DonationStatus("Cancelled").Valid())
	assert.False(t, DonationStatus("PickedUp").Valid(), "label includes a space")
}

func TestSizeValid(t *testing.T) {
	for _, s := range []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, Size("XXXL").Valid())
}
