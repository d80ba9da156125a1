package models

import "time"

// ScrapCategory groups scrap items for pricing.
type ScrapCategory string

const (
	ScrapCategoryPaper      ScrapCategory = "PAPER"
	ScrapCategoryPlastic    ScrapCategory = "PLASTIC"
	ScrapCategoryMetal      ScrapCategory = "METAL"
	ScrapCategoryEWaste     ScrapCategory = "EWASTE"
	ScrapCategoryMixedScrap ScrapCategory = "MIXED_SCRAP"
	ScrapCategoryOthers     ScrapCategory = "OTHERS"
)

// Scrap is a catalog entry with its rate per unit.
type Scrap struct {
	ScrapID          string        `json:"scrapId" gorm:"primaryKey"`
	ScrapName        string        `json:"scrapName"`
	ScrapCategory    ScrapCategory `json:"scrapCategory"`
	ScrapAmountAsPer string        `json:"scrapAmountAsPer"` // "KG" or "PIECE"
	ScrapAmount      float64       `json:"scrapAmount"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}
