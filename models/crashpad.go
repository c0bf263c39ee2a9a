package models

import "github.com/shopspring/decimal"

// GalleryImage is one photo in a crashpad's gallery, kept in server order.
type GalleryImage struct {
	Image   string `json:"image"`
	Caption string `json:"caption,omitempty"`
}

// Crashpad mirrors a rental unit as returned by the store's availability
// endpoint. Instances are read-only for the lifetime of one result set; a
// new search replaces the whole set.
type Crashpad struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Brand           string          `json:"brand,omitempty"`
	Model           string          `json:"model,omitempty"`
	Description     string          `json:"description"`
	Image           string          `json:"image"`
	GalleryImages   []GalleryImage  `json:"gallery_images,omitempty"`
	DayRate         decimal.Decimal `json:"day_rate"`
	SevenDayRate    decimal.Decimal `json:"seven_day_rate"`
	FourteenDayRate decimal.Decimal `json:"fourteen_day_rate"`
}
