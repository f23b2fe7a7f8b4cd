package domain

type ProductType struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// Product is a single rentable unit. Available is the only admission signal:
// a product with Available=false is held by exactly one active rental.
type Product struct {
	ID             int32  `json:"id"`
	ProductTypeID  int32  `json:"product_type_id"`
	Name           string `json:"name"`
	Size           string `json:"size"`
	Description    string `json:"description"`
	BasePriceCents int32  `json:"base_price_cents"`
	Available      bool   `json:"available"`
}

// ProductPrice is a duration tier. Duration bounds are inclusive, in days.
type ProductPrice struct {
	ID              int32 `json:"id"`
	ProductID       int32 `json:"product_id"`
	MinDuration     int32 `json:"min_duration"`
	MaxDuration     int32 `json:"max_duration"`
	DailyPriceCents int32 `json:"daily_price_cents"`
}

// Covers reports whether duration falls inside the tier.
func (p ProductPrice) Covers(duration int32) bool {
	return p.MinDuration <= duration && duration <= p.MaxDuration
}
