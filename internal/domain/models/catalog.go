package models

// Experience is a catalog entry with an optional tax-inclusive per-person
// price. Price is a pointer so "no price configured" is distinguishable
// from a free experience.
type Experience struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Location string   `json:"location"`
	Price    *float64 `json:"price,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

// Activity is a specific bookable variant under an experience. When it
// carries its own price, that price wins over the experience price.
type Activity struct {
	ID           int64    `json:"id"`
	ExperienceID int64    `json:"experience_id"`
	Name         string   `json:"name"`
	Price        *float64 `json:"price,omitempty"`
}
