package models

// Service is a bookable salon service from the catalog.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64 `bson:"price" json:"price"`
	DurationMin int     `bson:"duration_min" json:"duration_min"`
	Active      bool    `bson:"active" json:"active"`
}
