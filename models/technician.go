package models

// Technician represents a staff member customers can book.
type Technician struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Specialty   string `bson:"specialty,omitempty" json:"specialty,omitempty"`
	IsAvailable bool   `bson:"is_available" json:"is_available"`
}
