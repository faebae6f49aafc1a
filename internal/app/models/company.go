package models

// Company defines the company model based on the 'companies' table
type Company struct {
	ID       int64   `json:"id" db:"id" example:"1"`
	Name     string  `json:"name" db:"name" example:"Acme"`
	Position string  `json:"position" db:"position" example:"Engineer"`
	Package  float64 `json:"package" db:"package" example:"120000"` // offered compensation
}
