package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID     int64   `json:"id" db:"id" example:"1"`
	Name   string  `json:"name" db:"name" example:"Jane Doe"`
	Branch string  `json:"branch" db:"branch" example:"CS"`
	Year   int     `json:"year" db:"year" example:"3"`
	Resume *string `json:"resume,omitempty" db:"resume" example:"Jane_Doe.pdf"` // stored file name, nil without a PDF upload
}
