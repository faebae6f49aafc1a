package models

// Placement links one student to one company. Neither reference is checked, and the
// same pair may be recorded more than once.
type Placement struct {
	ID        int64 `json:"id" db:"id"`
	StudentID int64 `json:"studentId" db:"student_id"`
	CompanyID int64 `json:"companyId" db:"company_id"`
}

// PlacementRecord is one row of the placement × student × company join
type PlacementRecord struct {
	StudentName string  `json:"studentName"`
	Branch      string  `json:"branch"`
	Year        int     `json:"year"`
	CompanyName string  `json:"companyName"`
	Position    string  `json:"position"`
	Package     float64 `json:"package"`
	Resume      *string `json:"resume"`
}

// UnplacedStudent is the narrower row returned for students without placements
type UnplacedStudent struct {
	Name   string `json:"name"`
	Branch string `json:"branch"`
	Year   int    `json:"year"`
}

// RecordFilter holds the optional browse filters. Empty fields impose no constraint.
type RecordFilter struct {
	NameContains    string
	BranchContains  string
	Year            string // raw value, compared exactly
	CompanyContains string
	Sort            SortKey
}
