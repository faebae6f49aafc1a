package dto

import "github.com/yigit/placement/internal/app/models"

// CreateCompanyRequest is the add-company form
type CreateCompanyRequest struct {
	Name     string  `form:"name" json:"name" example:"Acme"`
	Position string  `form:"position" json:"position" example:"Engineer"`
	Package  float64 `form:"package" json:"package" example:"120000"`
}

// ToModel converts the form into a Company
func (r CreateCompanyRequest) ToModel() *models.Company {
	return &models.Company{
		Name:     r.Name,
		Position: r.Position,
		Package:  r.Package,
	}
}

// CreateStudentRequest is the add-student form without the resume file part
type CreateStudentRequest struct {
	Name   string `form:"name" json:"name" example:"Jane Doe"`
	Branch string `form:"branch" json:"branch" example:"CS"`
	Year   int    `form:"year" json:"year" example:"3"`
}

// ToModel converts the form into a Student. The resume is set by the service.
func (r CreateStudentRequest) ToModel() *models.Student {
	return &models.Student{
		Name:   r.Name,
		Branch: r.Branch,
		Year:   r.Year,
	}
}

// PlaceStudentRequest is the place-student form. Ids are not checked against the store.
type PlaceStudentRequest struct {
	StudentID int64 `form:"student_id" json:"studentId" example:"1"`
	CompanyID int64 `form:"company_id" json:"companyId" example:"1"`
}

// ToModel converts the form into a Placement
func (r PlaceStudentRequest) ToModel() *models.Placement {
	return &models.Placement{
		StudentID: r.StudentID,
		CompanyID: r.CompanyID,
	}
}
