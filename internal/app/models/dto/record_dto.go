package dto

import "github.com/yigit/placement/internal/app/models"

// RecordFilterRequest holds the query parameters shared by /view_records,
// /export_placements and /api/v1/records
type RecordFilterRequest struct {
	Name    string `form:"name" json:"name,omitempty"`
	Branch  string `form:"branch" json:"branch,omitempty"`
	Year    string `form:"year" json:"year,omitempty"`
	Company string `form:"company" json:"company,omitempty"`
	Placed  string `form:"placed" json:"placed,omitempty"`
	SortBy  string `form:"sort_by" json:"sortBy,omitempty"`
	Type    string `form:"type" json:"type,omitempty"`
}

// ToFilter converts the request into a RecordFilter
func (r RecordFilterRequest) ToFilter() models.RecordFilter {
	return models.RecordFilter{
		NameContains:    r.Name,
		BranchContains:  r.Branch,
		Year:            r.Year,
		CompanyContains: r.Company,
		Sort:            models.ParseSortKey(r.SortBy),
	}
}

// Unplaced reports whether the request selects students without placements
func (r RecordFilterRequest) Unplaced() bool {
	return r.Placed == models.PlacedUnplaced
}

// RecordListResponse is the JSON body of /api/v1/records. Exactly one of Records and
// Students is set, depending on Unplaced.
type RecordListResponse struct {
	Unplaced bool                     `json:"unplaced"`
	Records  []models.PlacementRecord `json:"records,omitempty"`
	Students []models.UnplacedStudent `json:"students,omitempty"`
	Filters  RecordFilterRequest      `json:"filters"`
}
