package models

// SortKey selects the ordering applied to placement records
type SortKey string

const (
	SortNone             SortKey = ""
	SortByPackageDesc    SortKey = "package"
	SortByCompanyNameAsc SortKey = "company"
)

// ParseSortKey maps the sort_by parameter onto a SortKey. Unrecognized values yield
// SortNone, which leaves ordering to the store.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByPackageDesc, SortByCompanyNameAsc:
		return SortKey(s)
	default:
		return SortNone
	}
}

// PlacedUnplaced is the "placed" parameter value that switches browsing to students
// without any placement.
const PlacedUnplaced = "unplaced"
