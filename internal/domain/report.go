package domain

import (
	"strings"
	"time"

	"github.com/golang/geo/s2"
)

// Report is a citizen-submitted issue record.
type Report struct {
	ID         string
	Title      string
	Content    string
	AuthorID   string
	AuthorName string
	Category   ReportCategory
	Priority   ReportPriority
	Status     ReportStatus
	Tags       []string
	Images     []Image
	Location   *Location

	ReviewedBy      *string
	ReviewedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Image references an attached photo. PublicURL is empty when the image was
// never uploaded.
type Image struct {
	LocalURL  string
	PublicURL string
}

// Location is the place a report refers to. Latitude and longitude are always
// set together; Address is optional.
type Location struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// HasAddress reports whether the location carries a non-blank address.
func (l Location) HasAddress() bool {
	return strings.TrimSpace(l.Address) != ""
}

// Valid reports whether the coordinates are within WGS84 bounds.
func (l Location) Valid() bool {
	return s2.LatLngFromDegrees(l.Latitude, l.Longitude).IsValid()
}

// ReportPatch is a partial update applied by the repository. Nil fields are
// left untouched. UpdatedAt is always written.
type ReportPatch struct {
	Title    *string
	Content  *string
	Category *ReportCategory
	Priority *ReportPriority
	Tags     *[]string
	Images   *[]Image
	Location *Location

	Status          *ReportStatus
	ReviewedBy      *string
	ReviewedAt      *time.Time
	RejectionReason *string
	// ClearRejectionReason removes a stored reason. It wins over RejectionReason.
	ClearRejectionReason bool

	UpdatedAt time.Time
}

// ReportSortField names a sortable report attribute.
type ReportSortField string

const (
	SortByCreatedAt ReportSortField = "createdAt"
	SortByUpdatedAt ReportSortField = "updatedAt"
	SortByTitle     ReportSortField = "title"
	SortByPriority  ReportSortField = "priority"
	SortByStatus    ReportSortField = "status"
	SortByCategory  ReportSortField = "category"
)

func (f ReportSortField) IsValid() bool {
	switch f {
	case SortByCreatedAt, SortByUpdatedAt, SortByTitle, SortByPriority, SortByStatus, SortByCategory:
		return true
	}
	return false
}

// ReportFilter is the repository-level query. All set clauses are ANDed.
type ReportFilter struct {
	// Search is a case-insensitive substring matched against title, content
	// and author name.
	Search      string
	Status      *ReportStatus
	Priority    *ReportPriority
	Category    *ReportCategory
	CreatedFrom *time.Time // inclusive
	CreatedTo   *time.Time // inclusive
	HasLocation *bool

	// ExcludeStatuses is applied only when Status is nil.
	ExcludeStatuses []ReportStatus

	SortBy    ReportSortField
	SortOrder SortOrder

	Offset int
	Limit  int
}

// ReportPage is one page of a report listing.
type ReportPage struct {
	Items      []Report
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// HasNext reports whether a later page exists.
func (p ReportPage) HasNext() bool { return p.Page < p.TotalPages }

// HasPrev reports whether an earlier page exists.
func (p ReportPage) HasPrev() bool { return p.Page > 1 }
