package domain

// ReportStatus is the triage state of a report.
// Values read from storage are passed through untouched even when unknown.
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "pending"
	ReportStatusProcessing ReportStatus = "processing"
	ReportStatusCompleted  ReportStatus = "completed"
	ReportStatusRejected   ReportStatus = "rejected"
)

// ReportStatuses lists the known statuses in workflow order.
var ReportStatuses = []ReportStatus{
	ReportStatusPending, ReportStatusProcessing, ReportStatusCompleted, ReportStatusRejected,
}

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusProcessing, ReportStatusCompleted, ReportStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is expected in normal
// operation. Terminal statuses are still targetable.
func (s ReportStatus) IsTerminal() bool {
	return s == ReportStatusCompleted || s == ReportStatusRejected
}

// StampsReviewer reports whether moving into s records the reviewer.
func (s ReportStatus) StampsReviewer() bool {
	switch s {
	case ReportStatusProcessing, ReportStatusCompleted, ReportStatusRejected:
		return true
	}
	return false
}

// ReportCategory classifies the reported issue.
type ReportCategory string

const (
	CategoryRoad        ReportCategory = "road"
	CategoryElectricity ReportCategory = "electricity"
	CategoryStreetLight ReportCategory = "street_light"
	CategoryBuilding    ReportCategory = "building"
	CategoryWall        ReportCategory = "wall"
	CategoryWater       ReportCategory = "water"
	CategoryMine        ReportCategory = "mine"
)

// CategoryOther labels reports whose stored category is blank.
const CategoryOther = "other"

// ReportCategories lists every known category.
var ReportCategories = []ReportCategory{
	CategoryRoad, CategoryElectricity, CategoryStreetLight, CategoryBuilding,
	CategoryWall, CategoryWater, CategoryMine,
}

func (c ReportCategory) String() string { return string(c) }

func (c ReportCategory) IsValid() bool {
	switch c {
	case CategoryRoad, CategoryElectricity, CategoryStreetLight, CategoryBuilding,
		CategoryWall, CategoryWater, CategoryMine:
		return true
	}
	return false
}

// ReportPriority is the urgency assigned to a report.
type ReportPriority string

const (
	PriorityLow      ReportPriority = "low"
	PriorityMedium   ReportPriority = "medium"
	PriorityHigh     ReportPriority = "high"
	PriorityCritical ReportPriority = "critical"
)

// DefaultPriority is applied when intake omits the priority.
const DefaultPriority = PriorityMedium

func (p ReportPriority) String() string { return string(p) }

func (p ReportPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// AdminRole is the role carried by administrator accounts and tokens.
type AdminRole string

const (
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleSuperAdmin AdminRole = "super_admin"
)

func (r AdminRole) String() string { return string(r) }

func (r AdminRole) IsValid() bool {
	return r == AdminRoleAdmin || r == AdminRoleSuperAdmin
}

// SortOrder is the direction of a list sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool { return o == SortAsc || o == SortDesc }
