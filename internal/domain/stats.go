package domain

// StatusSnapshot counts reports per status. Total includes reports whose
// stored status is not one of the known values.
type StatusSnapshot struct {
	Total      int
	Pending    int
	Processing int
	Completed  int
	Rejected   int
}

// Trend compares two adjacent windows of equal length.
// PercentChange is nil when the previous window is empty.
type Trend struct {
	WindowDays    int
	Current       int
	Previous      int
	PercentChange *int
}

// DailyCount is the number of reports created on one UTC calendar date.
type DailyCount struct {
	Date  string // YYYY-MM-DD
	Count int
}

// CategoryCount is the number of reports in one category.
type CategoryCount struct {
	Category string
	Count    int
}

// StatusCount is a raw grouped row as returned by a store.
type StatusCount struct {
	Status string
	Count  int
}

// Dashboard is the operational summary shown on the admin home page.
type Dashboard struct {
	ByStatus StatusSnapshot
	Week     Trend
	Month    Trend
}

// Charts bundles the chart series of the statistics page.
type Charts struct {
	Daily      []DailyCount
	ByCategory []CategoryCount
}
