package domain

// ApplicationStatus display status of a dashboard application item
type ApplicationStatus string

const (
	StatusDraft      ApplicationStatus = "Draft"
	StatusIncomplete ApplicationStatus = "Application Incomplete"
	StatusCompleted  ApplicationStatus = "Completed"
)

// IsValidApplicationStatus reports whether s is a known status value
func IsValidApplicationStatus(s ApplicationStatus) bool {
	return s == StatusDraft || s == StatusIncomplete || s == StatusCompleted
}

// ApplicationItem is one row of the dashboard application list
type ApplicationItem struct {
	ID              string
	Name            string
	AppointmentDate string // "--" when no appointment is booked yet
	Status          ApplicationStatus
	Languages       string
	Selected        bool
}

// ApplicationSort dashboard sort modes
type ApplicationSort string

const (
	SortNewest   ApplicationSort = "NEWEST"
	SortOldest   ApplicationSort = "OLDEST"
	SortNameAsc  ApplicationSort = "NAME_ASC"
	SortNameDesc ApplicationSort = "NAME_DESC"
)

// ApplicationFilter dashboard list filter
type ApplicationFilter struct {
	Search string
	Status *ApplicationStatus // nil = ALL
	Sort   ApplicationSort
}
