package appointment

// Status is stored as a free-form string; these are the values the API
// itself writes.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
)
