package order

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// DefaultOrderType is used when a request does not name one.
const DefaultOrderType = "takeout"

// Known reports whether s is one of the recognised order statuses.
// Transitions between known statuses are not restricted; all status
// writes go through Repository.UpdateStatus so a transition guard can
// be added there later without touching callers.
func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
