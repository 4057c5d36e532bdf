package domain

import "time"

// Track represents a single catalog record returned by the search provider
type Track struct {
	Artist     string
	Title      string
	Album      string
	Kind       string // track kind reported by the catalog (song, music-video, ...)
	PreviewURL string
}

// HistoryEntry represents one past selection
type HistoryEntry struct {
	Title     string
	CreatedAt time.Time
}

// RequestStatus represents the lifecycle state of an outstanding search request
type RequestStatus int

// Request statuses
const (
	RequestPending RequestStatus = iota
	RequestCancelled
	RequestSettled
)

// String returns a readable name for logging
func (s RequestStatus) String() string {
	switch s {
	case RequestPending:
		return "pending"
	case RequestCancelled:
		return "cancelled"
	case RequestSettled:
		return "settled"
	default:
		return "unknown"
	}
}
