package ids

import "github.com/segmentio/ksuid"

// New returns a fresh sortable identifier. KSUIDs embed a timestamp, so
// lexicographic order roughly follows creation order.
func New() string {
	return ksuid.New().String()
}
