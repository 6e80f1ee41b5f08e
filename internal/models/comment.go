package models

import "time"

// ModerationState is derived from the Reported/Approved pair; it is never
// stored directly.
type ModerationState string

const (
	// ModerationClean: never reported, or a report was dismissed.
	ModerationClean ModerationState = "clean"
	// ModerationPending: reported and awaiting an owner decision.
	ModerationPending ModerationState = "pending"
	// ModerationRemoved: report upheld; hidden from every visible view
	// but the record is kept.
	ModerationRemoved ModerationState = "removed"
)

// Comment is a member-authored comment attached to an article. AuthorName is
// denormalized at creation time so renames of the account never rewrite
// history. Approved is a tri-state: nil means undecided or not reported,
// true means the report was upheld, false is the transient result of a
// dismissal (normalized back to the clean state by the store).
type Comment struct {
	ID           string
	ArticleID    string
	AuthorID     string
	AuthorName   string
	Body         string
	CreatedAt    time.Time
	Reported     bool
	ReportReason string
	Approved     *bool
}

func (c Comment) State() ModerationState {
	switch {
	case c.Approved != nil && *c.Approved:
		return ModerationRemoved
	case c.Reported:
		return ModerationPending
	default:
		return ModerationClean
	}
}

// Visible reports whether the comment may appear under its article. Pending
// comments stay visible to everyone while awaiting a decision; only an
// upheld report hides a comment.
func (c Comment) Visible() bool {
	return c.State() != ModerationRemoved
}
