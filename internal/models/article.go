package models

import "time"

// Article is read-only in this service: the directory is seeded once and
// never mutated. Deletion/unpublishing is deliberately unspecified.
type Article struct {
	ID       string
	Title    string
	Excerpt  string
	Content  string
	Tags     []string
	Date     time.Time
	Author   string
	ReadTime int
	// IsPublic defaults to true for every seeded article. Kept as an
	// explicit field so visibility is never bolted on informally.
	IsPublic bool
}

// ContactMessage is a visitor message from the contact form.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
