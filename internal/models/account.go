package models

import "time"

type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleMember    Role = "member"
	RoleOwner     Role = "owner"
)

// OAuthLinks records which external providers an account has linked.
type OAuthLinks struct {
	Google bool `json:"google"`
	GitHub bool `json:"github"`
}

// Account is a fixed blog identity seeded at startup. The password is a
// plaintext demo credential compared for exact equality; this service has
// no real authentication security model.
type Account struct {
	ID       string
	Username string
	Password string
	Email    string
	Bio      string
	IsOwner  bool
	JoinDate time.Time
	OAuth    OAuthLinks
}

func (a Account) Role() Role {
	if a.IsOwner {
		return RoleOwner
	}
	return RoleMember
}

// ProfileUpdate carries the caller-mutable account fields. Nil pointers
// leave the stored value untouched.
type ProfileUpdate struct {
	Bio    *string
	Google *bool
	GitHub *bool
}
