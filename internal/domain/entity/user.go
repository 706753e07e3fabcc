// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the portfolio owner account. The same record backs authentication and the public profile.
type User struct {
	ID           uint      // Database-generated identifier, also the token subject.
	Email        string    // Login identifier, unique across users.
	PasswordHash string    // bcrypt hash; never serialized to clients.
	FirstName    string    // Given name shown on the profile.
	LastName     string    // Family name shown on the profile.
	Title        string    // Professional headline, e.g. "Backend Engineer".
	Bio          string    // Free-form biography.
	Location     string    // City / country.
	AvatarURL    string    // Profile picture URL.
	GithubURL    string    // GitHub profile URL.
	LinkedinURL  string    // LinkedIn profile URL.
	Website      string    // Personal website URL.
	Phone        string    // Contact phone, private to the owner.
	IsActive     bool      // Inactive users cannot authenticate.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Identity is the principal resolved for one authenticated request.
// It is rebuilt from persistence on every request and never cached.
type Identity struct {
	ID        uint
	Email     string
	FirstName string
	LastName  string
	IsActive  bool
}

// Identity projects the user onto the fields attached to a request.
func (u *User) Identity() *Identity {
	return &Identity{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
	}
}
