package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FallbackDisplayName is used for a new profile when the identity carries
// neither a full name nor an email.
const FallbackDisplayName = "User"

// Identity is the authenticated caller as asserted by the identity provider's
// token. It is never stored directly.
type Identity struct {
	Subject  uuid.UUID
	Email    string
	FullName string
}

// Anonymous reports whether the caller presented a valid project key rather
// than a signed-in user's token.
func (i Identity) Anonymous() bool {
	return i.Subject == uuid.Nil
}

// DisplayName returns the name used when bootstrapping a profile.
func (i Identity) DisplayName() string {
	if name := strings.TrimSpace(i.FullName); name != "" {
		return name
	}
	if email := strings.TrimSpace(i.Email); email != "" {
		return email
	}
	return FallbackDisplayName
}

// Profile is the teacher's account record. Its ID equals the identity subject.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProfile builds the first profile for an identity.
func NewProfile(identity Identity) (*Profile, error) {
	now := time.Now().UTC()
	profile := &Profile{
		ID:        identity.Subject,
		FullName:  identity.DisplayName(),
		Email:     identity.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return profile, nil
}

// Validate checks if the Profile has valid data.
func (p *Profile) Validate() error {
	if p.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if strings.TrimSpace(p.FullName) == "" {
		return NewValidationError("full_name", "cannot be empty", ErrEmptyContent)
	}
	return nil
}
