package user

import (
	"github.com/google/uuid"
)

// Profile mirrors an account held by the external auth provider.
type Profile struct {
	id       uuid.UUID
	email    Email
	fullName string
}

func NewProfile(id uuid.UUID, email Email, fullName string) *Profile {
	return &Profile{
		id:       id,
		email:    email,
		fullName: fullName,
	}
}

func (p *Profile) ID() uuid.UUID    { return p.id }
func (p *Profile) Email() Email     { return p.email }
func (p *Profile) FullName() string { return p.fullName }
