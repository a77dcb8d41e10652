//go:build unit || e2e

package builder

import (
	"time"

	"storefront/internal/domain/user"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	FullName string
	Role     user.Role
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "ada@example.com",
		FullName: "Ada Lovelace",
		Role:     user.RoleCustomer,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.Profile, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewProfile(u.ID, email, u.FullName), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Profiles {
	return sqlc.Profiles{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func (u *UserBuilder) BuildActor() *commands.Actor {
	return &commands.Actor{
		UserID: u.ID,
		Email:  user.NormalizeEmail(u.Email),
		Role:   u.Role,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = user.RoleAdmin
	return u
}
