package readstore

import (
	"context"
	"strings"

	"storefront/internal/infra"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/shared"
)

type ProfileReadQueries interface {
	GetProfileByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Profiles, error)
}

type ProfileReadStore struct {
	queries ProfileReadQueries
	db      sqlc.DBTX
}

func NewProfileReadStore(queries ProfileReadQueries, db sqlc.DBTX) *ProfileReadStore {
	return &ProfileReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProfileReadStore) FindByEmail(ctx context.Context, email string) (*shared.ProfileSnapshot, error) {
	row, err := r.queries.GetProfileByEmail(ctx, r.db, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get profile by email", err)
	}
	return &shared.ProfileSnapshot{
		ID:       row.ID,
		Email:    row.Email,
		FullName: row.FullName,
	}, nil
}
