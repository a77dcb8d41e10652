package commands

import (
	"context"
	"log/slog"

	"storefront/internal/domain/user"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"
)

type OrderCommands interface {
	// ClaimGuestOrders links guest orders placed with the actor's email to the actor's account.
	ClaimGuestOrders(ctx context.Context, actor *Actor) (int64, error)
}

type orderUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderUseCase(uow shared.UnitOfWork, clk clock.Clock) OrderCommands {
	return &orderUseCaseImpl{uow: uow, clock: clk}
}

func (uc *orderUseCaseImpl) ClaimGuestOrders(ctx context.Context, actor *Actor) (int64, error) {
	if actor == nil {
		return 0, errs.ErrUnauthenticated
	}
	email, err := user.NewEmail(actor.Email)
	if err != nil {
		return 0, nil
	}

	var claimed int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, cerr := tx.Orders().ClaimGuestOrders(ctx, tx.DB(), actor.UserID, email.Value(), uc.clock.Now())
		claimed = n
		return cerr
	})
	if err != nil {
		return 0, err
	}
	if claimed > 0 {
		slog.Info("guest orders claimed", "user_id", actor.UserID, "count", claimed)
	}
	return claimed, nil
}
