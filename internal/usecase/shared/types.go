package shared

import (
	"time"

	"github.com/google/uuid"
)

type ProfileSnapshot struct {
	ID       uuid.UUID
	Email    string
	FullName string
}

type Redemption struct {
	DiscountCodeID uuid.UUID
	UserID         *uuid.UUID
	OrderID        uuid.UUID
	RedeemedAt     time.Time
}
