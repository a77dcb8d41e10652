//go:build unit

package order_test

import (
	"testing"

	"storefront/internal/domain/order"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from order.Status
		to   order.Status
		want bool
	}{
		{order.StatusConfirmed, order.StatusProcessing, true},
		{order.StatusConfirmed, order.StatusShipped, true},
		{order.StatusProcessing, order.StatusShipped, true},
		{order.StatusShipped, order.StatusDelivered, true},
		{order.StatusConfirmed, order.StatusCancelled, true},
		{order.StatusShipped, order.StatusCancelled, true},

		{order.StatusShipped, order.StatusProcessing, false},
		{order.StatusShipped, order.StatusShipped, false},
		{order.StatusProcessing, order.StatusConfirmed, false},
		{order.StatusDelivered, order.StatusCancelled, false},
		{order.StatusCancelled, order.StatusProcessing, false},
		{order.StatusCancelled, order.StatusShipped, false},
		{order.StatusConfirmed, order.Status("lost"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewStatus(t *testing.T) {
	s, err := order.NewStatus("shipped")
	assert.NoError(t, err)
	assert.Equal(t, order.StatusShipped, s)

	_, err = order.NewStatus("canceled")
	assert.ErrorIs(t, err, order.ErrInvalidStatus)
}
