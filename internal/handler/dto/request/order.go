package request

import (
	"storefront/internal/usecase/commands"

	"github.com/google/uuid"
)

// TrackOrderRequest identifies an order by id (signed-in owner) or by tracking token.
type TrackOrderRequest struct {
	OrderID       *string `json:"orderId" binding:"omitempty,uuid"`
	TrackingToken string  `json:"trackingToken" binding:"omitempty,max=128"`
	Refresh       bool    `json:"refresh"`
}

func (r *TrackOrderRequest) ToCommand(actor *commands.Actor) (commands.TrackRequest, error) {
	req := commands.TrackRequest{
		TrackingToken: r.TrackingToken,
		Refresh:       r.Refresh,
		Actor:         actor,
	}
	if r.OrderID != nil && *r.OrderID != "" {
		id, err := uuid.Parse(*r.OrderID)
		if err != nil {
			return commands.TrackRequest{}, err
		}
		req.OrderID = &id
	}
	return req, nil
}

// HasIdentifier reports whether either lookup key was supplied.
func (r *TrackOrderRequest) HasIdentifier() bool {
	return (r.OrderID != nil && *r.OrderID != "") || r.TrackingToken != ""
}

type RecoverTrackingRequest struct {
	Email          string `json:"email" binding:"required,email,max=254"`
	ChallengeToken string `json:"challengeToken" binding:"required,max=2048"`
}

func (r *RecoverTrackingRequest) ToCommand(remoteIP string) commands.RecoverRequest {
	return commands.RecoverRequest{
		Email:          r.Email,
		ChallengeToken: r.ChallengeToken,
		RemoteIP:       remoteIP,
	}
}
