//go:build unit

package api_test

import (
	"storefront/internal/domain/user"
	"storefront/internal/handler/middleware"
	"storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	customerToken = "customer-token"
	adminToken    = "admin-token"
)

var (
	customerID = uuid.MustParse("6f1c1b64-6a3e-4b59-9d0a-1b1f0c9e2a11")
	adminID    = uuid.MustParse("0b5d2f7e-3c1a-4e8b-a6d4-2f9e8c7b6a55")
)

// fakeAuth stands in for token validation: known bearer tokens become actors, anything else is anonymous.
func fakeAuth(c *gin.Context) {
	switch c.GetHeader("Authorization") {
	case "Bearer " + customerToken:
		middleware.SetActor(c, &commands.Actor{UserID: customerID, Email: "ada@example.com", Role: user.RoleCustomer})
	case "Bearer " + adminToken:
		middleware.SetActor(c, &commands.Actor{UserID: adminID, Email: "ops@example.com", Role: user.RoleAdmin})
	}
	c.Next()
}
