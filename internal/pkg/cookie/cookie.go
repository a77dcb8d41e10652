package cookie

import (
	"github.com/gin-gonic/gin"
)

// Set by the storefront frontend after the auth provider's sign-in redirect.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
