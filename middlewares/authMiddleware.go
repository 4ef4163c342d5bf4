package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CredentialKey is the context key the extracted bearer credential is
// stored under.
const CredentialKey = "credential"

// BearerCredential pulls the raw bearer token out of the Authorization
// header and stores it on the request context. It does not verify the
// token: verification happens in the service layer, so every authorized
// call receives the credential explicitly.
func BearerCredential() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")

		// Extracting token from "Bearer <token>" format
		tokenString := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader[7:]
		}

		c.Set(CredentialKey, tokenString)
		c.Next()
	}
}
