package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"firebase.google.com/go/v4/auth"
)

const principalKey = "authPrincipal"

// TokenVerifier is the slice of the Firebase Auth client used for request
// authentication.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Principal is the verified identity attached to a request: the subject id
// from the identity provider plus the admin claim. Handlers receive it
// explicitly instead of reading ambient state.
type Principal struct {
	UID   string
	Admin bool
}

// FirebaseAuth verifies the bearer token on each request. A missing token is
// 401; a token the provider rejects is 403.
func FirebaseAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: No token provided"})
			return
		}
		idToken := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := verifier.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: Invalid token"})
			return
		}

		admin, _ := token.Claims["admin"].(bool)
		c.Set(principalKey, Principal{UID: token.UID, Admin: admin})
		c.Next()
	}
}

// PrincipalFrom returns the verified principal set by FirebaseAuth.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// SetPrincipal attaches a principal directly; used by tests.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(principalKey, p)
}
