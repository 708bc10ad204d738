package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"elearning-service/internal/models"
	"elearning-service/internal/service"
)

const claimsKey = "authClaims"

// Auth verifies the caller's JWT and stores its claims on the context. The
// token is read from the x-auth-token header or an Authorization bearer
// header; the web client sends the former.
func Auth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("x-auth-token")
		if token == "" {
			header := c.GetHeader("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				token = strings.TrimPrefix(header, "Bearer ")
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token is not valid"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole guards a route group behind an exact role match.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok || claims.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "Access denied. " + string(role) + " only."})
			return
		}
		c.Next()
	}
}

func GetClaims(c *gin.Context) (*service.Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*service.Claims)
	return claims, ok
}

// GetUserID returns the authenticated user's id parsed from the claims.
func GetUserID(c *gin.Context) (primitive.ObjectID, bool) {
	claims, ok := GetClaims(c)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// IsStaff reports whether the claims belong to a Faculty or Admin account,
// the two roles allowed to read other users' attempts and feedback.
func IsStaff(claims *service.Claims) bool {
	return claims.Role == models.RoleFaculty || claims.Role == models.RoleAdmin
}
