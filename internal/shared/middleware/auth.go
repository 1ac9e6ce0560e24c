package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const userIDKey = "userID"

// Auth verifies the bearer token and stores the caller's user id in
// the gin context. Requests without a valid identity are rejected.
//
// Token issuance lives in the external identity provider; this service
// only verifies signatures and extracts the subject.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := userIDFromHeader(c, jwtSecret)
		if err != nil {
			c.JSON(401, gin.H{"success": false, "error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": err.Error(),
			}})
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalAuth extracts the caller's identity when a valid bearer
// token is present but lets anonymous requests through. Public shop
// pages use it to compute ownership for the viewer.
func OptionalAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := userIDFromHeader(c, jwtSecret); err == nil {
			c.Set(userIDKey, userID)
		}
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user id, or uuid.Nil for
// anonymous requests.
func UserIDFromContext(c *gin.Context) uuid.UUID {
	value, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}

func userIDFromHeader(c *gin.Context, jwtSecret string) (uuid.UUID, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return uuid.Nil, fmt.Errorf("missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, fmt.Errorf("invalid authorization header format")
	}

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !parsedToken.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("invalid user ID in token")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user ID format")
	}

	return userID, nil
}
