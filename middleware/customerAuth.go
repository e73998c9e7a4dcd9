package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/utils"
)

// CustomerIDKey is the gin context key holding the authenticated customer id.
const CustomerIDKey = "customerID"

// JWTAuthCustomerMiddleware requires a valid customer bearer token and puts
// the customer id on the context. Booking endpoints behind it can rely on a
// non-empty customer id.
func JWTAuthCustomerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		customerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || customerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}

		c.Set(CustomerIDKey, customerID)
		c.Next()
	}
}

// CustomerID returns the authenticated customer id from the context, or ""
// when the request is unauthenticated.
func CustomerID(c *gin.Context) string {
	v, ok := c.Get(CustomerIDKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
