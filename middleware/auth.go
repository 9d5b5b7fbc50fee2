package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/yusifu-m-barrie/buy-ya/models"
	"gorm.io/gorm"
)

const userContextKey = "user"

// ValidateToken authenticates the bearer token and resolves the token
// subject (the auth provider's user id) to a local User row, creating it
// on first sight when the token carries an email claim.
func ValidateToken(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}
		subject, err := claims.GetSubject()
		if err != nil || subject == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has no subject"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, "clerk_id = ?", subject).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
				c.Abort()
				return
			}
			email, _ := claims["email"].(string)
			if email == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
				c.Abort()
				return
			}
			name, _ := claims["name"].(string)
			user = models.User{ClerkID: subject, Email: email, Name: name}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to provision user"})
				c.Abort()
				return
			}
		}

		c.Set(userContextKey, &user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

// CurrentUser returns the authenticated user placed in the context by
// ValidateToken. It is only meaningful behind that middleware.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, _ := val.(*models.User)
	return user
}
