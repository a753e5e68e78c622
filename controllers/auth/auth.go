package authControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/yapzhanrui2/E-Commerce-Website/middleware"
	"github.com/yapzhanrui2/E-Commerce-Website/models"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// issueToken signs a 24h HS256 token carrying the user's id, email and role.
func issueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// POST /auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "error": err.Error()})
			return
		}

		user := models.User{
			Username: input.Username,
			Email:    input.Email,
			Password: input.Password,
			Role:     models.RoleUser,
		}
		if err := db.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "User with this email already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error registering user", "error": err.Error()})
			return
		}

		token, err := issueToken(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error registering user", "error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "User registered successfully",
			"user":    user.Public(),
			"token":   token,
		})
	}
}

// POST /auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation error", "error": err.Error()})
			return
		}

		// Unknown email and wrong password answer identically so the
		// endpoint cannot be used to enumerate accounts.
		var user models.User
		if err := db.First(&user, "email = ?", input.Email).Error; err != nil || !user.CheckPassword(input.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}

		token, err := issueToken(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error during login", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    user.Public(),
			"token":   token,
		})
	}
}

// GET /auth/me
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user.Public()})
	}
}

// POST /auth/logout
// Tokens are stateless; the client discards its copy.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
	}
}
