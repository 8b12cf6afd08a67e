package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/Burgamansi/CarmoPlusUltra/models"
)

// Login authenticates the group coordinator against the credentials
// configured in the environment and issues a 24h bearer token. There
// is no member-facing account system; regular members browse without
// logging in.
func (a *API) Login(c *gin.Context) {
	var login models.Login

	if err := c.ShouldBindJSON(&login); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username := os.Getenv("COORDINATOR_USERNAME")
	passwordHash := os.Getenv("COORDINATOR_PASSWORD_HASH")
	if username == "" || passwordHash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Coordinator login is not configured"})
		return
	}

	if login.Username != username {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(login.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	generateToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  login.Username,
		"role": "admin",
		"exp":  time.Now().Add(time.Hour * 24).Unix(),
	})

	token, err := generateToken.SignedString([]byte(os.Getenv("SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
