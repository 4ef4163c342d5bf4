package controllers

import (
	"errors"
	"log"
	"net/http"

	"fixitsl-be/errs"
	"fixitsl-be/repositories"
	authUtils "fixitsl-be/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users repositories.UserRepository
}

func NewAuthController(users repositories.UserRepository) *AuthController {
	return &AuthController{users: users}
}

// LoginAdmin exchanges admin credentials for a bearer token
func (ac *AuthController) LoginAdmin(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.users.FindByUsername(c.Request.Context(), input.Username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	if !user.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := authUtils.GenerateToken(user.ID.Hex())
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
