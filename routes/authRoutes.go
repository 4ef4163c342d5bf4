package routes

import (
	"fixitsl-be/controllers"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine, authController *controllers.AuthController) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", authController.LoginAdmin)
	}
}
