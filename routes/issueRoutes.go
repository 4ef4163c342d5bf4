package routes

import (
	"fixitsl-be/controllers"
	"fixitsl-be/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes
func IssueRoutes(r *gin.Engine, issueController *controllers.IssueController, reportLimit int) {
	issue := r.Group("/api/issues")
	{
		issue.POST("/report", middlewares.ReportRateLimiter(reportLimit), issueController.ReportIssue)
		issue.GET("", issueController.GetAllIssues)
		issue.GET("/map", issueController.GetMapView)
		issue.PUT("/:id/status", middlewares.BearerCredential(), issueController.UpdateIssueStatus)
	}
}
