package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"fixitsl-be/errs"
	"fixitsl-be/middlewares"
	"fixitsl-be/services"

	"github.com/gin-gonic/gin"
)

type IssueController struct {
	service *services.IssueService
}

func NewIssueController(service *services.IssueService) *IssueController {
	return &IssueController{service: service}
}

// ReportIssue handles a public report submission (multipart form with an
// optional image)
func (ic *IssueController) ReportIssue(c *gin.Context) {
	req := services.SubmitRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
	}

	if v, err := strconv.ParseFloat(c.PostForm("latitude"), 64); err == nil {
		req.Latitude = &v
	}
	if v, err := strconv.ParseFloat(c.PostForm("longitude"), 64); err == nil {
		req.Longitude = &v
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded image"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded image"})
			return
		}
		req.Image = data
		req.ImageType = fileHeader.Header.Get("Content-Type")
	}

	issue, err := ic.service.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, issue)
}

// GetAllIssues returns every issue, newest first
func (ic *IssueController) GetAllIssues(c *gin.Context) {
	issues, err := ic.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, issues)
}

// UpdateIssueStatus applies an authenticated status transition
func (ic *IssueController) UpdateIssueStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	credential := c.GetString(middlewares.CredentialKey)

	issue, err := ic.service.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status, credential)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, issue)
}

// GetMapView returns the marker projection for the public map. An optional
// focus target (issue id plus coordinates) recenters the view on it.
func (ic *IssueController) GetMapView(c *gin.Context) {
	issues, err := ic.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	var focus *services.Focus
	if focusID := c.Query("focus"); focusID != "" {
		lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
		lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "focus requires lat and lng"})
			return
		}
		focus = &services.Focus{
			IssueID:  focusID,
			Position: services.Coordinates{Latitude: lat, Longitude: lng},
		}
	}

	c.JSON(http.StatusOK, services.BuildView(issues, focus))
}

// respondError maps service error kinds to HTTP responses
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrNoCredential), errors.Is(err, errs.ErrBadCredential):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in again"})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
	case errors.Is(err, errs.ErrMediaUpload):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Image upload failed, please try again"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again later"})
	}
}
