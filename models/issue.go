package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueCategory enum
type IssueCategory string

const (
	Pothole     IssueCategory = "Pothole"
	Drainage    IssueCategory = "Drainage"
	StreetLight IssueCategory = "Street Light"
	Garbage     IssueCategory = "Garbage"
	Flood       IssueCategory = "Flood"
	Other       IssueCategory = "Other"
)

// IssueStatus enum
type IssueStatus string

const (
	Open       IssueStatus = "Open"
	InProgress IssueStatus = "In Progress"
	Resolved   IssueStatus = "Resolved"
)

var validCategories = map[IssueCategory]bool{
	Pothole: true, Drainage: true, StreetLight: true,
	Garbage: true, Flood: true, Other: true,
}

var validStatuses = map[IssueStatus]bool{
	Open: true, InProgress: true, Resolved: true,
}

// ValidCategory reports whether s is a member of the category enum
func ValidCategory(s string) bool {
	return validCategories[IssueCategory(s)]
}

// ValidStatus reports whether s is a member of the status enum
func ValidStatus(s string) bool {
	return validStatuses[IssueStatus(s)]
}

// Issue represents an infrastructure problem reported by a citizen
type Issue struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    IssueCategory      `bson:"category" json:"category"`
	ImageURL    *string            `bson:"imageUrl,omitempty" json:"imageUrl"`
	Latitude    float64            `bson:"latitude" json:"latitude"`
	Longitude   float64            `bson:"longitude" json:"longitude"`
	Status      IssueStatus        `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
