package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"fixitsl-be/config"
	"fixitsl-be/models"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type seedLocation struct {
	lat  float64
	lng  float64
	name string
}

var landLocations = []seedLocation{
	{6.9271, 79.8612, "Maradana"},
	{6.9044, 79.8540, "Kollupitiya (Inland)"},
	{6.9117, 79.8646, "Town Hall"},
	{6.8969, 79.8760, "Thimbirigasyaya"},
	{6.8742, 79.8606, "Wellawatte"},
	{6.8833, 79.8833, "Nugegoda"},
	{6.9167, 79.8473, "Pettah"},
	{6.9333, 79.8667, "Borella"},
	{6.9000, 79.9000, "Battaramulla"},
	{6.8500, 79.8800, "Dehiwala"},
}

func strPtr(s string) *string { return &s }

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	collection := config.GetCollection("issues")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear issues: %v", err)
	}
	log.Println("Database Cleared")

	openImages := []string{
		"/seed_images/pothole.png",
		"/seed_images/garbage.png",
		"/seed_images/flood.png",
		"/seed_images/street_light.png",
		"/seed_images/collapse.png",
	}
	openTitles := []string{
		"Deep Pothole near School",
		"Garbage Pileup on Main Rd",
		"Flooded Intersection",
		"Broken Street Lamp",
		"Road Collapse Warning",
	}
	openCategories := []models.IssueCategory{
		models.Pothole, models.Garbage, models.Flood, models.StreetLight, models.Other,
	}
	openDescriptions := []string{
		"A very deep pothole causing traffic slowdowns near the school entrance.",
		"Large pile of uncollected garbage blocking the sidewalk.",
		"Intersection completely flooded after heavy rain.",
		"Street lamp has been flickering and is now completely out.",
		"Part of the road edge is collapsing into the canal.",
	}

	openIssues := make([]interface{}, 0, 5)
	for i := 0; i < 5; i++ {
		loc := landLocations[i]
		openIssues = append(openIssues, models.Issue{
			ID:          primitive.NewObjectID(),
			Title:       openTitles[i],
			Description: openDescriptions[i],
			Category:    openCategories[i],
			ImageURL:    strPtr(openImages[i]),
			Latitude:    loc.lat,
			Longitude:   loc.lng,
			Status:      models.Open,
			CreatedAt:   time.Now(),
		})
	}

	if _, err := collection.InsertMany(ctx, openIssues); err != nil {
		log.Fatalf("Failed to insert open issues: %v", err)
	}
	log.Println("Open Issues Inserted")

	resolvedTitles := []string{
		"Fixed Pothole at Borella", "Cleared Drain", "Repaired Street Lamp",
		"Removed Garbage Pile", "Road Patching Complete", "Drainage Unblocked",
		"New Street Light Installed", "Debris Cleared", "Sidewalk Repaired",
		"Manhole Cover Replaced",
	}
	resolvedCategories := []models.IssueCategory{
		models.Pothole, models.Garbage, models.StreetLight, models.Drainage,
	}

	resolvedIssues := make([]interface{}, 0, 10)
	for i := 0; i < 10; i++ {
		loc := landLocations[i%len(landLocations)]
		age := time.Duration(rand.Intn(30*24)) * time.Hour
		resolvedIssues = append(resolvedIssues, models.Issue{
			ID:          primitive.NewObjectID(),
			Title:       resolvedTitles[i],
			Description: "Resolved issue reported by community in " + loc.name + ".",
			Category:    resolvedCategories[rand.Intn(len(resolvedCategories))],
			Latitude:    loc.lat,
			Longitude:   loc.lng,
			Status:      models.Resolved,
			CreatedAt:   time.Now().Add(-age),
		})
	}

	if _, err := collection.InsertMany(ctx, resolvedIssues); err != nil {
		log.Fatalf("Failed to insert resolved issues: %v", err)
	}
	log.Println("Resolved History Inserted")

	log.Println("Database Seeded Successfully!")
}
