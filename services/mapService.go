package services

import (
	"strings"

	"fixitsl-be/models"
)

// Marker status classifications used by the map frontend
const (
	MarkerResolved = "resolved"
	MarkerPending  = "pending"
)

// markerOffsetStep nudges stacked reports at the same coordinates apart so
// they stay individually clickable. This is a deterministic de-collision
// offset, not spatial clustering.
const markerOffsetStep = 0.0003

const (
	defaultZoom = 8
	focusZoom   = 15
)

// defaultCenter is the island-wide view shown when no issue is focused
var defaultCenter = Coordinates{Latitude: 7.8731, Longitude: 80.7718}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Marker is a renderable map point derived from an issue
type Marker struct {
	Position Coordinates  `json:"position"`
	Status   string       `json:"status"`
	Focused  bool         `json:"focused"`
	Issue    models.Issue `json:"issue"`
}

// Focus is a navigation target: an issue id plus its coordinates
type Focus struct {
	IssueID  string
	Position Coordinates
}

type MapView struct {
	Center  Coordinates `json:"center"`
	Zoom    int         `json:"zoom"`
	Markers []Marker    `json:"markers"`
}

// Project maps issues to markers. Marker i sits at the issue's position
// shifted by i*markerOffsetStep on both axes, and classifies as resolved
// or pending by a case-insensitive status compare. Issues without
// coordinates are skipped; their index still counts toward the offset.
func Project(issues []models.Issue) []Marker {
	markers := make([]Marker, 0, len(issues))
	for i, issue := range issues {
		if issue.Latitude == 0 || issue.Longitude == 0 {
			continue
		}

		offset := float64(i) * markerOffsetStep

		status := MarkerPending
		if strings.EqualFold(string(issue.Status), string(models.Resolved)) {
			status = MarkerResolved
		}

		markers = append(markers, Marker{
			Position: Coordinates{
				Latitude:  issue.Latitude + offset,
				Longitude: issue.Longitude + offset,
			},
			Status: status,
			Issue:  issue,
		})
	}
	return markers
}

// BuildView projects the issues and picks the viewport. With a focus
// target the view recenters on it at a close zoom and flags the matching
// marker so the frontend can open its popup; otherwise it shows the
// default region at a wide zoom.
func BuildView(issues []models.Issue, focus *Focus) MapView {
	markers := Project(issues)

	view := MapView{
		Center:  defaultCenter,
		Zoom:    defaultZoom,
		Markers: markers,
	}

	if focus != nil {
		view.Center = focus.Position
		view.Zoom = focusZoom
		for i := range view.Markers {
			if view.Markers[i].Issue.ID.Hex() == focus.IssueID {
				view.Markers[i].Focused = true
				break
			}
		}
	}

	return view
}
