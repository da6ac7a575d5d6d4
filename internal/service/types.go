// Package service defines the backend-agnostic interface for dashboard operations.
package service

import "time"

// Priority is a task priority level.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// ParsePriority parses a priority name (case-insensitive).
// Returns false if the name is not one of low, medium, high.
func ParsePriority(s string) (Priority, bool) {
	switch s {
	case "low", "LOW", "Low":
		return PriorityLow, true
	case "medium", "MEDIUM", "Medium":
		return PriorityMedium, true
	case "high", "HIGH", "High":
		return PriorityHigh, true
	}
	return "", false
}

// Identity is the user record returned by the auth service.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Session pairs an auth token with the identity it represents.
type Session struct {
	Identity Identity
	Token    string
}

// Task is a single task item owned by the remote service.
type Task struct {
	ID        string
	Title     string
	Completed bool
	Priority  Priority
	CreatedAt time.Time
}

// Weather is a current-conditions report for one location.
type Weather struct {
	City        string
	Country     string
	Temperature float64
	FeelsLike   float64
	Humidity    int
	WindSpeed   float64
	Description string
	Icon        string
}

// WeatherQuery selects a location either by city name or, when ByCoords
// is set, by coordinates.
type WeatherQuery struct {
	City     string
	Lat, Lng float64
	ByCoords bool
}

// NewsItem is one article from the news feed.
type NewsItem struct {
	ID          string
	Title       string
	Description string
	Source      string
	SourceURL   string
	Category    string
	PublishedAt time.Time
}

// NewsPage is one page of the news feed.
// Last reports whether this is the final page.
type NewsPage struct {
	Items []NewsItem
	Last  bool
}
