package api

import (
	"encoding/json"
	"time"

	"workable/internal/service"
)

// Wire shapes for the backend's JSON. Numeric IDs are decoded as
// json.Number and carried as strings everywhere above this package.

type userPayload struct {
	ID    json.Number `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
}

type authResponse struct {
	Token   string      `json:"token"`
	User    userPayload `json:"user"`
	Message string      `json:"message"`
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateEmailRequest struct {
	NewEmail string `json:"newEmail"`
}

type availabilityResponse struct {
	Available bool `json:"available"`
}

type todoPayload struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Priority    string      `json:"priority"`
	Completed   bool        `json:"completed"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
}

type todoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type weatherPayload struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

type newsArticlePayload struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Source      string      `json:"source"`
	SourceURL   string      `json:"sourceUrl"`
	Category    string      `json:"category"`
	PublishedAt string      `json:"publishedAt"`
}

type newsPagePayload struct {
	Content []newsArticlePayload `json:"content"`
	Last    bool                 `json:"last"`
}

func (u userPayload) toIdentity() service.Identity {
	return service.Identity{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
	}
}

func (a authResponse) toSession() service.Session {
	return service.Session{
		Identity: a.User.toIdentity(),
		Token:    a.Token,
	}
}

func (t todoPayload) toTask() service.Task {
	priority, ok := service.ParsePriority(t.Priority)
	if !ok {
		priority = service.PriorityMedium
	}
	return service.Task{
		ID:        t.ID.String(),
		Title:     t.Title,
		Completed: t.Completed,
		Priority:  priority,
		CreatedAt: parseBackendTime(t.CreatedAt),
	}
}

func (w weatherPayload) toWeather() service.Weather {
	return service.Weather{
		City:        w.City,
		Country:     w.Country,
		Temperature: w.Temperature,
		FeelsLike:   w.FeelsLike,
		Humidity:    w.Humidity,
		WindSpeed:   w.WindSpeed,
		Description: w.Description,
		Icon:        w.Icon,
	}
}

func (n newsArticlePayload) toNewsItem() service.NewsItem {
	return service.NewsItem{
		ID:          n.ID.String(),
		Title:       n.Title,
		Description: n.Description,
		Source:      n.Source,
		SourceURL:   n.SourceURL,
		Category:    n.Category,
		PublishedAt: parseBackendTime(n.PublishedAt),
	}
}

// backendTimeLayouts covers both RFC 3339 and the backend's zoneless
// LocalDateTime serialization.
var backendTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseBackendTime(s string) time.Time {
	for _, layout := range backendTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
