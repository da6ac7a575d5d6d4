// Package service defines the backend-agnostic interface for dashboard operations.
package service

import (
	"context"
	"fmt"
)

// Service defines the interface for backend operations.
// All remote API calls go through this interface.
// Commands and controllers never build HTTP requests directly.
type Service interface {
	// Login authenticates an email against the backend.
	// A non-OK response is returned as a *StatusError.
	Login(ctx context.Context, email, password string) (Session, error)

	// Register provisions a new account and signs it in.
	Register(ctx context.Context, email, password string) (Session, error)

	// CheckEmail reports whether an email address is free to claim.
	CheckEmail(ctx context.Context, email string) (bool, error)

	// UpdateEmail replaces the signed-in identity's email.
	// The backend retires the old identity and returns a fresh session.
	UpdateEmail(ctx context.Context, token, newEmail string) (Session, error)

	// ListTasks returns the authenticated user's task collection,
	// newest-created first.
	ListTasks(ctx context.Context, token string) ([]Task, error)

	// CreateTask creates a task and returns the server's representation.
	CreateTask(ctx context.Context, token, title string, priority Priority) (Task, error)

	// UpdateTask replaces a task's title and priority.
	UpdateTask(ctx context.Context, token, id, title string, priority Priority) (Task, error)

	// ToggleTask flips a task's completion status and returns the
	// server's representation.
	ToggleTask(ctx context.Context, token, id string) (Task, error)

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, token, id string) error

	// Weather returns current conditions for a city or coordinate pair.
	Weather(ctx context.Context, q WeatherQuery) (Weather, error)

	// News returns one page of the news feed. category may be empty
	// for the combined feed. page is 0-based.
	News(ctx context.Context, category string, page, size int) (NewsPage, error)
}

// StatusError reports a non-OK HTTP response from the backend.
// Callers that distinguish "the server said no" from "the call never
// completed" check for it with errors.As.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.Code)
}
