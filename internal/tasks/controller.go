// Package tasks manages the local cache of the authenticated user's task
// collection. The cache is never the source of truth: every mutation
// round-trips through the backend and the local entry is replaced with the
// server's returned representation on confirmed success only.
package tasks

import (
	"context"

	"workable/internal/service"
)

// StatusFilter selects tasks by completion status.
type StatusFilter int

const (
	StatusAll StatusFilter = iota
	StatusActive
	StatusCompleted
)

// ParseStatusFilter parses a status filter name.
func ParseStatusFilter(s string) (StatusFilter, bool) {
	switch s {
	case "all":
		return StatusAll, true
	case "active":
		return StatusActive, true
	case "completed":
		return StatusCompleted, true
	}
	return StatusAll, false
}

// Controller holds the task cache for the current session and issues
// authenticated requests through the service. Without a token every
// operation is inert: it records a "not logged in" error and performs no
// request. Not safe for concurrent use; callers run it from a single
// goroutine and the last response wins.
type Controller struct {
	svc   service.Service
	token func() string

	cache  []service.Task
	errMsg string

	status  StatusFilter
	include map[service.Priority]bool
}

// New creates a Controller. token is read before each operation so a
// session change (including an email-driven token swap) is picked up
// without rebuilding the controller.
func New(svc service.Service, token func() string) *Controller {
	return &Controller{
		svc:   svc,
		token: token,
		include: map[service.Priority]bool{
			service.PriorityLow:    true,
			service.PriorityMedium: true,
			service.PriorityHigh:   true,
		},
	}
}

// FetchAll replaces the entire cache with the server's collection.
func (c *Controller) FetchAll(ctx context.Context) bool {
	token, ok := c.requireToken()
	if !ok {
		return false
	}
	fetched, err := c.svc.ListTasks(ctx, token)
	if err != nil {
		c.errMsg = "failed to load tasks: " + err.Error()
		return false
	}
	c.cache = fetched
	c.errMsg = ""
	return true
}

// Create sends a creation request and, on success, prepends the server's
// returned task so the cache stays newest-created first.
func (c *Controller) Create(ctx context.Context, title string, priority service.Priority) (service.Task, bool) {
	token, ok := c.requireToken()
	if !ok {
		return service.Task{}, false
	}
	created, err := c.svc.CreateTask(ctx, token, title, priority)
	if err != nil {
		c.errMsg = "failed to create task: " + err.Error()
		return service.Task{}, false
	}
	c.cache = append([]service.Task{created}, c.cache...)
	c.errMsg = ""
	return created, true
}

// ToggleCompletion flips a task's completion status. The remote call is
// issued without a local existence pre-check; on success the matching
// cache entry, if any, is replaced with the server's representation.
func (c *Controller) ToggleCompletion(ctx context.Context, id string) bool {
	token, ok := c.requireToken()
	if !ok {
		return false
	}
	updated, err := c.svc.ToggleTask(ctx, token, id)
	if err != nil {
		c.errMsg = "failed to update task: " + err.Error()
		return false
	}
	c.replaceByID(id, updated)
	c.errMsg = ""
	return true
}

// Update replaces a task's title and priority wholesale.
func (c *Controller) Update(ctx context.Context, id, title string, priority service.Priority) bool {
	token, ok := c.requireToken()
	if !ok {
		return false
	}
	updated, err := c.svc.UpdateTask(ctx, token, id, title, priority)
	if err != nil {
		c.errMsg = "failed to update task: " + err.Error()
		return false
	}
	c.replaceByID(id, updated)
	c.errMsg = ""
	return true
}

// Remove deletes a task and drops it from the cache on success.
// No tombstoning or undo.
func (c *Controller) Remove(ctx context.Context, id string) bool {
	token, ok := c.requireToken()
	if !ok {
		return false
	}
	if err := c.svc.DeleteTask(ctx, token, id); err != nil {
		c.errMsg = "failed to delete task: " + err.Error()
		return false
	}
	for i, t := range c.cache {
		if t.ID == id {
			c.cache = append(c.cache[:i], c.cache[i+1:]...)
			break
		}
	}
	c.errMsg = ""
	return true
}

// SetStatusFilter sets the completion-status filter. View state only;
// never sent to the server.
func (c *Controller) SetStatusFilter(f StatusFilter) {
	c.status = f
}

// SetPriorityIncluded toggles one priority's inclusion. All three are
// included by default.
func (c *Controller) SetPriorityIncluded(p service.Priority, included bool) {
	c.include[p] = included
}

// Tasks returns a copy of the full cache.
func (c *Controller) Tasks() []service.Task {
	out := make([]service.Task, len(c.cache))
	copy(out, c.cache)
	return out
}

// Visible returns the cache entries passing both the status filter and
// the priority inclusion set.
func (c *Controller) Visible() []service.Task {
	var out []service.Task
	for _, t := range c.cache {
		if c.passes(t) {
			out = append(out, t)
		}
	}
	return out
}

// Err returns the last error message, or "" after a successful operation.
func (c *Controller) Err() string {
	return c.errMsg
}

func (c *Controller) passes(t service.Task) bool {
	switch c.status {
	case StatusActive:
		if t.Completed {
			return false
		}
	case StatusCompleted:
		if !t.Completed {
			return false
		}
	}
	return c.include[t.Priority]
}

func (c *Controller) replaceByID(id string, updated service.Task) {
	for i, t := range c.cache {
		if t.ID == id {
			c.cache[i] = updated
			return
		}
	}
}

func (c *Controller) requireToken() (string, bool) {
	token := c.token()
	if token == "" {
		c.errMsg = "not logged in"
		return "", false
	}
	return token, true
}
