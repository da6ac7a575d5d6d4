// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"workable/internal/service"
)

// FakeService is an in-memory implementation of service.Service for
// testing. Every method appends its name to Calls so tests can assert
// which remote calls were (or were not) issued.
type FakeService struct {
	mu sync.Mutex

	users  map[string]service.Session // email -> current session
	tasks  []service.Task             // newest-created first
	nextID int
	logins int

	// Calls records method invocations in order.
	Calls []string

	// Error injection for testing.
	LoginErr       error
	RegisterErr    error
	CheckEmailErr  error
	UpdateEmailErr error
	ListTasksErr   error
	CreateTaskErr  error
	UpdateTaskErr  error
	ToggleTaskErr  error
	DeleteTaskErr  error
	WeatherErr     error
	NewsErr        error

	// WeatherResult is returned by Weather on success.
	WeatherResult service.Weather

	// NewsItems is the full article collection News paginates over.
	NewsItems []service.NewsItem
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		users: make(map[string]service.Session),
	}
}

// SeedUser registers an account directly, bypassing the API surface.
func (f *FakeService) SeedUser(email string) service.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seedUserLocked(email)
}

func (f *FakeService) seedUserLocked(email string) service.Session {
	f.nextID++
	f.logins++
	sess := service.Session{
		Identity: service.Identity{
			ID:    strconv.Itoa(f.nextID),
			Email: email,
		},
		Token: fmt.Sprintf("token-%s-%d", email, f.logins),
	}
	f.users[email] = sess
	return sess
}

// AddTask seeds a server-side task and returns it.
func (f *FakeService) AddTask(title string, priority service.Priority, completed bool) service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	task := service.Task{
		ID:        strconv.Itoa(f.nextID),
		Title:     title,
		Priority:  priority,
		Completed: completed,
		CreatedAt: time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(f.nextID) * time.Minute),
	}
	f.tasks = append([]service.Task{task}, f.tasks...)
	return task
}

// CallCount returns how many times the named method was invoked.
func (f *FakeService) CallCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *FakeService) record(name string) {
	f.Calls = append(f.Calls, name)
}

// Login implements service.Service. Unknown emails get a 401 StatusError;
// known emails get a freshly minted token each time.
func (f *FakeService) Login(ctx context.Context, email, password string) (service.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Login")
	if f.LoginErr != nil {
		return service.Session{}, f.LoginErr
	}
	prior, ok := f.users[email]
	if !ok {
		return service.Session{}, &service.StatusError{Code: 401}
	}
	f.logins++
	prior.Token = fmt.Sprintf("token-%s-%d", email, f.logins)
	f.users[email] = prior
	return prior, nil
}

// Register implements service.Service.
func (f *FakeService) Register(ctx context.Context, email, password string) (service.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Register")
	if f.RegisterErr != nil {
		return service.Session{}, f.RegisterErr
	}
	if _, ok := f.users[email]; ok {
		return service.Session{}, &service.StatusError{Code: 409}
	}
	return f.seedUserLocked(email), nil
}

// CheckEmail implements service.Service.
func (f *FakeService) CheckEmail(ctx context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CheckEmail")
	if f.CheckEmailErr != nil {
		return false, f.CheckEmailErr
	}
	_, taken := f.users[email]
	return !taken, nil
}

// UpdateEmail implements service.Service. The old identity is retired and
// a fresh session is issued under the new email.
func (f *FakeService) UpdateEmail(ctx context.Context, token, newEmail string) (service.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateEmail")
	if f.UpdateEmailErr != nil {
		return service.Session{}, f.UpdateEmailErr
	}
	if token == "" {
		return service.Session{}, &service.StatusError{Code: 401}
	}
	if _, taken := f.users[newEmail]; taken {
		return service.Session{}, &service.StatusError{Code: 409}
	}
	for email, sess := range f.users {
		if sess.Token == token {
			delete(f.users, email)
			return f.seedUserLocked(newEmail), nil
		}
	}
	return f.seedUserLocked(newEmail), nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, token string) ([]service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListTasks")
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	if token == "" {
		return nil, &service.StatusError{Code: 401}
	}
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, token, title string, priority service.Priority) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateTask")
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	if token == "" {
		return service.Task{}, &service.StatusError{Code: 401}
	}
	f.nextID++
	task := service.Task{
		ID:        strconv.Itoa(f.nextID),
		Title:     title,
		Priority:  priority,
		CreatedAt: time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(f.nextID) * time.Minute),
	}
	f.tasks = append([]service.Task{task}, f.tasks...)
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, token, id, title string, priority service.Priority) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateTask")
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Title = title
			f.tasks[i].Priority = priority
			return f.tasks[i], nil
		}
	}
	return service.Task{}, &service.StatusError{Code: 404}
}

// ToggleTask implements service.Service.
func (f *FakeService) ToggleTask(ctx context.Context, token, id string) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ToggleTask")
	if f.ToggleTaskErr != nil {
		return service.Task{}, f.ToggleTaskErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Completed = !f.tasks[i].Completed
			return f.tasks[i], nil
		}
	}
	return service.Task{}, &service.StatusError{Code: 404}
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, token, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteTask")
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return &service.StatusError{Code: 404}
}

// Weather implements service.Service.
func (f *FakeService) Weather(ctx context.Context, q service.WeatherQuery) (service.Weather, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("Weather")
	if f.WeatherErr != nil {
		return service.Weather{}, f.WeatherErr
	}
	return f.WeatherResult, nil
}

// News implements service.Service.
func (f *FakeService) News(ctx context.Context, category string, page, size int) (service.NewsPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("News")
	if f.NewsErr != nil {
		return service.NewsPage{}, f.NewsErr
	}
	var matched []service.NewsItem
	for _, item := range f.NewsItems {
		if category == "" || strings.EqualFold(item.Category, category) {
			matched = append(matched, item)
		}
	}
	start := page * size
	if start >= len(matched) {
		return service.NewsPage{Last: true}, nil
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return service.NewsPage{
		Items: matched[start:end],
		Last:  end == len(matched),
	}, nil
}
