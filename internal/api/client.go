// Package api implements the service.Service interface against the
// workable backend HTTP API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"workable/internal/config"
	"workable/internal/service"
)

const (
	// requestsPerSecond caps the call rate against the backend. A CLI
	// issues bursts (list-all fans out), never sustained load.
	requestsPerSecond = 10
	requestBurst      = 10
)

// Client implements service.Service using the workable backend API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	limiter        *rate.Limiter
	logger         *slog.Logger
	timeout        time.Duration
	weatherTimeout time.Duration
}

// New creates a backend client from config.
func New(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:        cfg.APIURL,
		httpClient:     &http.Client{},
		limiter:        rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		logger:         logger,
		timeout:        cfg.Timeout,
		weatherTimeout: cfg.WeatherTimeout,
	}
}

// Login implements service.Service.
func (c *Client) Login(ctx context.Context, email, password string) (service.Session, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, "", authRequest{Email: email, Password: password}, &resp, c.timeout)
	if err != nil {
		return service.Session{}, err
	}
	return resp.toSession(), nil
}

// Register implements service.Service.
func (c *Client) Register(ctx context.Context, email, password string) (service.Session, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, "", authRequest{Email: email, Password: password}, &resp, c.timeout)
	if err != nil {
		return service.Session{}, err
	}
	return resp.toSession(), nil
}

// CheckEmail implements service.Service.
func (c *Client) CheckEmail(ctx context.Context, email string) (bool, error) {
	q := url.Values{"email": {email}}
	var resp availabilityResponse
	err := c.do(ctx, http.MethodGet, "/api/auth/check-email", q, "", nil, &resp, c.timeout)
	if err != nil {
		return false, err
	}
	return resp.Available, nil
}

// UpdateEmail implements service.Service.
func (c *Client) UpdateEmail(ctx context.Context, token, newEmail string) (service.Session, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPut, "/api/auth/update-email", nil, token, updateEmailRequest{NewEmail: newEmail}, &resp, c.timeout)
	if err != nil {
		return service.Session{}, err
	}
	return resp.toSession(), nil
}

// ListTasks implements service.Service.
func (c *Client) ListTasks(ctx context.Context, token string) ([]service.Task, error) {
	var payload []todoPayload
	err := c.do(ctx, http.MethodGet, "/api/todos", nil, token, nil, &payload, c.timeout)
	if err != nil {
		return nil, err
	}
	tasks := make([]service.Task, 0, len(payload))
	for _, p := range payload {
		tasks = append(tasks, p.toTask())
	}
	return tasks, nil
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, token, title string, priority service.Priority) (service.Task, error) {
	var payload todoPayload
	body := todoRequest{Title: title, Priority: string(priority)}
	err := c.do(ctx, http.MethodPost, "/api/todos", nil, token, body, &payload, c.timeout)
	if err != nil {
		return service.Task{}, err
	}
	return payload.toTask(), nil
}

// UpdateTask implements service.Service.
func (c *Client) UpdateTask(ctx context.Context, token, id, title string, priority service.Priority) (service.Task, error) {
	var payload todoPayload
	body := todoRequest{Title: title, Priority: string(priority)}
	err := c.do(ctx, http.MethodPut, "/api/todos/"+url.PathEscape(id), nil, token, body, &payload, c.timeout)
	if err != nil {
		return service.Task{}, err
	}
	return payload.toTask(), nil
}

// ToggleTask implements service.Service.
func (c *Client) ToggleTask(ctx context.Context, token, id string) (service.Task, error) {
	var payload todoPayload
	err := c.do(ctx, http.MethodPatch, "/api/todos/"+url.PathEscape(id)+"/toggle", nil, token, nil, &payload, c.timeout)
	if err != nil {
		return service.Task{}, err
	}
	return payload.toTask(), nil
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/todos/"+url.PathEscape(id), nil, token, nil, nil, c.timeout)
}

// Weather implements service.Service.
func (c *Client) Weather(ctx context.Context, query service.WeatherQuery) (service.Weather, error) {
	q := url.Values{}
	if query.ByCoords {
		q.Set("lat", strconv.FormatFloat(query.Lat, 'f', -1, 64))
		q.Set("lng", strconv.FormatFloat(query.Lng, 'f', -1, 64))
	} else {
		q.Set("city", query.City)
	}
	var payload weatherPayload
	err := c.do(ctx, http.MethodGet, "/api/weather", q, "", nil, &payload, c.weatherTimeout)
	if err != nil {
		return service.Weather{}, err
	}
	return payload.toWeather(), nil
}

// News implements service.Service.
func (c *Client) News(ctx context.Context, category string, page, size int) (service.NewsPage, error) {
	path := "/api/news"
	if category != "" {
		path += "/" + url.PathEscape(category)
	}
	q := url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
	}
	var payload newsPagePayload
	err := c.do(ctx, http.MethodGet, path, q, "", nil, &payload, c.timeout)
	if err != nil {
		return service.NewsPage{}, err
	}
	result := service.NewsPage{Last: payload.Last}
	for _, a := range payload.Content {
		result.Items = append(result.Items, a.toNewsItem())
	}
	return result, nil
}

// do issues one backend request. A non-2xx response becomes a
// *service.StatusError; transport and decode failures are wrapped.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return wrapTransport(err)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("backend request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.String("error", err.Error()),
		)
		return wrapTransport(err)
	}
	defer resp.Body.Close()

	c.logger.Debug("backend request",
		slog.String("method", method),
		slog.String("path", path),
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &service.StatusError{Code: resp.StatusCode}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func wrapTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.New("request timed out")
	}
	return err
}
