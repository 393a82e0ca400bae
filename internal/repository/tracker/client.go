package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/agiledash/calendar-backend-go/internal/domain/resource"
)

// ErrUnavailable wraps any transport or non-2xx failure from the tracking
// backend so handlers can map it to a gateway error.
var ErrUnavailable = errors.New("tracker unavailable")

const defaultTimeout = 10 * time.Second

// Client is the REST client for the tracking backend that owns developers
// and event persistence. It implements resource.TrackerRepository.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Resources fetches every developer with their events.
func (c *Client) Resources(ctx context.Context) ([]resource.Resource, error) {
	var dtos []resource.ResourceDTO
	if err := c.do(ctx, http.MethodGet, "/developpers", nil, &dtos); err != nil {
		return nil, err
	}

	resources := make([]resource.Resource, 0, len(dtos))
	for _, dto := range dtos {
		res, err := dto.ToEntity()
		if err != nil {
			return nil, fmt.Errorf("resource %d: %w", dto.IDResource, err)
		}
		resources = append(resources, res)
	}
	return resources, nil
}

// SaveEvent persists a new event and returns it with the id the tracker
// assigned.
func (c *Client) SaveEvent(ctx context.Context, payload resource.SaveEventPayload) (resource.Event, error) {
	var dto resource.EventDTO
	if err := c.do(ctx, http.MethodPost, "/events/create", payload, &dto); err != nil {
		return resource.Event{}, err
	}
	saved, err := dto.ToSavedEvent(payload.Developper.IDResource)
	if err != nil {
		return resource.Event{}, fmt.Errorf("tracker returned invalid event: %w", err)
	}
	return saved, nil
}

// DeleteEvent removes an event by id.
func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: %s %s: status %d", ErrUnavailable, method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
