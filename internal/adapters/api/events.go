package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/escolarhq/eventos-admin/internal/domain/model"
)

// API endpoints for academic events.
const (
	endpointEvents    = "/eventos-academicos/"
	endpointEventList = "/lista-eventos/"
)

// CreateEvent registers a new event.
func (c *Client) CreateEvent(ctx context.Context, e model.Event) error {
	return c.do(ctx, http.MethodPost, endpointEvents, nil, e, nil)
}

// EventByID fetches one event by its identifier.
func (c *Client) EventByID(ctx context.Context, id int) (model.Event, error) {
	var e model.Event
	query := url.Values{"id": []string{strconv.Itoa(id)}}
	if err := c.do(ctx, http.MethodGet, endpointEvents, query, nil, &e); err != nil {
		return model.Event{}, err
	}
	return e, nil
}

// UpdateEvent replaces an existing event with the full record given.
func (c *Client) UpdateEvent(ctx context.Context, e model.Event) error {
	return c.do(ctx, http.MethodPut, endpointEvents, nil, e, nil)
}

// DeleteEvent removes an event by its identifier.
func (c *Client) DeleteEvent(ctx context.Context, id int) error {
	query := url.Values{"id": []string{strconv.Itoa(id)}}
	return c.do(ctx, http.MethodDelete, endpointEvents, query, nil, nil)
}

// ListEvents fetches the full event list. Visibility filtering happens in
// the caller; the API returns everything.
func (c *Client) ListEvents(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := c.do(ctx, http.MethodGet, endpointEventList, nil, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}
