package app

import (
	"context"

	"github.com/escolarhq/eventos-admin/internal/adapters/api"
	"github.com/escolarhq/eventos-admin/internal/domain/model"
	"github.com/escolarhq/eventos-admin/internal/domain/visibility"
	"github.com/escolarhq/eventos-admin/pkg/logger"
	"github.com/escolarhq/eventos-admin/pkg/metrics"
)

// ListingController fetches the event list, applies role visibility, and
// exposes search plus the administrator-only delete action.
type ListingController struct {
	client  *api.Client
	session Session
	confirm ConfirmFunc
	log     logger.Logger

	visible []model.Event
}

// ListingOption applies a configuration option to the ListingController.
type ListingOption func(*ListingController)

// WithListingConfirm sets the confirmation hook required before deletes.
func WithListingConfirm(fn ConfirmFunc) ListingOption {
	return func(c *ListingController) {
		if fn != nil {
			c.confirm = fn
		}
	}
}

// WithListingLogger sets a custom logger.
func WithListingLogger(l logger.Logger) ListingOption {
	return func(c *ListingController) {
		if l != nil {
			c.log = l
		}
	}
}

// NewListingController creates a listing controller for the given session.
func NewListingController(client *api.Client, session Session, opts ...ListingOption) *ListingController {
	c := &ListingController{
		client:  client,
		session: session,
		confirm: declineAll,
		log:     logger.Named("listing"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Refresh fetches the full list and keeps the subset visible to the
// session role, in the order the API returned it.
func (c *ListingController) Refresh(ctx context.Context) ([]model.Event, error) {
	all, err := c.client.ListEvents(ctx)
	if err != nil {
		c.log.Error(ctx, "list events failed", logger.Error(err))
		return nil, err
	}
	metrics.UpdateEventsListed(len(all))

	c.visible = visibility.VisibleTo(c.session.Role, all)
	metrics.UpdateEventsVisible(len(c.visible))
	c.log.Debug(ctx, "event list refreshed",
		logger.Int("total", len(all)),
		logger.Int("visible", len(c.visible)),
		logger.String("role", c.session.Role))
	return c.visible, nil
}

// Events returns the visible list from the last Refresh.
func (c *ListingController) Events() []model.Event {
	return c.visible
}

// Search narrows the visible list with a case-insensitive substring query
// over event name and event type.
func (c *ListingController) Search(query string) []model.Event {
	matched := []model.Event{}
	for _, e := range c.visible {
		if visibility.MatchesSearch(e, query) {
			matched = append(matched, e)
		}
	}
	return matched
}

// CanEdit reports whether the session may edit or delete events.
func (c *ListingController) CanEdit() bool {
	return c.session.Role == model.RoleAdmin
}

// Delete removes an event. Administrators only, and only after the
// confirmation hook agrees; a declined confirmation returns false with no
// error and leaves the list untouched. On success the list is refreshed.
func (c *ListingController) Delete(ctx context.Context, id int) (bool, error) {
	if !c.CanEdit() {
		return false, ErrNotAuthorized
	}

	if !c.confirm(ctx, "¿Eliminar evento?") {
		c.log.Info(ctx, "delete cancelled by user", logger.Int("id", id))
		return false, nil
	}

	if err := c.client.DeleteEvent(ctx, id); err != nil {
		c.log.Error(ctx, "delete event failed", logger.Int("id", id), logger.Error(err))
		return false, err
	}
	c.log.Info(ctx, "event deleted", logger.Int("id", id))

	if _, err := c.Refresh(ctx); err != nil {
		return true, err
	}
	return true, nil
}
