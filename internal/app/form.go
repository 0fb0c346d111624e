package app

import (
	"context"

	"github.com/escolarhq/eventos-admin/internal/adapters/api"
	"github.com/escolarhq/eventos-admin/internal/domain/horario"
	"github.com/escolarhq/eventos-admin/internal/domain/model"
	"github.com/escolarhq/eventos-admin/internal/domain/validation"
	"github.com/escolarhq/eventos-admin/pkg/logger"
	"github.com/escolarhq/eventos-admin/pkg/metrics"
)

// FormController drives event creation and editing: seeding the empty
// schema, loading an event for edit, validating input and pushing the
// result to the API with times normalized to 24-hour form.
type FormController struct {
	client  *api.Client
	confirm ConfirmFunc
	log     logger.Logger
}

// FormOption applies a configuration option to the FormController.
type FormOption func(*FormController)

// WithFormConfirm sets the confirmation hook required before updates.
func WithFormConfirm(fn ConfirmFunc) FormOption {
	return func(c *FormController) {
		if fn != nil {
			c.confirm = fn
		}
	}
}

// WithFormLogger sets a custom logger.
func WithFormLogger(l logger.Logger) FormOption {
	return func(c *FormController) {
		if l != nil {
			c.log = l
		}
	}
}

// NewFormController creates a form controller over the given API client.
func NewFormController(client *api.Client, opts ...FormOption) *FormController {
	c := &FormController{
		client:  client,
		confirm: declineAll,
		log:     logger.Named("form"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewEvent seeds the empty schema for a new registration.
func (c *FormController) NewEvent() model.Event {
	return model.NewEvent()
}

// Load fetches an event by id and converts its times to the 12-hour form
// the edit inputs display.
func (c *FormController) Load(ctx context.Context, id int) (model.Event, error) {
	e, err := c.client.EventByID(ctx, id)
	if err != nil {
		c.log.Error(ctx, "load event failed", logger.Int("id", id), logger.Error(err))
		return model.Event{}, err
	}
	e.StartTime = horario.To12Hour(e.StartTime)
	e.EndTime = horario.To12Hour(e.EndTime)
	return e, nil
}

// Responsables assembles the responsible-party candidates by merging the
// teacher and administrator lists. The admin fetch runs after the teacher
// fetch; if it fails the teacher results are kept as-is.
func (c *FormController) Responsables(ctx context.Context) ([]model.Responsable, error) {
	teachers, err := c.client.ListTeachers(ctx)
	if err != nil {
		c.log.Error(ctx, "load teachers failed", logger.Error(err))
		return nil, err
	}

	merged := mergeResponsables(nil, teachers, "Maestro")

	admins, err := c.client.ListAdmins(ctx)
	if err != nil {
		c.log.Warn(ctx, "load admins failed; keeping teacher list", logger.Error(err))
		return merged, nil
	}
	return mergeResponsables(merged, admins, "Administrador"), nil
}

// mergeResponsables appends people to the merged list, reading the display
// name from the nested user sub-record when one exists.
func mergeResponsables(merged []model.Responsable, people []api.Person, tipo string) []model.Responsable {
	for _, p := range people {
		r := model.Responsable{ID: p.ID, Name: "Nombre no disponible", Tipo: tipo}
		if p.User != nil {
			r.ID = p.User.ID
			r.Name = p.User.FirstName + " " + p.User.LastName
		}
		merged = append(merged, r)
	}
	return merged
}

// Create validates the event and registers it. A non-empty error map means
// the submission was blocked; no API call is made in that case.
func (c *FormController) Create(ctx context.Context, e model.Event) (validation.Errors, error) {
	if errs := c.check(e, false); len(errs) > 0 {
		return errs, nil
	}

	out := normalizeTimes(e)
	if err := c.client.CreateEvent(ctx, out); err != nil {
		c.log.Error(ctx, "create event failed", logger.Error(err))
		return nil, err
	}
	c.log.Info(ctx, "event created", logger.String("nombre", out.Name))
	return nil, nil
}

// Update validates the event, asks for confirmation, and issues the update.
// The returned flag reports whether the update actually went out; a
// declined confirmation is a no-op, not an error.
func (c *FormController) Update(ctx context.Context, e model.Event) (validation.Errors, bool, error) {
	if errs := c.check(e, true); len(errs) > 0 {
		return errs, false, nil
	}

	if !c.confirm(ctx, "¿Editar evento?") {
		c.log.Info(ctx, "update cancelled by user", logger.Int("id", e.ID))
		return nil, false, nil
	}

	out := normalizeTimes(e)
	if err := c.client.UpdateEvent(ctx, out); err != nil {
		c.log.Error(ctx, "update event failed", logger.Int("id", out.ID), logger.Error(err))
		return nil, false, err
	}
	c.log.Info(ctx, "event updated", logger.Int("id", out.ID))
	return nil, true, nil
}

// check runs the validator and records metrics for blocked submissions.
func (c *FormController) check(e model.Event, editing bool) validation.Errors {
	errs := validation.Validate(e, editing)
	if len(errs) > 0 {
		metrics.RecordSubmissionBlocked()
		for field := range errs {
			metrics.RecordValidationFailure(field)
		}
	}
	return errs
}

// normalizeTimes returns a copy with both times in 24-hour wire form.
func normalizeTimes(e model.Event) model.Event {
	e.StartTime = horario.To24Hour(e.StartTime)
	e.EndTime = horario.To24Hour(e.EndTime)
	return e
}
