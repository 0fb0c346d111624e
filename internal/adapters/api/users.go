package api

import (
	"context"
	"net/http"

	"github.com/escolarhq/eventos-admin/internal/domain/model"
)

// API endpoints for user collections.
const (
	endpointTeachers   = "/lista-maestros/"
	endpointAdmins     = "/lista-admins/"
	endpointUserTotals = "/total-usuarios/"
)

// User is the nested account sub-record some person records carry.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Person is a teacher or administrator record as the API returns it. The
// nested user sub-record is optional.
type Person struct {
	ID   int   `json:"id"`
	User *User `json:"user"`
}

// ListTeachers fetches the teacher records.
func (c *Client) ListTeachers(ctx context.Context) ([]Person, error) {
	var people []Person
	if err := c.do(ctx, http.MethodGet, endpointTeachers, nil, nil, &people); err != nil {
		return nil, err
	}
	return people, nil
}

// ListAdmins fetches the administrator records.
func (c *Client) ListAdmins(ctx context.Context) ([]Person, error) {
	var people []Person
	if err := c.do(ctx, http.MethodGet, endpointAdmins, nil, nil, &people); err != nil {
		return nil, err
	}
	return people, nil
}

// UserTotals fetches the aggregate role counts used by the report charts.
func (c *Client) UserTotals(ctx context.Context) (model.UserTotals, error) {
	var totals model.UserTotals
	if err := c.do(ctx, http.MethodGet, endpointUserTotals, nil, nil, &totals); err != nil {
		return model.UserTotals{}, err
	}
	return totals, nil
}
