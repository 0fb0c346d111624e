// Package app provides the controllers that sit between the CLI surface and
// the domain packages: event form, event listing, and reporting.
package app

import "context"

// Session identifies the signed-in user for the duration of a run. It is
// passed explicitly into each controller; there is no ambient session state.
type Session struct {
	Role     string
	UserName string
	UserID   int
}

// ConfirmFunc asks the user to confirm a destructive or edit operation.
// Returning false leaves the operation undone.
type ConfirmFunc func(ctx context.Context, prompt string) bool

// declineAll is the default confirmation hook. Controllers refuse updates
// and deletes until a real hook is wired in.
func declineAll(context.Context, string) bool { return false }
