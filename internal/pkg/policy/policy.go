// Package policy is the single authorization choke point. Every mutating store
// operation calls Decide with the acting identity before touching persisted
// state; there is no other gate the mutation paths rely on.
package policy

import "errors"

// Action enumerates every gated operation.
type Action string

const (
	ActionCreatePost     Action = "create_post"
	ActionEditPost       Action = "edit_post"
	ActionDeletePost     Action = "delete_post"
	ActionCreateCategory Action = "create_category"
	ActionEditCategory   Action = "edit_category"
	ActionDeleteCategory Action = "delete_category"
	ActionCreateComment  Action = "create_comment"
	ActionDeleteComment  Action = "delete_comment"
	ActionManageUsers    Action = "manage_users"
)

var (
	// ErrNotAuthenticated denies mutations attempted without a login.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrInsufficientRole denies mutations reserved for administrators.
	ErrInsufficientRole = errors.New("insufficient role")
)

// Actor is the identity attempting an operation, as resolved by the session
// layer. The zero value is the anonymous actor.
type Actor struct {
	UserID        uint
	Authenticated bool
	Admin         bool
}

// Anonymous returns the actor used for requests without a session.
func Anonymous() Actor {
	return Actor{}
}

// ForUser builds the actor for an authenticated user.
func ForUser(userID uint, admin bool) Actor {
	return Actor{UserID: userID, Authenticated: true, Admin: admin}
}

// Decide returns nil when the actor may perform the action, or a typed denial.
// Read paths are never gated; only the actions enumerated above pass through
// here. Administrators are allowed everything, authenticated users may only
// create comments, anonymous actors may mutate nothing.
func Decide(actor Actor, action Action) error {
	if !actor.Authenticated {
		return ErrNotAuthenticated
	}
	if actor.Admin {
		return nil
	}
	if action == ActionCreateComment {
		return nil
	}
	return ErrInsufficientRole
}
