// Package models defines the wire and display representations of the
// user records managed by the useradm client.
package models

import "strings"

// User is the raw record shape returned by the user-management API.
type User struct {
	ID        string   `json:"_id"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Roles     []string `json:"roles"`
	Version   int      `json:"__v,omitempty"`
}

// UserFields carries the editable fields sent on create/update requests.
// The server assigns identifiers; the client never invents them.
type UserFields struct {
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Password  string   `json:"password,omitempty"`
	Roles     []string `json:"roles,omitempty"`
}

// UserView is the normalized display form of a raw user: first and last
// name merged into a single name, role set flattened to the primary role.
type UserView struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// NewUserView maps a raw user record into its display form.
func NewUserView(u User) UserView {
	role := ""
	if len(u.Roles) > 0 {
		role = u.Roles[0]
	}
	return UserView{
		ID:    u.ID,
		Name:  strings.TrimSpace(u.FirstName + " " + u.LastName),
		Email: u.Email,
		Role:  role,
	}
}
