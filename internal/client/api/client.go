package api

import (
	"context"

	"github.com/dpetrovs/useradm/internal/client/models"
)

// Client is the transport-agnostic contract for talking to the
// user-management backend. The access token is passed per call so the
// caller decides, on every request, which session credential applies.
type Client interface {
	Close() error
	Login(ctx context.Context, email, password string) (string, error)
	ListUsers(ctx context.Context, token string) ([]models.User, error)
	CreateUser(ctx context.Context, token string, fields models.UserFields) (*models.User, error)
	UpdateUser(ctx context.Context, token string, id string, fields models.UserFields) (*models.User, error)
	DeleteUser(ctx context.Context, token string, id string) error
}
