package services

import (
	"context"
	"fmt"

	"github.com/dpetrovs/useradm/internal/client/api"
	"github.com/dpetrovs/useradm/internal/client/models"
	"github.com/dpetrovs/useradm/internal/logging"
)

// TokenSource yields the bearer token for outbound requests. SessionStore
// satisfies it; the user service reads it on every call.
type TokenSource interface {
	AccessToken() string
}

// UserService provides authorized CRUD access to the remote user
// collection, returning records normalized for display.
type UserService interface {
	List(ctx context.Context) ([]models.UserView, error)
	Create(ctx context.Context, fields models.UserFields) (models.UserView, error)
	Update(ctx context.Context, id string, fields models.UserFields) (models.UserView, error)
	Remove(ctx context.Context, id string) error
}

type userService struct {
	client  api.Client
	session TokenSource
	log     logging.Logger
}

func NewUserService(client api.Client, session TokenSource, log logging.Logger) UserService {
	return &userService{client: client, session: session, log: log}
}

// token fails fast when no session is present, instead of firing a
// request that the server would reject anyway.
func (s *userService) token() (string, error) {
	t := s.session.AccessToken()
	if t == "" {
		return "", fmt.Errorf("%w: not logged in", api.ErrUnauthorized)
	}
	return t, nil
}

func (s *userService) List(ctx context.Context) ([]models.UserView, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}

	rows, err := s.client.ListUsers(ctx, token)
	if err != nil {
		s.log.Error(ctx, "listing users failed", "error", err)
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	result := make([]models.UserView, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.NewUserView(row))
	}
	return result, nil
}

func (s *userService) Create(ctx context.Context, fields models.UserFields) (models.UserView, error) {
	token, err := s.token()
	if err != nil {
		return models.UserView{}, err
	}

	created, err := s.client.CreateUser(ctx, token, fields)
	if err != nil {
		s.log.Error(ctx, "creating user failed", "error", err)
		return models.UserView{}, fmt.Errorf("error creating user: %w", err)
	}
	return models.NewUserView(*created), nil
}

func (s *userService) Update(ctx context.Context, id string, fields models.UserFields) (models.UserView, error) {
	token, err := s.token()
	if err != nil {
		return models.UserView{}, err
	}

	updated, err := s.client.UpdateUser(ctx, token, id, fields)
	if err != nil {
		s.log.Error(ctx, "updating user failed", "id", id, "error", err)
		return models.UserView{}, fmt.Errorf("error updating user: %w", err)
	}
	return models.NewUserView(*updated), nil
}

func (s *userService) Remove(ctx context.Context, id string) error {
	token, err := s.token()
	if err != nil {
		return err
	}

	if err := s.client.DeleteUser(ctx, token, id); err != nil {
		s.log.Error(ctx, "deleting user failed", "id", id, "error", err)
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
