package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/crechehub/agendaservice/internal/domain"
	"github.com/crechehub/agendaservice/internal/service/ports"
)

type UserService struct {
	gw    ports.UserWriter
	store ports.EntityStore
}

func NewUserService(gw ports.UserWriter, store ports.EntityStore) *UserService {
	return &UserService{gw: gw, store: store}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.store.Users(ctx)
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !strings.Contains(input.Email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if input.Role == "" {
		return nil, fmt.Errorf("%w: role is required", domain.ErrValidation)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	user, err := s.gw.CreateUser(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.store.Invalidate(domain.KindUser)
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id int, input domain.UpdateUserInput) (*domain.User, error) {
	existing, err := s.store.User(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if input.Name != "" {
		merged.Name = input.Name
	}
	if input.Email != "" {
		merged.Email = input.Email
	}
	if input.Role != "" {
		merged.Role = input.Role
	}
	if input.Active != nil {
		merged.Active = *input.Active
	}
	if !strings.Contains(merged.Email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}

	user, err := s.gw.UpdateUser(ctx, merged)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.store.Invalidate(domain.KindUser)
	return user, nil
}

func (s *UserService) Deactivate(ctx context.Context, id int) error {
	existing, err := s.store.User(ctx, id)
	if err != nil {
		return err
	}
	if !existing.Active {
		return nil
	}

	desired := *existing
	desired.Active = false
	if _, err := s.gw.UpdateUser(ctx, desired); err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}

	s.store.Invalidate(domain.KindUser)
	return nil
}
