package service

import (
	"context"
	"fmt"

	"github.com/crechehub/agendaservice/internal/domain"
	"github.com/crechehub/agendaservice/internal/service/ports"
)

type ClassService struct {
	gw    ports.ClassWriter
	store ports.EntityStore
}

func NewClassService(gw ports.ClassWriter, store ports.EntityStore) *ClassService {
	return &ClassService{gw: gw, store: store}
}

func (s *ClassService) List(ctx context.Context) ([]domain.ClassGroup, error) {
	return s.store.ClassGroups(ctx)
}

func validateClassShape(name string, capacity, minAge, maxAge int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if minAge < 0 {
		return fmt.Errorf("%w: minimum age must not be negative", domain.ErrValidation)
	}
	if minAge > maxAge {
		return fmt.Errorf("%w: minimum age exceeds maximum age", domain.ErrValidation)
	}
	return nil
}

func (s *ClassService) Create(ctx context.Context, input domain.CreateClassInput) (*domain.ClassGroup, error) {
	if err := validateClassShape(input.Name, input.Capacity, input.MinAge, input.MaxAge); err != nil {
		return nil, err
	}

	class, err := s.gw.CreateClassGroup(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}

	s.store.Invalidate(domain.KindClass)
	return class, nil
}

func (s *ClassService) Update(ctx context.Context, id int, input domain.UpdateClassInput) (*domain.ClassGroup, error) {
	existing, err := s.store.ClassGroup(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if input.Name != "" {
		merged.Name = input.Name
	}
	if input.Capacity != 0 {
		merged.Capacity = input.Capacity
	}
	if input.MinAge != nil {
		merged.MinAge = *input.MinAge
	}
	if input.MaxAge != nil {
		merged.MaxAge = *input.MaxAge
	}
	if input.Active != nil {
		merged.Active = *input.Active
	}
	if input.ChildIDs != nil {
		merged.ChildIDs = input.ChildIDs
	}
	if input.BookingIDs != nil {
		merged.BookingIDs = input.BookingIDs
	}
	if err := validateClassShape(merged.Name, merged.Capacity, merged.MinAge, merged.MaxAge); err != nil {
		return nil, err
	}

	class, err := s.gw.UpdateClassGroup(ctx, merged)
	if err != nil {
		return nil, fmt.Errorf("update class: %w", err)
	}

	s.store.Invalidate(domain.KindClass)
	return class, nil
}

func (s *ClassService) Deactivate(ctx context.Context, id int) error {
	existing, err := s.store.ClassGroup(ctx, id)
	if err != nil {
		return err
	}
	if !existing.Active {
		return nil
	}

	desired := *existing
	desired.Active = false
	if _, err := s.gw.UpdateClassGroup(ctx, desired); err != nil {
		return fmt.Errorf("deactivate class: %w", err)
	}

	s.store.Invalidate(domain.KindClass)
	return nil
}
