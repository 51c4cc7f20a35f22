package service

import (
	"context"
	"fmt"
	"time"

	"github.com/crechehub/agendaservice/internal/domain"
	"github.com/crechehub/agendaservice/internal/service/ports"
)

type ChildService struct {
	gw    ports.ChildWriter
	store ports.EntityStore
}

func NewChildService(gw ports.ChildWriter, store ports.EntityStore) *ChildService {
	return &ChildService{gw: gw, store: store}
}

func (s *ChildService) List(ctx context.Context) ([]domain.Child, error) {
	return s.store.Children(ctx)
}

func (s *ChildService) Create(ctx context.Context, input domain.CreateChildInput) (*domain.Child, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.GuardianName == "" {
		return nil, fmt.Errorf("%w: guardian name is required", domain.ErrValidation)
	}
	if input.BirthDate.IsZero() {
		return nil, fmt.Errorf("%w: birth date is required", domain.ErrValidation)
	}
	if input.BirthDate.After(today()) {
		return nil, fmt.Errorf("%w: birth date is in the future", domain.ErrValidation)
	}

	child, err := s.gw.CreateChild(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create child: %w", err)
	}

	s.store.Invalidate(domain.KindChild)
	return child, nil
}

func (s *ChildService) Update(ctx context.Context, id int, input domain.UpdateChildInput) (*domain.Child, error) {
	existing, err := s.store.Child(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if input.Name != "" {
		merged.Name = input.Name
	}
	if input.GuardianName != "" {
		merged.GuardianName = input.GuardianName
	}
	if !input.BirthDate.IsZero() {
		merged.BirthDate = input.BirthDate
	}
	if input.Active != nil {
		merged.Active = *input.Active
	}
	if merged.BirthDate.After(today()) {
		return nil, fmt.Errorf("%w: birth date is in the future", domain.ErrValidation)
	}

	child, err := s.gw.UpdateChild(ctx, merged)
	if err != nil {
		return nil, fmt.Errorf("update child: %w", err)
	}

	s.store.Invalidate(domain.KindChild)
	return child, nil
}

// Deactivate retires a child record. There is no hard delete.
func (s *ChildService) Deactivate(ctx context.Context, id int) error {
	existing, err := s.store.Child(ctx, id)
	if err != nil {
		return err
	}
	if !existing.Active {
		return nil
	}

	desired := *existing
	desired.Active = false
	if _, err := s.gw.UpdateChild(ctx, desired); err != nil {
		return fmt.Errorf("deactivate child: %w", err)
	}

	s.store.Invalidate(domain.KindChild)
	return nil
}

func today() domain.Date {
	now := time.Now().UTC()
	return domain.NewDate(now.Date())
}
