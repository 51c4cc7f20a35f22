package service

import (
	"context"
	"testing"
	"time"

	"github.com/crechehub/agendaservice/internal/domain"
	"github.com/crechehub/agendaservice/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChildService_Create_Success(t *testing.T) {
	gw := mocks.NewMockChildWriter(t)
	store := mocks.NewMockEntityStore(t)
	svc := NewChildService(gw, store)

	input := domain.CreateChildInput{
		Name:         "Ana",
		BirthDate:    domain.NewDate(2020, time.June, 15),
		GuardianName: "Marta",
	}
	created := &domain.Child{ID: 1, Name: "Ana", Active: true}

	gw.EXPECT().CreateChild(mock.Anything, input).Return(created, nil)
	store.EXPECT().Invalidate(domain.KindChild).Return()

	child, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 1, child.ID)
}

func TestChildService_Create_Validation(t *testing.T) {
	gw := mocks.NewMockChildWriter(t)
	store := mocks.NewMockEntityStore(t)
	svc := NewChildService(gw, store)

	birth := domain.NewDate(2020, time.June, 15)
	future := domain.NewDate(time.Now().UTC().Year()+1, time.January, 1)

	tests := []struct {
		name  string
		input domain.CreateChildInput
	}{
		{"missing name", domain.CreateChildInput{BirthDate: birth, GuardianName: "Marta"}},
		{"missing guardian", domain.CreateChildInput{Name: "Ana", BirthDate: birth}},
		{"missing birth date", domain.CreateChildInput{Name: "Ana", GuardianName: "Marta"}},
		{"future birth date", domain.CreateChildInput{Name: "Ana", BirthDate: future, GuardianName: "Marta"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	gw.AssertNotCalled(t, "CreateChild")
}

func TestChildService_Update_Merges(t *testing.T) {
	gw := mocks.NewMockChildWriter(t)
	store := mocks.NewMockEntityStore(t)
	svc := NewChildService(gw, store)

	existing := &domain.Child{
		ID:           1,
		Name:         "Ana",
		BirthDate:    domain.NewDate(2020, time.June, 15),
		GuardianName: "Marta",
		Active:       true,
	}
	store.EXPECT().Child(mock.Anything, 1).Return(existing, nil)

	want := *existing
	want.GuardianName = "Paulo"
	gw.EXPECT().UpdateChild(mock.Anything, want).Return(&want, nil)
	store.EXPECT().Invalidate(domain.KindChild).Return()

	child, err := svc.Update(context.Background(), 1, domain.UpdateChildInput{GuardianName: "Paulo"})

	require.NoError(t, err)
	assert.Equal(t, "Paulo", child.GuardianName)
	assert.Equal(t, "Ana", child.Name)
}

func TestChildService_Update_NotFound(t *testing.T) {
	gw := mocks.NewMockChildWriter(t)
	store := mocks.NewMockEntityStore(t)
	svc := NewChildService(gw, store)

	store.EXPECT().Child(mock.Anything, 99).Return(nil, domain.ErrChildNotFound)

	_, err := svc.Update(context.Background(), 99, domain.UpdateChildInput{Name: "Ana"})

	assert.ErrorIs(t, err, domain.ErrChildNotFound)
}

func TestChildService_Update_FutureBirthDate(t *testing.T) {
	gw := mocks.NewMockChildWriter(t)
	store := mocks.NewMockEntityStore(t)
	svc := NewChildService(gw, store)

	existing := &domain.Child{ID: 1, Name: "Ana", BirthDate: domain.NewDate(2020, time.June, 15), Active: true}
	store.EXPECT().Child(mock.Anything, 1).Return(existing, nil)

	future := domain.NewDate(time.Now().UTC().Year()+1, time.January, 1)
	_, err := svc.Update(context.Background(), 1, domain.UpdateChildInput{BirthDate: future})

	assert.ErrorIs(t, err, domain.ErrValidation)
	gw.AssertNotCalled(t, "UpdateChild")
}

func TestChildService_Deactivate(t *testing.T) {
	gw := mocks.NewMockChildWriter(t)
	store := mocks.NewMockEntityStore(t)
	svc := NewChildService(gw, store)

	existing := &domain.Child{ID: 1, Name: "Ana", Active: true}
	store.EXPECT().Child(mock.Anything, 1).Return(existing, nil)

	want := *existing
	want.Active = false
	gw.EXPECT().UpdateChild(mock.Anything, want).Return(&want, nil)
	store.EXPECT().Invalidate(domain.KindChild).Return()

	err := svc.Deactivate(context.Background(), 1)

	require.NoError(t, err)
}

func TestChildService_Deactivate_AlreadyInactive(t *testing.T) {
	gw := mocks.NewMockChildWriter(t)
	store := mocks.NewMockEntityStore(t)
	svc := NewChildService(gw, store)

	store.EXPECT().Child(mock.Anything, 1).Return(&domain.Child{ID: 1, Active: false}, nil)

	err := svc.Deactivate(context.Background(), 1)

	require.NoError(t, err)
	gw.AssertNotCalled(t, "UpdateChild")
}
