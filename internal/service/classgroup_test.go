package service

import (
	"context"
	"testing"

	"github.com/crechehub/agendaservice/internal/domain"
	"github.com/crechehub/agendaservice/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClassService_Create_Success(t *testing.T) {
	gw := mocks.NewMockClassWriter(t)
	store := mocks.NewMockEntityStore(t)
	svc := NewClassService(gw, store)

	input := domain.CreateClassInput{Name: "Berçário", Capacity: 8, MinAge: 0, MaxAge: 1}
	created := &domain.ClassGroup{ID: 10, Name: "Berçário", Capacity: 8, Active: true}

	gw.EXPECT().CreateClassGroup(mock.Anything, input).Return(created, nil)
	store.EXPECT().Invalidate(domain.KindClass).Return()

	class, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 10, class.ID)
}

func TestClassService_Create_Validation(t *testing.T) {
	gw := mocks.NewMockClassWriter(t)
	store := mocks.NewMockEntityStore(t)
	svc := NewClassService(gw, store)

	tests := []struct {
		name  string
		input domain.CreateClassInput
	}{
		{"missing name", domain.CreateClassInput{Capacity: 8, MinAge: 0, MaxAge: 1}},
		{"zero capacity", domain.CreateClassInput{Name: "Berçário", Capacity: 0, MaxAge: 1}},
		{"negative capacity", domain.CreateClassInput{Name: "Berçário", Capacity: -1, MaxAge: 1}},
		{"negative min age", domain.CreateClassInput{Name: "Berçário", Capacity: 8, MinAge: -1, MaxAge: 1}},
		{"min age above max", domain.CreateClassInput{Name: "Berçário", Capacity: 8, MinAge: 3, MaxAge: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	gw.AssertNotCalled(t, "CreateClassGroup")
}

func TestClassService_Update_Merges(t *testing.T) {
	gw := mocks.NewMockClassWriter(t)
	store := mocks.NewMockEntityStore(t)
	svc := NewClassService(gw, store)

	existing := &domain.ClassGroup{ID: 10, Name: "Maternal I", Capacity: 12, MinAge: 1, MaxAge: 2, Active: true}
	store.EXPECT().ClassGroup(mock.Anything, 10).Return(existing, nil)

	want := *existing
	want.Capacity = 15
	gw.EXPECT().UpdateClassGroup(mock.Anything, want).Return(&want, nil)
	store.EXPECT().Invalidate(domain.KindClass).Return()

	class, err := svc.Update(context.Background(), 10, domain.UpdateClassInput{Capacity: 15})

	require.NoError(t, err)
	assert.Equal(t, 15, class.Capacity)
	assert.Equal(t, "Maternal I", class.Name)
}

func TestClassService_Update_MinAgeToZero(t *testing.T) {
	gw := mocks.NewMockClassWriter(t)
	store := mocks.NewMockEntityStore(t)
	svc := NewClassService(gw, store)

	existing := &domain.ClassGroup{ID: 10, Name: "Berçário", Capacity: 8, MinAge: 1, MaxAge: 2, Active: true}
	store.EXPECT().ClassGroup(mock.Anything, 10).Return(existing, nil)

	// Zero is a legal minimum age, so the field is a pointer.
	zero := 0
	want := *existing
	want.MinAge = 0
	gw.EXPECT().UpdateClassGroup(mock.Anything, want).Return(&want, nil)
	store.EXPECT().Invalidate(domain.KindClass).Return()

	class, err := svc.Update(context.Background(), 10, domain.UpdateClassInput{MinAge: &zero})

	require.NoError(t, err)
	assert.Equal(t, 0, class.MinAge)
}

func TestClassService_Update_InvalidMergedShape(t *testing.T) {
	gw := mocks.NewMockClassWriter(t)
	store := mocks.NewMockEntityStore(t)
	svc := NewClassService(gw, store)

	existing := &domain.ClassGroup{ID: 10, Name: "Maternal I", Capacity: 12, MinAge: 1, MaxAge: 2, Active: true}
	store.EXPECT().ClassGroup(mock.Anything, 10).Return(existing, nil)

	five := 5
	_, err := svc.Update(context.Background(), 10, domain.UpdateClassInput{MinAge: &five})

	assert.ErrorIs(t, err, domain.ErrValidation)
	gw.AssertNotCalled(t, "UpdateClassGroup")
}

func TestClassService_Deactivate_AlreadyInactive(t *testing.T) {
	gw := mocks.NewMockClassWriter(t)
	store := mocks.NewMockEntityStore(t)
	svc := NewClassService(gw, store)

	store.EXPECT().ClassGroup(mock.Anything, 10).Return(&domain.ClassGroup{ID: 10, Active: false}, nil)

	err := svc.Deactivate(context.Background(), 10)

	require.NoError(t, err)
	gw.AssertNotCalled(t, "UpdateClassGroup")
}
