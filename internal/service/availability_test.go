package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/crechehub/agendaservice/internal/domain"
	"github.com/crechehub/agendaservice/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func day(d int) domain.Date { return domain.NewDate(2024, time.January, d) }

func validChild() *domain.Child {
	return &domain.Child{
		ID:        1,
		Name:      "Ana",
		BirthDate: domain.NewDate(2020, time.June, 15),
		Active:    true,
	}
}

func validClass() *domain.ClassGroup {
	return &domain.ClassGroup{
		ID:       10,
		Name:     "Maternal II",
		Capacity: 2,
		MinAge:   2,
		MaxAge:   4,
		Active:   true,
	}
}

func proposal() domain.BookingProposal {
	return domain.BookingProposal{
		ChildID:   1,
		ClassID:   10,
		StartDate: day(1),
		EndDate:   day(5),
	}
}

func TestAvailabilityValidator_Ok(t *testing.T) {
	store := mocks.NewMockEntityStore(t)
	v := NewAvailabilityValidator(store)

	store.EXPECT().Child(mock.Anything, 1).Return(validChild(), nil)
	store.EXPECT().ClassGroup(mock.Anything, 10).Return(validClass(), nil)
	store.EXPECT().Bookings(mock.Anything).Return(nil, nil)

	err := v.Validate(context.Background(), proposal())

	require.NoError(t, err)
}

func TestAvailabilityValidator_InvalidDateRange(t *testing.T) {
	store := mocks.NewMockEntityStore(t)
	v := NewAvailabilityValidator(store)

	tests := []struct {
		name string
		p    domain.BookingProposal
	}{
		{"start after end", domain.BookingProposal{ChildID: 1, ClassID: 10, StartDate: day(5), EndDate: day(1)}},
		{"missing start", domain.BookingProposal{ChildID: 1, ClassID: 10, EndDate: day(5)}},
		{"missing end", domain.BookingProposal{ChildID: 1, ClassID: 10, StartDate: day(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.p)
			assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
		})
	}
	// No store access: the date check short-circuits everything else.
	store.AssertNotCalled(t, "Child")
}

func TestAvailabilityValidator_UnknownChild(t *testing.T) {
	store := mocks.NewMockEntityStore(t)
	v := NewAvailabilityValidator(store)

	store.EXPECT().Child(mock.Anything, 1).Return(nil, domain.ErrChildNotFound)

	err := v.Validate(context.Background(), proposal())

	assert.ErrorIs(t, err, domain.ErrUnknownReference)
}

func TestAvailabilityValidator_InactiveChild(t *testing.T) {
	store := mocks.NewMockEntityStore(t)
	v := NewAvailabilityValidator(store)

	child := validChild()
	child.Active = false
	store.EXPECT().Child(mock.Anything, 1).Return(child, nil)

	err := v.Validate(context.Background(), proposal())

	assert.ErrorIs(t, err, domain.ErrUnknownReference)
}

func TestAvailabilityValidator_UnknownClass(t *testing.T) {
	store := mocks.NewMockEntityStore(t)
	v := NewAvailabilityValidator(store)

	store.EXPECT().Child(mock.Anything, 1).Return(validChild(), nil)
	store.EXPECT().ClassGroup(mock.Anything, 10).Return(nil, domain.ErrClassNotFound)

	err := v.Validate(context.Background(), proposal())

	assert.ErrorIs(t, err, domain.ErrUnknownReference)
}

func TestAvailabilityValidator_InactiveClass(t *testing.T) {
	store := mocks.NewMockEntityStore(t)
	v := NewAvailabilityValidator(store)

	class := validClass()
	class.Active = false
	store.EXPECT().Child(mock.Anything, 1).Return(validChild(), nil)
	store.EXPECT().ClassGroup(mock.Anything, 10).Return(class, nil)

	err := v.Validate(context.Background(), proposal())

	assert.ErrorIs(t, err, domain.ErrUnknownReference)
}

func TestAvailabilityValidator_AgeOutOfRange(t *testing.T) {
	store := mocks.NewMockEntityStore(t)
	v := NewAvailabilityValidator(store)

	// Born June 2020 means age 3 at January 2024; the class takes 4 to 6.
	class := validClass()
	class.MinAge = 4
	class.MaxAge = 6
	store.EXPECT().Child(mock.Anything, 1).Return(validChild(), nil)
	store.EXPECT().ClassGroup(mock.Anything, 10).Return(class, nil)

	err := v.Validate(context.Background(), proposal())

	assert.ErrorIs(t, err, domain.ErrAgeOutOfRange)
	// Age is judged before any booking is looked at.
	store.AssertNotCalled(t, "Bookings")
}

func TestAvailabilityValidator_AgeAtStartDate(t *testing.T) {
	store := mocks.NewMockEntityStore(t)
	v := NewAvailabilityValidator(store)

	// Age crosses the minimum during the booking; only the start date counts.
	child := validChild()
	child.BirthDate = domain.NewDate(2022, time.January, 3)
	store.EXPECT().Child(mock.Anything, 1).Return(child, nil)
	store.EXPECT().ClassGroup(mock.Anything, 10).Return(validClass(), nil)

	err := v.Validate(context.Background(), proposal())

	assert.ErrorIs(t, err, domain.ErrAgeOutOfRange)
}

func TestAvailabilityValidator_CapacityExceeded(t *testing.T) {
	store := mocks.NewMockEntityStore(t)
	v := NewAvailabilityValidator(store)

	class := validClass()
	class.Capacity = 1
	store.EXPECT().Child(mock.Anything, 2).Return(&domain.Child{
		ID:        2,
		BirthDate: domain.NewDate(2020, time.June, 15),
		Active:    true,
	}, nil)
	store.EXPECT().ClassGroup(mock.Anything, 10).Return(class, nil)
	store.EXPECT().Bookings(mock.Anything).Return([]domain.Booking{
		{ID: 100, ChildID: 1, ClassID: 10, StartDate: day(1), EndDate: day(5), Active: true},
	}, nil)

	p := proposal()
	p.ChildID = 2
	p.StartDate = day(3)
	p.EndDate = day(4)
	err := v.Validate(context.Background(), p)

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestAvailabilityValidator_CapacityIgnoresOtherClasses(t *testing.T) {
	store := mocks.NewMockEntityStore(t)
	v := NewAvailabilityValidator(store)

	class := validClass()
	class.Capacity = 1
	store.EXPECT().Child(mock.Anything, 1).Return(validChild(), nil)
	store.EXPECT().ClassGroup(mock.Anything, 10).Return(class, nil)
	store.EXPECT().Bookings(mock.Anything).Return([]domain.Booking{
		{ID: 100, ChildID: 2, ClassID: 99, StartDate: day(1), EndDate: day(5), Active: true},
	}, nil)

	err := v.Validate(context.Background(), proposal())

	require.NoError(t, err)
}

func TestAvailabilityValidator_CapacityIgnoresInactive(t *testing.T) {
	store := mocks.NewMockEntityStore(t)
	v := NewAvailabilityValidator(store)

	class := validClass()
	class.Capacity = 1
	store.EXPECT().Child(mock.Anything, 1).Return(validChild(), nil)
	store.EXPECT().ClassGroup(mock.Anything, 10).Return(class, nil)
	store.EXPECT().Bookings(mock.Anything).Return([]domain.Booking{
		{ID: 100, ChildID: 2, ClassID: 10, StartDate: day(1), EndDate: day(5), Active: false},
	}, nil)

	err := v.Validate(context.Background(), proposal())

	require.NoError(t, err)
}

func TestAvailabilityValidator_CapacityIgnoresDisjointPeriods(t *testing.T) {
	store := mocks.NewMockEntityStore(t)
	v := NewAvailabilityValidator(store)

	class := validClass()
	class.Capacity = 1
	store.EXPECT().Child(mock.Anything, 1).Return(validChild(), nil)
	store.EXPECT().ClassGroup(mock.Anything, 10).Return(class, nil)
	store.EXPECT().Bookings(mock.Anything).Return([]domain.Booking{
		{ID: 100, ChildID: 2, ClassID: 10, StartDate: day(10), EndDate: day(15), Active: true},
	}, nil)

	err := v.Validate(context.Background(), proposal())

	require.NoError(t, err)
}

func TestAvailabilityValidator_DuplicateBooking(t *testing.T) {
	store := mocks.NewMockEntityStore(t)
	v := NewAvailabilityValidator(store)

	store.EXPECT().Child(mock.Anything, 1).Return(validChild(), nil)
	store.EXPECT().ClassGroup(mock.Anything, 10).Return(validClass(), nil)
	store.EXPECT().Bookings(mock.Anything).Return([]domain.Booking{
		{ID: 100, ChildID: 1, ClassID: 10, StartDate: day(4), EndDate: day(8), Active: true},
	}, nil)

	err := v.Validate(context.Background(), proposal())

	assert.ErrorIs(t, err, domain.ErrDuplicateBooking)
}

func TestAvailabilityValidator_CapacityBeforeDuplicate(t *testing.T) {
	store := mocks.NewMockEntityStore(t)
	v := NewAvailabilityValidator(store)

	// The same child holds the overlapping booking AND the class is full: the
	// capacity verdict wins.
	class := validClass()
	class.Capacity = 1
	store.EXPECT().Child(mock.Anything, 1).Return(validChild(), nil)
	store.EXPECT().ClassGroup(mock.Anything, 10).Return(class, nil)
	store.EXPECT().Bookings(mock.Anything).Return([]domain.Booking{
		{ID: 100, ChildID: 1, ClassID: 10, StartDate: day(1), EndDate: day(5), Active: true},
	}, nil)

	err := v.Validate(context.Background(), proposal())

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.NotErrorIs(t, err, domain.ErrDuplicateBooking)
}

func TestAvailabilityValidator_ExcludeIDSkipsOwnBooking(t *testing.T) {
	store := mocks.NewMockEntityStore(t)
	v := NewAvailabilityValidator(store)

	class := validClass()
	class.Capacity = 1
	store.EXPECT().Child(mock.Anything, 1).Return(validChild(), nil)
	store.EXPECT().ClassGroup(mock.Anything, 10).Return(class, nil)
	store.EXPECT().Bookings(mock.Anything).Return([]domain.Booking{
		{ID: 100, ChildID: 1, ClassID: 10, StartDate: day(1), EndDate: day(5), Active: true},
	}, nil)

	p := proposal()
	p.ExcludeID = 100
	err := v.Validate(context.Background(), p)

	require.NoError(t, err)
}

func TestAvailabilityValidator_TouchingBoundaryOverlaps(t *testing.T) {
	store := mocks.NewMockEntityStore(t)
	v := NewAvailabilityValidator(store)

	store.EXPECT().Child(mock.Anything, 1).Return(validChild(), nil)
	store.EXPECT().ClassGroup(mock.Anything, 10).Return(validClass(), nil)
	store.EXPECT().Bookings(mock.Anything).Return([]domain.Booking{
		{ID: 100, ChildID: 1, ClassID: 10, StartDate: day(5), EndDate: day(9), Active: true},
	}, nil)

	// Ends the day the existing booking starts: still a duplicate.
	err := v.Validate(context.Background(), proposal())

	assert.ErrorIs(t, err, domain.ErrDuplicateBooking)
}

func TestAvailabilityValidator_StoreError(t *testing.T) {
	store := mocks.NewMockEntityStore(t)
	v := NewAvailabilityValidator(store)

	store.EXPECT().Child(mock.Anything, 1).Return(nil, errors.New("gateway down"))

	err := v.Validate(context.Background(), proposal())

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnknownReference)
}
