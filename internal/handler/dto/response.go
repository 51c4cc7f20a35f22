package dto

import (
	"time"

	"github.com/crechehub/agendaservice/internal/domain"
)

// Responses carry civil dates as ISO strings, timestamps as RFC3339.

type ChildResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	BirthDate    string `json:"birth_date"`
	GuardianName string `json:"guardian_name"`
	CreatedAt    string `json:"created_at"`
	Active       bool   `json:"active"`
}

type ClassResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Capacity   int    `json:"capacity"`
	MinAge     int    `json:"min_age"`
	MaxAge     int    `json:"max_age"`
	CreatedAt  string `json:"created_at"`
	Active     bool   `json:"active"`
	ChildIDs   []int  `json:"child_ids,omitempty"`
	BookingIDs []int  `json:"booking_ids,omitempty"`
}

type BookingResponse struct {
	ID        int    `json:"id"`
	ChildID   int    `json:"child_id"`
	ClassID   int    `json:"class_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at"`
	Active    bool   `json:"active"`
}

type UserResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	Active    bool   `json:"active"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToChildResponse(c *domain.Child) ChildResponse {
	return ChildResponse{
		ID:           c.ID,
		Name:         c.Name,
		BirthDate:    c.BirthDate.ISO(),
		GuardianName: c.GuardianName,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
		Active:       c.Active,
	}
}

func ToClassResponse(g *domain.ClassGroup) ClassResponse {
	return ClassResponse{
		ID:         g.ID,
		Name:       g.Name,
		Capacity:   g.Capacity,
		MinAge:     g.MinAge,
		MaxAge:     g.MaxAge,
		CreatedAt:  g.CreatedAt.Format(time.RFC3339),
		Active:     g.Active,
		ChildIDs:   g.ChildIDs,
		BookingIDs: g.BookingIDs,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		ChildID:   b.ChildID,
		ClassID:   b.ClassID,
		StartDate: b.StartDate.ISO(),
		EndDate:   b.EndDate.ISO(),
		Note:      b.Note,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		Active:    b.Active,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		Active:    u.Active,
	}
}
