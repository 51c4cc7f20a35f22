package dto

// Date fields on requests are DD/MM/YYYY, the form staff type them in; they
// are converted to civil dates before anything crosses to the gateway.

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateChildRequest struct {
	Name         string `json:"name" binding:"required"`
	BirthDate    string `json:"birth_date" binding:"required"`
	GuardianName string `json:"guardian_name" binding:"required"`
}

type UpdateChildRequest struct {
	Name         string `json:"name"`
	BirthDate    string `json:"birth_date"`
	GuardianName string `json:"guardian_name"`
	Active       *bool  `json:"active"`
}

type CreateClassRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	MinAge   int    `json:"min_age" binding:"min=0"`
	MaxAge   int    `json:"max_age" binding:"required,gtefield=MinAge"`
}

type UpdateClassRequest struct {
	Name       string `json:"name"`
	Capacity   int    `json:"capacity"`
	MinAge     *int   `json:"min_age"`
	MaxAge     *int   `json:"max_age"`
	Active     *bool  `json:"active"`
	ChildIDs   []int  `json:"child_ids"`
	BookingIDs []int  `json:"booking_ids"`
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active *bool  `json:"active"`
}

type CreateBookingRequest struct {
	ChildID   int    `json:"child_id" binding:"required"`
	ClassID   int    `json:"class_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Note      string `json:"note"`
}

type UpdateBookingRequest struct {
	ChildID   int    `json:"child_id"`
	ClassID   int    `json:"class_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Note      string `json:"note"`
}
