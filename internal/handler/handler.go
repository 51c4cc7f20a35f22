package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/crechehub/agendaservice/internal/domain"
	"github.com/crechehub/agendaservice/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type AuthSvc interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Logout(ctx context.Context) error
	Current() (*domain.User, bool)
}

type ChildSvc interface {
	List(ctx context.Context) ([]domain.Child, error)
	Create(ctx context.Context, input domain.CreateChildInput) (*domain.Child, error)
	Update(ctx context.Context, id int, input domain.UpdateChildInput) (*domain.Child, error)
	Deactivate(ctx context.Context, id int) error
}

type ClassSvc interface {
	List(ctx context.Context) ([]domain.ClassGroup, error)
	Create(ctx context.Context, input domain.CreateClassInput) (*domain.ClassGroup, error)
	Update(ctx context.Context, id int, input domain.UpdateClassInput) (*domain.ClassGroup, error)
	Deactivate(ctx context.Context, id int) error
}

type UserSvc interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int, input domain.UpdateUserInput) (*domain.User, error)
	Deactivate(ctx context.Context, id int) error
}

type BookingSvc interface {
	List(ctx context.Context) ([]domain.Booking, error)
	Create(ctx context.Context, input domain.BookingInput) (*domain.Booking, error)
	Update(ctx context.Context, id int, input domain.BookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, id int) error
}

type Handler struct {
	authService    AuthSvc
	childService   ChildSvc
	classService   ClassSvc
	userService    UserSvc
	bookingService BookingSvc
}

func NewHandler(
	authService AuthSvc,
	childService ChildSvc,
	classService ClassSvc,
	userService UserSvc,
	bookingService BookingSvc,
) *Handler {
	return &Handler{
		authService:    authService,
		childService:   childService,
		classService:   classService,
		userService:    userService,
		bookingService: bookingService,
	}
}

// Auth

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) Logout(c *ginext.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "logged out"})
}

func (h *Handler) Me(c *ginext.Context) {
	user, ok := h.authService.Current()
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrNotAuthenticated.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Children

func (h *Handler) ListChildren(c *ginext.Context) {
	children, err := h.childService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ChildResponse, 0, len(children))
	for i := range children {
		resp = append(resp, dto.ToChildResponse(&children[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateChild(c *ginext.Context) {
	var req dto.CreateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	birth, err := domain.ParseBRDate(req.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid birth_date, expected DD/MM/YYYY"})
		return
	}

	child, err := h.childService.Create(c.Request.Context(), domain.CreateChildInput{
		Name:         req.Name,
		BirthDate:    birth,
		GuardianName: req.GuardianName,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToChildResponse(child))
}

func (h *Handler) UpdateChild(c *ginext.Context) {
	id, ok := h.entityID(c)
	if !ok {
		return
	}

	var req dto.UpdateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateChildInput{
		Name:         req.Name,
		GuardianName: req.GuardianName,
		Active:       req.Active,
	}
	if req.BirthDate != "" {
		birth, err := domain.ParseBRDate(req.BirthDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid birth_date, expected DD/MM/YYYY"})
			return
		}
		input.BirthDate = birth
	}

	child, err := h.childService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChildResponse(child))
}

func (h *Handler) DeactivateChild(c *ginext.Context) {
	id, ok := h.entityID(c)
	if !ok {
		return
	}

	if err := h.childService.Deactivate(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deactivated"})
}

// Classes

func (h *Handler) ListClasses(c *ginext.Context) {
	classes, err := h.classService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ClassResponse, 0, len(classes))
	for i := range classes {
		resp = append(resp, dto.ToClassResponse(&classes[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateClass(c *ginext.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	class, err := h.classService.Create(c.Request.Context(), domain.CreateClassInput{
		Name:     req.Name,
		Capacity: req.Capacity,
		MinAge:   req.MinAge,
		MaxAge:   req.MaxAge,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClassResponse(class))
}

func (h *Handler) UpdateClass(c *ginext.Context) {
	id, ok := h.entityID(c)
	if !ok {
		return
	}

	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	class, err := h.classService.Update(c.Request.Context(), id, domain.UpdateClassInput{
		Name:       req.Name,
		Capacity:   req.Capacity,
		MinAge:     req.MinAge,
		MaxAge:     req.MaxAge,
		Active:     req.Active,
		ChildIDs:   req.ChildIDs,
		BookingIDs: req.BookingIDs,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClassResponse(class))
}

func (h *Handler) DeactivateClass(c *ginext.Context) {
	id, ok := h.entityID(c)
	if !ok {
		return
	}

	if err := h.classService.Deactivate(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deactivated"})
}

// Users

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.ToUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) UpdateUser(c *ginext.Context) {
	id, ok := h.entityID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, domain.UpdateUserInput{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Active: req.Active,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) DeactivateUser(c *ginext.Context) {
	id, ok := h.entityID(c)
	if !ok {
		return
	}

	if err := h.userService.Deactivate(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deactivated"})
}

// Bookings

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, dto.ToBookingResponse(&bookings[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, ok := h.bookingInput(c, req.ChildID, req.ClassID, req.StartDate, req.EndDate, req.Note)
	if !ok {
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	id, ok := h.entityID(c)
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, ok := h.bookingInput(c, req.ChildID, req.ClassID, req.StartDate, req.EndDate, req.Note)
	if !ok {
		return
	}

	booking, err := h.bookingService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := h.entityID(c)
	if !ok {
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) entityID(c *ginext.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

// bookingInput converts the DD/MM/YYYY request dates; empty strings stay zero
// for partial updates.
func (h *Handler) bookingInput(c *ginext.Context, childID, classID int, start, end, note string) (domain.BookingInput, bool) {
	input := domain.BookingInput{
		ChildID: childID,
		ClassID: classID,
		Note:    note,
	}

	if start != "" {
		d, err := domain.ParseBRDate(start)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date, expected DD/MM/YYYY"})
			return domain.BookingInput{}, false
		}
		input.StartDate = d
	}
	if end != "" {
		d, err := domain.ParseBRDate(end)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date, expected DD/MM/YYYY"})
			return domain.BookingInput{}, false
		}
		input.EndDate = d
	}

	return input, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrChildNotFound),
		errors.Is(err, domain.ErrClassNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrUnknownReference),
		errors.Is(err, domain.ErrAgeOutOfRange),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrDuplicateBooking):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrNotAuthenticated),
		errors.Is(err, domain.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrGatewayUnavailable):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: domain.ErrGatewayUnavailable.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
