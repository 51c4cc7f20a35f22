package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/crechehub/agendaservice/internal/domain"
	"github.com/crechehub/agendaservice/internal/handler/dto"
	hmocks "github.com/crechehub/agendaservice/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type fixture struct {
	auth     *hmocks.MockAuthSvc
	children *hmocks.MockChildSvc
	classes  *hmocks.MockClassSvc
	users    *hmocks.MockUserSvc
	bookings *hmocks.MockBookingSvc
	router   http.Handler
}

func setupRouter(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		auth:     hmocks.NewMockAuthSvc(t),
		children: hmocks.NewMockChildSvc(t),
		classes:  hmocks.NewMockClassSvc(t),
		users:    hmocks.NewMockUserSvc(t),
		bookings: hmocks.NewMockBookingSvc(t),
	}

	h := NewHandler(f.auth, f.children, f.classes, f.users, f.bookings)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/login", h.Login)
		api.POST("/logout", h.Logout)
		api.GET("/me", h.Me)
		api.GET("/children", h.ListChildren)
		api.POST("/children", h.CreateChild)
		api.PUT("/children/:id", h.UpdateChild)
		api.DELETE("/children/:id", h.DeactivateChild)
		api.GET("/classes", h.ListClasses)
		api.POST("/classes", h.CreateClass)
		api.PUT("/classes/:id", h.UpdateClass)
		api.GET("/users", h.ListUsers)
		api.POST("/users", h.CreateUser)
		api.GET("/bookings", h.ListBookings)
		api.POST("/bookings", h.CreateBooking)
		api.PUT("/bookings/:id", h.UpdateBooking)
		api.DELETE("/bookings/:id", h.CancelBooking)
	}

	f.router = r
	return f
}

func doJSON(t *testing.T, r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_Login_Success(t *testing.T) {
	f := setupRouter(t)

	user := &domain.User{ID: 3, Name: "Marta", Email: "marta@creche.com", Role: "admin", Active: true}
	f.auth.EXPECT().Login(mock.Anything, "marta@creche.com", "segredo").Return(user, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/login", dto.LoginRequest{
		Email:    "marta@creche.com",
		Password: "segredo",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Marta", resp.Name)
}

func TestHandler_Login_WrongCredentials(t *testing.T) {
	f := setupRouter(t)

	f.auth.EXPECT().Login(mock.Anything, "marta@creche.com", "errada").Return(nil, domain.ErrInvalidCredentials)

	w := doJSON(t, f.router, http.MethodPost, "/api/login", dto.LoginRequest{
		Email:    "marta@creche.com",
		Password: "errada",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Login_BadRequest(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/login", map[string]string{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Me_LoggedIn(t *testing.T) {
	f := setupRouter(t)

	f.auth.EXPECT().Current().Return(&domain.User{ID: 3, Name: "Marta"}, true)

	w := doJSON(t, f.router, http.MethodGet, "/api/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Me_LoggedOut(t *testing.T) {
	f := setupRouter(t)

	f.auth.EXPECT().Current().Return(nil, false)

	w := doJSON(t, f.router, http.MethodGet, "/api/me", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Logout(t *testing.T) {
	f := setupRouter(t)

	f.auth.EXPECT().Logout(mock.Anything).Return(nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Children ---

func TestHandler_CreateChild_Success(t *testing.T) {
	f := setupRouter(t)

	child := &domain.Child{ID: 1, Name: "Ana", BirthDate: domain.NewDate(2020, time.June, 15), GuardianName: "Marta", Active: true}
	f.children.EXPECT().Create(mock.Anything, domain.CreateChildInput{
		Name:         "Ana",
		BirthDate:    domain.NewDate(2020, time.June, 15),
		GuardianName: "Marta",
	}).Return(child, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/children", dto.CreateChildRequest{
		Name:         "Ana",
		BirthDate:    "15/06/2020",
		GuardianName: "Marta",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ChildResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2020-06-15", resp.BirthDate)
}

func TestHandler_CreateChild_BadDate(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/children", dto.CreateChildRequest{
		Name:         "Ana",
		BirthDate:    "2020-06-15",
		GuardianName: "Marta",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.children.AssertNotCalled(t, "Create")
}

func TestHandler_UpdateChild_Success(t *testing.T) {
	f := setupRouter(t)

	child := &domain.Child{ID: 1, Name: "Ana", GuardianName: "Paulo", Active: true}
	f.children.EXPECT().Update(mock.Anything, 1, domain.UpdateChildInput{GuardianName: "Paulo"}).Return(child, nil)

	w := doJSON(t, f.router, http.MethodPut, "/api/children/1", dto.UpdateChildRequest{GuardianName: "Paulo"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateChild_InvalidID(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodPut, "/api/children/abc", dto.UpdateChildRequest{Name: "Ana"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateChild_NotFound(t *testing.T) {
	f := setupRouter(t)

	f.children.EXPECT().Update(mock.Anything, 99, mock.Anything).Return(nil, domain.ErrChildNotFound)

	w := doJSON(t, f.router, http.MethodPut, "/api/children/99", dto.UpdateChildRequest{Name: "Ana"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeactivateChild(t *testing.T) {
	f := setupRouter(t)

	f.children.EXPECT().Deactivate(mock.Anything, 1).Return(nil)

	w := doJSON(t, f.router, http.MethodDelete, "/api/children/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListChildren(t *testing.T) {
	f := setupRouter(t)

	f.children.EXPECT().List(mock.Anything).Return([]domain.Child{{ID: 1}, {ID: 2}}, nil)

	w := doJSON(t, f.router, http.MethodGet, "/api/children", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ChildResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Classes ---

func TestHandler_CreateClass_Success(t *testing.T) {
	f := setupRouter(t)

	class := &domain.ClassGroup{ID: 10, Name: "Berçário", Capacity: 8, MaxAge: 1, Active: true}
	f.classes.EXPECT().Create(mock.Anything, domain.CreateClassInput{
		Name:     "Berçário",
		Capacity: 8,
		MaxAge:   1,
	}).Return(class, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/classes", dto.CreateClassRequest{
		Name:     "Berçário",
		Capacity: 8,
		MaxAge:   1,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateClass_BadRequest(t *testing.T) {
	f := setupRouter(t)

	// Missing capacity fails binding before the service is reached.
	w := doJSON(t, f.router, http.MethodPost, "/api/classes", map[string]any{"name": "Berçário"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.classes.AssertNotCalled(t, "Create")
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	f := setupRouter(t)

	booking := &domain.Booking{
		ID: 7, ChildID: 1, ClassID: 10,
		StartDate: domain.NewDate(2024, time.January, 1),
		EndDate:   domain.NewDate(2024, time.January, 5),
		Active:    true,
	}
	f.bookings.EXPECT().Create(mock.Anything, domain.BookingInput{
		ChildID: 1, ClassID: 10,
		StartDate: domain.NewDate(2024, time.January, 1),
		EndDate:   domain.NewDate(2024, time.January, 5),
	}).Return(booking, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ChildID:   1,
		ClassID:   10,
		StartDate: "01/01/2024",
		EndDate:   "05/01/2024",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-01-01", resp.StartDate)
	assert.Equal(t, "2024-01-05", resp.EndDate)
}

func TestHandler_CreateBooking_BadDate(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ChildID:   1,
		ClassID:   10,
		StartDate: "2024-01-01",
		EndDate:   "05/01/2024",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.bookings.AssertNotCalled(t, "Create")
}

func TestHandler_CreateBooking_Rejections(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid range", domain.ErrInvalidDateRange, http.StatusConflict},
		{"unknown reference", domain.ErrUnknownReference, http.StatusConflict},
		{"age out of range", domain.ErrAgeOutOfRange, http.StatusConflict},
		{"capacity exceeded", domain.ErrCapacityExceeded, http.StatusConflict},
		{"duplicate booking", domain.ErrDuplicateBooking, http.StatusConflict},
		{"gateway down", domain.ErrGatewayUnavailable, http.StatusBadGateway},
		{"session expired", domain.ErrSessionExpired, http.StatusUnauthorized},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupRouter(t)
			f.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doJSON(t, f.router, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
				ChildID:   1,
				ClassID:   10,
				StartDate: "01/01/2024",
				EndDate:   "05/01/2024",
			})

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandler_UpdateBooking_PartialDates(t *testing.T) {
	f := setupRouter(t)

	booking := &domain.Booking{ID: 7, ChildID: 1, ClassID: 10, Active: true}
	// Only the end date is sent; the rest stays zero for the service to merge.
	f.bookings.EXPECT().Update(mock.Anything, 7, domain.BookingInput{
		EndDate: domain.NewDate(2024, time.January, 9),
	}).Return(booking, nil)

	w := doJSON(t, f.router, http.MethodPut, "/api/bookings/7", dto.UpdateBookingRequest{
		EndDate: "09/01/2024",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking(t *testing.T) {
	f := setupRouter(t)

	f.bookings.EXPECT().Cancel(mock.Anything, 7).Return(nil)

	w := doJSON(t, f.router, http.MethodDelete, "/api/bookings/7", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking_NotFound(t *testing.T) {
	f := setupRouter(t)

	f.bookings.EXPECT().Cancel(mock.Anything, 99).Return(domain.ErrBookingNotFound)

	w := doJSON(t, f.router, http.MethodDelete, "/api/bookings/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListBookings(t *testing.T) {
	f := setupRouter(t)

	f.bookings.EXPECT().List(mock.Anything).Return([]domain.Booking{{ID: 7}}, nil)

	w := doJSON(t, f.router, http.MethodGet, "/api/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	f := setupRouter(t)

	user := &domain.User{ID: 3, Name: "Marta", Email: "marta@creche.com", Role: "admin", Active: true}
	f.users.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, f.router, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Name:     "Marta",
		Email:    "marta@creche.com",
		Role:     "admin",
		Password: "segredo",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Marta", resp.Name)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	f := setupRouter(t)

	w := doJSON(t, f.router, http.MethodPost, "/api/users", map[string]string{"name": "Marta"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers(t *testing.T) {
	f := setupRouter(t)

	f.users.EXPECT().List(mock.Anything).Return([]domain.User{{ID: 3, Name: "Marta"}}, nil)

	w := doJSON(t, f.router, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
