package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	Me(c *ginext.Context)
	ListChildren(c *ginext.Context)
	CreateChild(c *ginext.Context)
	UpdateChild(c *ginext.Context)
	DeactivateChild(c *ginext.Context)
	ListClasses(c *ginext.Context)
	CreateClass(c *ginext.Context)
	UpdateClass(c *ginext.Context)
	DeactivateClass(c *ginext.Context)
	ListUsers(c *ginext.Context)
	CreateUser(c *ginext.Context)
	UpdateUser(c *ginext.Context)
	DeactivateUser(c *ginext.Context)
	ListBookings(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
}

// InitRouter mounts the API. Everything under /api except login requires a
// live session, enforced by authMW.
func InitRouter(mode string, h Handler, authMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	api.POST("/login", h.Login)

	private := api.Group("")
	private.Use(authMW)
	{
		// Session
		private.POST("/logout", h.Logout)
		private.GET("/me", h.Me)

		// Children
		private.GET("/children", h.ListChildren)
		private.POST("/children", h.CreateChild)
		private.PUT("/children/:id", h.UpdateChild)
		private.DELETE("/children/:id", h.DeactivateChild)

		// Classes
		private.GET("/classes", h.ListClasses)
		private.POST("/classes", h.CreateClass)
		private.PUT("/classes/:id", h.UpdateClass)
		private.DELETE("/classes/:id", h.DeactivateClass)

		// Users
		private.GET("/users", h.ListUsers)
		private.POST("/users", h.CreateUser)
		private.PUT("/users/:id", h.UpdateUser)
		private.DELETE("/users/:id", h.DeactivateUser)

		// Bookings
		private.GET("/bookings", h.ListBookings)
		private.POST("/bookings", h.CreateBooking)
		private.PUT("/bookings/:id", h.UpdateBooking)
		private.DELETE("/bookings/:id", h.CancelBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
