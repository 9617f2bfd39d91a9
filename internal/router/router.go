package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/nvkv0/HomeCall/internal/domain"
	"github.com/nvkv0/HomeCall/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateRequest(c *ginext.Context)
	ListCustomerRequests(c *ginext.Context)
	ListWorkerRequests(c *ginext.Context)
	AcceptRequest(c *ginext.Context)
	RejectRequest(c *ginext.Context)
	ApproveRequest(c *ginext.Context)
	RejectWorker(c *ginext.Context)
	ListServices(c *ginext.Context)
	AddOffer(c *ginext.Context)
	ListMyOffers(c *ginext.Context)
	ListServiceWorkers(c *ginext.Context)
	ToggleOffer(c *ginext.Context)
	ListCustomerBookings(c *ginext.Context)
	ListWorkerBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListNotifications(c *ginext.Context)
	MarkNotificationRead(c *ginext.Context)
	CreateUser(c *ginext.Context)
	CreateAddress(c *ginext.Context)
	ListAddresses(c *ginext.Context)
}

func InitRouter(mode, jwtSecret string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	auth := middleware.Auth(jwtSecret)
	customer := middleware.RequireRole(domain.RoleCustomer)
	worker := middleware.RequireRole(domain.RoleWorker)

	api := router.Group("/api")
	{
		// Public
		api.POST("/users", h.CreateUser)
		api.GET("/services", h.ListServices)
		api.GET("/worker-services/service/:id", h.ListServiceWorkers)

		// Service requests
		requests := api.Group("/service-requests", auth)
		{
			requests.POST("", customer, h.CreateRequest)
			requests.GET("/customer", customer, h.ListCustomerRequests)
			requests.POST("/:id/approve", customer, h.ApproveRequest)
			requests.POST("/:id/reject-worker", customer, h.RejectWorker)

			requests.GET("/worker", worker, h.ListWorkerRequests)
			requests.POST("/:id/accept", worker, h.AcceptRequest)
			requests.POST("/:id/reject", worker, h.RejectRequest)
		}

		// Worker offers
		offers := api.Group("/worker-services", auth, worker)
		{
			offers.POST("", h.AddOffer)
			offers.GET("/mine", h.ListMyOffers)
			offers.PATCH("/:id/toggle", h.ToggleOffer)
		}

		// Bookings
		bookings := api.Group("/bookings", auth)
		{
			bookings.GET("/customer", customer, h.ListCustomerBookings)
			bookings.GET("/worker", worker, h.ListWorkerBookings)
			bookings.GET("/:id", h.GetBooking)
		}

		// Addresses
		addresses := api.Group("/addresses", auth)
		{
			addresses.POST("", h.CreateAddress)
			addresses.GET("", h.ListAddresses)
		}

		// Notifications
		notifications := api.Group("/notifications", auth)
		{
			notifications.GET("", h.ListNotifications)
			notifications.PATCH("/:id/read", h.MarkNotificationRead)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
