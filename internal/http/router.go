package api

import (
	"log"
	stdhttp "net/http"

	intconfig "voyago/internal/config"
	h "voyago/internal/http/handlers"
	"voyago/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authRequired := middleware.RequireAuth(env.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login(env))
		auth.POST("/register", h.Register)

		// Catalog
		experiences := api.Group("/experiences")
		experiences.GET("", h.ListExperiences)
		experiences.GET("/:id", h.GetExperience)
		experiences.POST("", authRequired, h.CreateExperience)
		experiences.POST("/:id/activities", authRequired, h.CreateActivity)

		// Vendor profile (printed on invoices)
		api.GET("/vendor-profile", h.GetVendorProfile)
		api.PUT("/vendor-profile", authRequired, h.SaveVendorProfile)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:id", h.GetBooking)
		bookings.POST("/:id/invoice", authRequired, h.CreateBookingInvoice)
		bookings.GET("/:id/invoice", h.GetBookingInvoice)

		// Invoices
		invoices := api.Group("/invoices")
		invoices.GET("/:number", h.GetInvoice)
		invoices.GET("/:number/pdf", h.GetInvoicePDF)
	}

	h.SetRouter(r)
	return r
}
