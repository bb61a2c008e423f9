package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/coolcare_patna/backend/internal/config"
	"github.com/coolcare_patna/backend/internal/db"
	"github.com/coolcare_patna/backend/internal/http/handlers"
	"github.com/coolcare_patna/backend/internal/http/middleware"
	"github.com/coolcare_patna/backend/internal/service"

	_ "github.com/coolcare_patna/backend/docs"
)

func Router(cfg config.Config, store *db.Store, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Store:        store,
		Catalog:      &service.CatalogService{Store: store, Logger: logger},
		Customers:    &service.CustomerService{Store: store, Logger: logger},
		Technicians:  &service.TechnicianService{Store: store, Logger: logger},
		Testimonials: &service.TestimonialService{Store: store, Logger: logger},
		Bookings:     &service.BookingService{Store: store, Logger: logger},
		Availability: &service.AvailabilityService{Store: store, Logger: logger},
		Validator:    validator.New(),
		Logger:       logger,
		AdminKey:     cfg.AdminKey,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.GET("/services", h.ServicesList)
		api.GET("/services/:id", h.ServiceGet)
		api.GET("/technicians", h.TechniciansList)
		api.GET("/technicians/:id", h.TechnicianGet)
		api.GET("/team", h.TeamList)
		api.GET("/testimonials", h.TestimonialsList)
		api.POST("/testimonials", h.TestimonialCreate)
		api.GET("/availability", h.AvailabilityCheck)
		api.POST("/bookings", h.BookingCreate)
		api.GET("/bookings/:id", h.BookingGet)
		api.POST("/customers", h.CustomerCreate)
		api.GET("/customers/:id", h.CustomerGet)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.GET("/customers", h.CustomersList)
		admin.PATCH("/customers/:id", h.CustomerUpdate)
		admin.POST("/customers/:id/addresses", h.AddressAdd)
		admin.PATCH("/customers/:id/addresses/:addressId", h.AddressUpdate)
		admin.DELETE("/customers/:id/addresses/:addressId", h.AddressDelete)
		admin.GET("/bookings", h.BookingsList)
		admin.PATCH("/bookings/:id/status", h.BookingUpdateStatus)
		admin.POST("/bookings/:id/cancel", h.BookingCancel)
		admin.POST("/bookings/:id/reschedule", h.BookingReschedule)
		admin.GET("/stats/bookings", h.BookingStats)
		admin.PATCH("/technicians/:id/availability", h.TechnicianSetAvailability)
		admin.POST("/testimonials/:id/verify", h.TestimonialVerify)
		admin.DELETE("/testimonials/:id", h.TestimonialDelete)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
