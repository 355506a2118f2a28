package bookingRoutes

import (
	controller "portfolio/controllers/booking"
	validator "portfolio/validators/booking"

	"github.com/gofiber/fiber/v2"
)

func SetupBookingRoutes(router fiber.Router, ctl *controller.Controller, adminGate fiber.Handler) {
	bookings := router.Group("/bookings")

	bookings.Get("/", ctl.List)
	bookings.Post("/", validator.CreateBooking(), ctl.Create)
	bookings.Delete("/:id", adminGate, ctl.Delete)
}
