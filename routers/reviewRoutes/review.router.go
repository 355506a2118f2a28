package reviewRoutes

import (
	controller "portfolio/controllers/review"
	validator "portfolio/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(router fiber.Router, ctl *controller.Controller, adminGate fiber.Handler) {
	reviews := router.Group("/reviews")

	reviews.Get("/", ctl.List)
	reviews.Post("/", validator.CreateReview(), ctl.Create)
	reviews.Delete("/:id", adminGate, ctl.Delete)
}
