package bookingControllers

import (
	"context"
	"errors"

	"portfolio/database"
	"portfolio/logger"
	"portfolio/metrics"
	"portfolio/middleware"
	"portfolio/models"
	bookingValidators "portfolio/validators/booking"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type notifier interface {
	BookingCreated(ctx context.Context, b models.Booking)
}

type Controller struct {
	store    *database.Store[models.Booking]
	notifier notifier
	log      *zap.Logger
}

func New(store *database.Store[models.Booking], n notifier, log *zap.Logger) *Controller {
	return &Controller{store: store, notifier: n, log: log}
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	bookings, err := ctl.store.List(c.UserContext())
	if err != nil {
		ctl.logger(c).Error("Failed to fetch bookings", zap.Error(err))
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to fetch bookings!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, bookings)
}

// Create persists the validated booking, then notifies. The notification
// outcome never changes the response.
func (ctl *Controller) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals(bookingValidators.LocalsKey).(*bookingValidators.CreateBookingRequest)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	booking := reqData.ToModel()
	if err := ctl.store.Create(c.UserContext(), &booking); err != nil {
		ctl.logger(c).Error("Failed to submit booking", zap.Error(err))
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to submit booking!")
	}
	metrics.IncrementCreated("booking")

	ctl.notifier.BookingCreated(c.UserContext(), booking)

	return middleware.JsonResponse(c, fiber.StatusCreated, booking)
}

func (ctl *Controller) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.DetailResponse(c, fiber.StatusNotFound, "Not found.")
	}

	if err := ctl.store.Delete(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return middleware.DetailResponse(c, fiber.StatusNotFound, "Not found.")
		}
		ctl.logger(c).Error("Failed to delete booking", zap.Int("record_id", id), zap.Error(err))
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to delete booking!")
	}
	metrics.IncrementDeleted("booking")
	ctl.logger(c).Info("Booking deleted", zap.Int("record_id", id))

	return c.SendStatus(fiber.StatusNoContent)
}

func (ctl *Controller) logger(c *fiber.Ctx) *zap.Logger {
	rid, _ := c.Locals(logger.RequestIDKey).(string)
	return logger.WithRequest(ctl.log, rid)
}
