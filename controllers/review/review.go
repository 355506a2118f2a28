package reviewControllers

import (
	"context"
	"errors"

	"portfolio/database"
	"portfolio/logger"
	"portfolio/metrics"
	"portfolio/middleware"
	"portfolio/models"
	reviewValidators "portfolio/validators/review"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type notifier interface {
	ReviewCreated(ctx context.Context, r models.Review)
}

type Controller struct {
	store    *database.Store[models.Review]
	notifier notifier
	log      *zap.Logger
}

func New(store *database.Store[models.Review], n notifier, log *zap.Logger) *Controller {
	return &Controller{store: store, notifier: n, log: log}
}

func (ctl *Controller) List(c *fiber.Ctx) error {
	reviews, err := ctl.store.List(c.UserContext())
	if err != nil {
		ctl.logger(c).Error("Failed to fetch reviews", zap.Error(err))
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to fetch reviews!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, reviews)
}

// Create persists the validated review, then notifies. The notification
// outcome never changes the response.
func (ctl *Controller) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals(reviewValidators.LocalsKey).(*reviewValidators.CreateReviewRequest)
	if !ok {
		return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	review := reqData.ToModel()
	if err := ctl.store.Create(c.UserContext(), &review); err != nil {
		ctl.logger(c).Error("Failed to submit review", zap.Error(err))
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to submit review!")
	}
	metrics.IncrementCreated("review")

	ctl.notifier.ReviewCreated(c.UserContext(), review)

	return middleware.JsonResponse(c, fiber.StatusCreated, review)
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
		ctl.logger(c).Error("Failed to delete review", zap.Int("record_id", id), zap.Error(err))
		return middleware.DetailResponse(c, fiber.StatusInternalServerError, "Failed to delete review!")
	}
	metrics.IncrementDeleted("review")
	ctl.logger(c).Info("Review deleted", zap.Int("record_id", id))

	return c.SendStatus(fiber.StatusNoContent)
}

func (ctl *Controller) logger(c *fiber.Ctx) *zap.Logger {
	rid, _ := c.Locals(logger.RequestIDKey).(string)
	return logger.WithRequest(ctl.log, rid)
}
