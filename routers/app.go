package routers

import (
	"context"
	"strings"
	"time"

	"portfolio/config"
	bookingController "portfolio/controllers/booking"
	reviewController "portfolio/controllers/review"
	"portfolio/database"
	"portfolio/metrics"
	"portfolio/middleware"
	"portfolio/models"
	"portfolio/routers/bookingRoutes"
	"portfolio/routers/reviewRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Notifier receives every successfully persisted record.
type Notifier interface {
	ReviewCreated(ctx context.Context, r models.Review)
	BookingCreated(ctx context.Context, b models.Booking)
}

type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Notifier Notifier
	Log      *zap.Logger
	// AccessLog disables the request log line when false.
	AccessLog bool
}

func NewApp(deps Deps) *fiber.App {
	cfg := deps.Config

	app := fiber.New(fiber.Config{
		AppName:      "portfolio",
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	allowOrigins := "*"
	if !cfg.CORSAllowAll {
		allowOrigins = strings.Join(cfg.FrontendOrigins, ",")
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + middleware.AdminKeyHeader,
	}))

	if deps.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency} ${locals:requestid}\n",
		}))
	}
	app.Use(metrics.Middleware())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := database.Ping(ctx, deps.DB); err != nil {
			deps.Log.Error("Health check failed", zap.Error(err))
			return middleware.DetailResponse(c, fiber.StatusServiceUnavailable, "Database unavailable!")
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	adminGate := middleware.AdminGate(cfg.AdminAPIKey, cfg.AdminAPIKeyBcrypt)

	reviews := reviewController.New(database.NewStore[models.Review](deps.DB), deps.Notifier, deps.Log)
	bookings := bookingController.New(database.NewStore[models.Booking](deps.DB), deps.Notifier, deps.Log)

	api := app.Group("/api")
	reviewRoutes.SetupReviewRoutes(api, reviews, adminGate)
	bookingRoutes.SetupBookingRoutes(api, bookings, adminGate)

	return app
}
