package bookingValidators

import (
	"time"

	"portfolio/middleware"
	"portfolio/models"
	"portfolio/validators"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// LocalsKey is where CreateBooking leaves the validated request.
const LocalsKey = "validatedBooking"

type CreateBookingRequest struct {
	Name               string  `json:"name" validate:"required,max=200"`
	Email              string  `json:"email" validate:"required,max=254,email"`
	Phone              string  `json:"phone" validate:"required,max=20,phone"`
	Company            *string `json:"company" validate:"omitempty,max=200"`
	ProjectType        string  `json:"project_type" validate:"required,max=100"`
	ProjectDescription string  `json:"project_description" validate:"required"`
	Timeline           string  `json:"timeline" validate:"required,max=50"`
	Budget             *string `json:"budget" validate:"omitempty,max=50"`
	PreferredContact   string  `json:"preferred_contact" validate:"required,max=50"`
	PreferredDate      *string `json:"preferred_date" validate:"omitempty,datetime=2006-01-02"`
	PreferredTime      *string `json:"preferred_time" validate:"omitempty,clocktime"`
	AdditionalNotes    *string `json:"additional_notes"`
}

// Validate trims the request in place and returns per-field errors.
func (r *CreateBookingRequest) Validate() validators.FieldErrors {
	validators.Trim(&r.Name, &r.Email, &r.Phone, &r.ProjectType, &r.ProjectDescription, &r.Timeline, &r.PreferredContact)
	validators.TrimOptional(&r.Company, &r.Budget, &r.PreferredDate, &r.PreferredTime, &r.AdditionalNotes)
	return validators.Struct(r, nil)
}

// ToModel converts a request that already passed Validate.
func (r *CreateBookingRequest) ToModel() models.Booking {
	b := models.Booking{
		Name:               r.Name,
		Email:              r.Email,
		Phone:              r.Phone,
		Company:            r.Company,
		ProjectType:        r.ProjectType,
		ProjectDescription: r.ProjectDescription,
		Timeline:           r.Timeline,
		Budget:             r.Budget,
		PreferredContact:   r.PreferredContact,
		AdditionalNotes:    r.AdditionalNotes,
	}

	if r.PreferredDate != nil {
		if d, err := time.Parse(models.DateLayout, *r.PreferredDate); err == nil {
			date := datatypes.Date(d)
			b.PreferredDate = &date
		}
	}
	if r.PreferredTime != nil {
		if t, err := validators.ParseClock(*r.PreferredTime); err == nil {
			clock := datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0)
			b.PreferredTime = &clock
		}
	}
	return b
}

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateBookingRequest)
		if err := c.BodyParser(reqData); err != nil {
			if errors := validators.DecodeErrors(err); errors != nil {
				return middleware.ValidationErrorResponse(c, errors)
			}
			return middleware.DetailResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if errors := reqData.Validate(); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals(LocalsKey, reqData)
		return c.Next()
	}
}
