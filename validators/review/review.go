package reviewValidators

import (
	"portfolio/middleware"
	"portfolio/models"
	"portfolio/validators"

	"github.com/gofiber/fiber/v2"
)

// LocalsKey is where CreateReview leaves the validated request.
const LocalsKey = "validatedReview"

type CreateReviewRequest struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Role    string  `json:"role" validate:"required,max=200"`
	Company string  `json:"company" validate:"required,max=200"`
	Email   *string `json:"email" validate:"omitempty,max=254,email"`
	Rating  *int    `json:"rating" validate:"required,min=1,max=5"`
	Review  string  `json:"review" validate:"required"`
}

var messages = map[string]string{
	"rating": "Rating must be between 1 and 5",
}

// Validate trims the request in place and returns per-field errors.
func (r *CreateReviewRequest) Validate() validators.FieldErrors {
	validators.Trim(&r.Name, &r.Role, &r.Company, &r.Review)
	validators.TrimOptional(&r.Email)
	return validators.Struct(r, messages)
}

func (r *CreateReviewRequest) ToModel() models.Review {
	return models.Review{
		Name:    r.Name,
		Role:    r.Role,
		Company: r.Company,
		Email:   r.Email,
		Rating:  *r.Rating,
		Review:  r.Review,
	}
}

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReviewRequest)
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
