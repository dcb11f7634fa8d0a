package rest

import (
	"errors"
	"fmt"

	"github.com/dhank77/undangan.love/internal/application/dto"
	"github.com/dhank77/undangan.love/internal/application/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// BadRequestError marks a body that could not be decoded.
type BadRequestError struct {
	Err error
}

func (e BadRequestError) Error() string {
	return fmt.Sprintf("malformed request body, %v", e.Err)
}

func (e BadRequestError) Unwrap() error { return e.Err }

// ErrorHandler renders every error returned by a handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		validation  errs.ValidationError
		notFound    errs.NotFoundError
		unauth      errs.UnauthorizedError
		unavailable errs.UnavailableError
		badRequest  BadRequestError
		param       ParamError
		fiberErr    *fiber.Error
	)

	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Error: "validation failed", Fields: validation.Fields})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: notFound.Error()})
	case errors.As(err, &unauth):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "unauthorized"})
	case errors.As(err, &unavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Error: unavailable.Error()})
	case errors.As(err, &badRequest):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: badRequest.Error()})
	case errors.As(err, &param):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: param.Error()})
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{Error: fiberErr.Message})
	}

	logrus.WithError(err).WithField("request_id", c.Locals(requestIDKey)).Error("unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
}
