package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"daybook/pkg/logger"
	"daybook/pkg/model"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// BookingValidator is the completeness gate on normalized bookings: the
// boundary never serves a record the normalizer left structurally incomplete.
type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		logger:   log,
	}
}

func (bv *BookingValidator) Validate(booking *model.Booking) error {
	err := bv.validate.Struct(booking)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "booking", Message: err.Error()}}
	}

	var errs ValidationErrors
	for _, fieldErr := range validationErrors {
		errs = append(errs, ValidationError{
			Field:   fieldErr.Field(),
			Message: fmt.Sprintf("failed %s validation", fieldErr.Tag()),
		})
	}
	return errs
}
