package booking

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"band-booking/internal/pkg/phone"

	"github.com/go-playground/validator/v10"
)

const (
	FieldContactName      = "contactName"
	FieldContactPhone     = "contactPhone"
	FieldContactEmail     = "contactEmail"
	FieldEventType        = "eventType"
	FieldDuration         = "duration"
	FieldVenueName        = "venueName"
	FieldVenueAddress     = "venueAddress"
	FieldEventDescription = "eventDescription"
	FieldDate             = "date"
	FieldTime             = "time"
)

const (
	msgContactMissing = "Please provide phone or email"
	msgPhoneInvalid   = "Valid 10-digit phone number required"
)

var fieldMessages = map[string]string{
	FieldContactName:      "Contact name is required",
	FieldContactPhone:     msgPhoneInvalid,
	FieldContactEmail:     "Valid email address required",
	FieldEventType:        "Event type is required",
	FieldDuration:         "Duration must be between 1 and 12 hours",
	FieldVenueName:        "Venue name is required",
	FieldVenueAddress:     "Valid venue address is required",
	FieldEventDescription: "Please provide at least 20 characters describing the event",
	FieldDate:             "Date is required",
	FieldTime:             "Time is required",
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps a request field name to a human-readable message.
type FieldErrors map[string]string

// Fields returns the failing field names in stable order.
func (f FieldErrors) Fields() []string {
	fields := make([]string, 0, len(f))
	for k := range f {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return fields
}

type ValidationResult struct {
	Errors FieldErrors
}

func (r ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() (*Validator, error) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("phone10", validatePhone10); err != nil {
		return nil, err
	}
	if err := v.RegisterValidation("contactemail", validateContactEmail); err != nil {
		return nil, err
	}

	return &Validator{validate: v}, nil
}

// IsValidPhone reports whether phone carries exactly ten digits once
// formatting characters are stripped.
func IsValidPhone(number string) bool {
	return len(phone.Digits(number)) == 10
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validatePhone10(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

func validateContactEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

// Validate checks every rule and reports all failures at once. It never
// contacts the calendar.
func (v *Validator) Validate(req Request) ValidationResult {
	normalized := req.Trimmed()

	result := ValidationResult{Errors: FieldErrors{}}

	if err := v.validate.Struct(normalized); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, fe := range validationErrs {
				result.Errors[fe.Field()] = fieldMessages[fe.Field()]
			}
		}
	}

	if normalized.ContactPhone == "" && normalized.ContactEmail == "" {
		result.Errors[FieldContactPhone] = msgContactMissing
	}

	return result
}
