//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"band-booking/internal/domain/booking"
	"band-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationCase struct {
	name       string
	mutate     func(*builder.BookingRequestBuilder)
	wantErrors map[string]string
}

func TestValidator(t *testing.T) {
	v, err := booking.NewValidator()
	require.NoError(t, err)

	runValidation := func(t *testing.T, cases []validationCase) {
		t.Helper()
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewBookingRequestBuilder()
				if tc.mutate != nil {
					b.With(tc.mutate)
				}
				result := v.Validate(b.BuildDomain())
				if len(tc.wantErrors) == 0 {
					assert.True(t, result.IsValid(), "unexpected errors: %v", result.Errors)
					return
				}
				assert.Equal(t, booking.FieldErrors(tc.wantErrors), result.Errors)
			})
		}
	}

	t.Run("basic success case", func(t *testing.T) {
		result := v.Validate(builder.NewBookingRequestBuilder().BuildDomain())
		assert.True(t, result.IsValid())
		assert.Empty(t, result.Errors.Fields())
	})

	t.Run("contact", func(t *testing.T) {
		runValidation(t, []validationCase{
			{
				name:   "phone only",
				mutate: func(b *builder.BookingRequestBuilder) { b.WithContact("555-123-4567", "") },
			},
			{
				name:   "email only",
				mutate: func(b *builder.BookingRequestBuilder) { b.WithContact("", "jane@example.com") },
			},
			{
				name:       "neither phone nor email",
				mutate:     func(b *builder.BookingRequestBuilder) { b.WithContact("", "") },
				wantErrors: map[string]string{booking.FieldContactPhone: "Please provide phone or email"},
			},
			{
				name:       "whitespace-only contact counts as missing",
				mutate:     func(b *builder.BookingRequestBuilder) { b.WithContact("   ", " ") },
				wantErrors: map[string]string{booking.FieldContactPhone: "Please provide phone or email"},
			},
			{
				name:       "phone with nine digits",
				mutate:     func(b *builder.BookingRequestBuilder) { b.WithContact("555-123-456", "") },
				wantErrors: map[string]string{booking.FieldContactPhone: "Valid 10-digit phone number required"},
			},
			{
				name:       "phone with country code",
				mutate:     func(b *builder.BookingRequestBuilder) { b.WithContact("+1 555 123 4567", "jane@example.com") },
				wantErrors: map[string]string{booking.FieldContactPhone: "Valid 10-digit phone number required"},
			},
			{
				name:       "email without domain dot",
				mutate:     func(b *builder.BookingRequestBuilder) { b.WithContact("", "jane@example") },
				wantErrors: map[string]string{booking.FieldContactEmail: "Valid email address required"},
			},
			{
				name:   "contact name at minimum length",
				mutate: func(b *builder.BookingRequestBuilder) { b.ContactName = "Jo" },
			},
			{
				name:       "contact name too short after trimming",
				mutate:     func(b *builder.BookingRequestBuilder) { b.ContactName = " J " },
				wantErrors: map[string]string{booking.FieldContactName: "Contact name is required"},
			},
		})
	})

	t.Run("event details", func(t *testing.T) {
		runValidation(t, []validationCase{
			{
				name:       "missing event type",
				mutate:     func(b *builder.BookingRequestBuilder) { b.EventType = "" },
				wantErrors: map[string]string{booking.FieldEventType: "Event type is required"},
			},
			{
				name:   "duration lower bound",
				mutate: func(b *builder.BookingRequestBuilder) { b.WithDuration(1) },
			},
			{
				name:   "duration upper bound",
				mutate: func(b *builder.BookingRequestBuilder) { b.WithDuration(12) },
			},
			{
				name:   "fractional duration",
				mutate: func(b *builder.BookingRequestBuilder) { b.WithDuration(2.5) },
			},
			{
				name:       "duration below range",
				mutate:     func(b *builder.BookingRequestBuilder) { b.WithDuration(0.5) },
				wantErrors: map[string]string{booking.FieldDuration: "Duration must be between 1 and 12 hours"},
			},
			{
				name:       "duration above range",
				mutate:     func(b *builder.BookingRequestBuilder) { b.WithDuration(12.5) },
				wantErrors: map[string]string{booking.FieldDuration: "Duration must be between 1 and 12 hours"},
			},
			{
				name:       "venue address too short",
				mutate:     func(b *builder.BookingRequestBuilder) { b.VenueAddress = "1 Main St" },
				wantErrors: map[string]string{booking.FieldVenueAddress: "Valid venue address is required"},
			},
			{
				name:   "description exactly 20 characters",
				mutate: func(b *builder.BookingRequestBuilder) { b.EventDescription = strings.Repeat("a", 20) },
			},
			{
				name:   "description 19 characters",
				mutate: func(b *builder.BookingRequestBuilder) { b.EventDescription = strings.Repeat("a", 19) },
				wantErrors: map[string]string{
					booking.FieldEventDescription: "Please provide at least 20 characters describing the event",
				},
			},
			{
				name:       "missing date",
				mutate:     func(b *builder.BookingRequestBuilder) { b.Date = "" },
				wantErrors: map[string]string{booking.FieldDate: "Date is required"},
			},
			{
				name:       "missing time",
				mutate:     func(b *builder.BookingRequestBuilder) { b.Time = "" },
				wantErrors: map[string]string{booking.FieldTime: "Time is required"},
			},
		})
	})

	t.Run("reports every failure at once", func(t *testing.T) {
		result := v.Validate(booking.Request{})
		assert.False(t, result.IsValid())
		assert.Equal(t, []string{
			booking.FieldContactName,
			booking.FieldContactPhone,
			booking.FieldDate,
			booking.FieldDuration,
			booking.FieldEventDescription,
			booking.FieldEventType,
			booking.FieldTime,
			booking.FieldVenueAddress,
			booking.FieldVenueName,
		}, result.Errors.Fields())
		assert.Equal(t, "Please provide phone or email", result.Errors[booking.FieldContactPhone])
	})

	t.Run("is pure", func(t *testing.T) {
		req := builder.NewBookingRequestBuilder().With(func(b *builder.BookingRequestBuilder) {
			b.ContactName = "  Jane Smith  "
		}).BuildDomain()
		first := v.Validate(req)
		second := v.Validate(req)
		assert.Equal(t, first, second)
		assert.Equal(t, "  Jane Smith  ", req.ContactName)
	})
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, booking.IsValidPhone("(555) 123-4567"))
	assert.True(t, booking.IsValidPhone("555.123.4567"))
	assert.False(t, booking.IsValidPhone("15551234567"))
	assert.False(t, booking.IsValidPhone(""))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, booking.IsValidEmail("a@b.co"))
	assert.False(t, booking.IsValidEmail("a b@c.d"))
	assert.False(t, booking.IsValidEmail("@b.co"))
	assert.False(t, booking.IsValidEmail("a@b"))
}
