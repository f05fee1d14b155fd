package components

import (
	"time"

	"band-booking/internal/domain/booking"
	"band-booking/internal/pkg/clock"
	"band-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		clock.NewRealClock,
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		NewBookingLocation,
		NewBookingPolicy,
		booking.NewValidator,
	),
)

func NewBookingLocation(cfg config.BookingConfig) (*time.Location, error) {
	return cfg.Location()
}

func NewBookingPolicy(loc *time.Location, cfg config.BookingConfig) (*booking.Policy, error) {
	return booking.NewPolicy(loc, cfg.Buffer)
}
