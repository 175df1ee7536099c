package components

import (
	"hotel-simulator/internal/domain/customer"
	"hotel-simulator/internal/domain/room"
	"hotel-simulator/internal/pkg/clock"
	"hotel-simulator/internal/pkg/config"
	"hotel-simulator/internal/pkg/errs"

	"go.uber.org/fx"
)

// DomainModule owns the in-memory hotel state. Both are created once per
// process and live until exit.
var DomainModule = fx.Module("domain",
	fx.Provide(
		room.NewCatalog,
		customer.NewDirectory,
		NewClock,
	),
)

// NewClock pins the booking date when HOTEL_BOOKING_DATE is set.
func NewClock(cfg config.Config) (clock.Clock, error) {
	if cfg.Hotel.BookingDate == "" {
		return clock.NewRealClock(), nil
	}
	fixed, err := clock.ParseFixedClock(cfg.Hotel.BookingDate)
	if err != nil {
		return nil, errs.Wrap(err, "invalid HOTEL_BOOKING_DATE")
	}
	return fixed, nil
}
