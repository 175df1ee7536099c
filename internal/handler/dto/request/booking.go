package request

import (
	"strings"

	"hotel-simulator/internal/usecase"
)

type CreateBookingRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	// FareClass is 0 for Standard, 1 for Deluxe. Other values reach the use case
	// so that it reports them as an invalid room type. Ranges of nights and
	// rooms_needed are checked there too, after the fare class.
	FareClass   *int     `json:"fare_class" binding:"required"`
	Nights      int      `json:"nights"`
	RoomsNeeded *int     `json:"rooms_needed"`
	GuestNames  []string `json:"guest_names" binding:"omitempty,dive,required"`
	Phone       string   `json:"phone"`
	NationalID  string   `json:"national_id"`
	Address     string   `json:"address"`
}

// ToParams fills the defaults: one room when rooms_needed is omitted, and the
// guest count taken from the guest names.
func (r CreateBookingRequest) ToParams() usecase.BookRoomParams {
	rooms := 1
	if r.RoomsNeeded != nil {
		rooms = *r.RoomsNeeded
	}

	names := make([]string, 0, len(r.GuestNames))
	for _, n := range r.GuestNames {
		names = append(names, strings.TrimSpace(n))
	}

	return usecase.BookRoomParams{
		CustomerName: strings.TrimSpace(r.CustomerName),
		FareClass:    *r.FareClass,
		Nights:       r.Nights,
		RoomsNeeded:  rooms,
		GuestCount:   len(names),
		GuestNames:   names,
		Phone:        strings.TrimSpace(r.Phone),
		NationalID:   strings.TrimSpace(r.NationalID),
		Address:      strings.TrimSpace(r.Address),
	}
}
