package builder

import (
	reqdto "hotel-simulator/internal/handler/dto/request"
	"hotel-simulator/internal/usecase"
)

type BookingBuilder struct {
	CustomerName string
	FareClass    int
	Nights       int
	RoomsNeeded  int
	GuestNames   []string
	Phone        string
	NationalID   string
	Address      string
	BookingDate  string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		CustomerName: "Alice",
		FareClass:    0,
		Nights:       3,
		RoomsNeeded:  2,
		GuestNames:   []string{"Alice", "Bob", "Carol"},
		Phone:        "9876543210",
		NationalID:   "1234-5678-9012",
		Address:      "12 MG Road, Pune",
		BookingDate:  "2024-11-07",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	fareClass := b.FareClass
	rooms := b.RoomsNeeded
	return reqdto.CreateBookingRequest{
		CustomerName: b.CustomerName,
		FareClass:    &fareClass,
		Nights:       b.Nights,
		RoomsNeeded:  &rooms,
		GuestNames:   append([]string(nil), b.GuestNames...),
		Phone:        b.Phone,
		NationalID:   b.NationalID,
		Address:      b.Address,
	}
}

func (b *BookingBuilder) BuildParams() usecase.BookRoomParams {
	return b.BuildCreateRequestDTO().ToParams()
}

// BuildResult returns the result a first booking of this request produces on
// a fresh hotel.
func (b *BookingBuilder) BuildResult() *usecase.BookingResult {
	fareClass := "Standard"
	rate, multiplier := 10000.0, 1.0
	firstRoom := 0
	if b.FareClass == 1 {
		fareClass = "Deluxe"
		rate, multiplier = 15000.0, 1.2
		firstRoom = 5
	}

	rooms := make([]int, b.RoomsNeeded)
	for i := range rooms {
		rooms[i] = firstRoom + i
	}

	n := float64(b.RoomsNeeded)
	return &usecase.BookingResult{
		CustomerID:   1,
		Created:      true,
		CustomerName: b.CustomerName,
		FareClass:    fareClass,
		RoomNumbers:  rooms,
		Nights:       b.Nights,
		TotalBill:    n * rate * float64(b.Nights) * n * multiplier,
		PointsEarned: b.Nights * 10,
		BookingDate:  b.BookingDate,
	}
}

func (b *BookingBuilder) BuildCustomerView() usecase.CustomerView {
	return usecase.CustomerView{
		ID:            1,
		Name:          b.CustomerName,
		Phone:         b.Phone,
		NationalID:    b.NationalID,
		Address:       b.Address,
		GuestCount:    len(b.GuestNames),
		GuestNames:    append([]string(nil), b.GuestNames...),
		LoyaltyPoints: b.Nights * 10,
		BookingDate:   b.BookingDate,
	}
}
