package console

import (
	"strconv"
	"strings"

	"hotel-simulator/internal/domain/room"
	"hotel-simulator/internal/usecase"
)

func availabilityLabel(available bool) string {
	if available {
		return "Yes"
	}
	return "No"
}

func (s *Session) amount(v float64) string {
	return s.currency + strconv.FormatFloat(v, 'f', -1, 64)
}

func (s *Session) renderRooms(rooms []usecase.RoomView) {
	s.p.println("Room details:")
	for _, r := range rooms {
		prefix := "Room Number"
		if r.FareClass != room.FareStandard.String() {
			prefix = r.FareClass + " Room Number"
		}
		s.p.printf("%s: %d, Rate: %s, Available: %s\n",
			prefix, r.Number, s.amount(r.Rate), availabilityLabel(r.Available))
	}
}

func (s *Session) renderCustomers(customers []usecase.CustomerView) {
	s.p.println("Customer details:")
	if len(customers) == 0 {
		s.p.println("No customers yet.")
		return
	}
	for _, c := range customers {
		s.p.printf("Customer ID: %d, Name: %s, Phone: %s, National ID: %s, Address: %s, Loyalty Points: %d\n",
			c.ID, c.Name, c.Phone, c.NationalID, c.Address, c.LoyaltyPoints)
		s.p.printf("Booked on: %s\n", c.BookingDate)
		s.p.printf("Guests: %s\n", strings.Join(c.GuestNames, " "))
	}
}

func (s *Session) renderBooking(result *usecase.BookingResult) {
	if result.Created {
		s.p.printf("Customer ID assigned: %d\n", result.CustomerID)
	} else {
		s.p.printf("Welcome back! Customer ID: %d\n", result.CustomerID)
	}
	s.p.printf("Room(s) booked successfully for %s. Total bill: %s\n",
		result.CustomerName, s.amount(result.TotalBill))
}

func (s *Session) renderOffer(offer *usecase.OfferView) {
	s.p.printf("Offers for %s: \n", offer.CustomerName)
	if offer.Eligible {
		s.p.printf("You are eligible for a %s%% discount!\n", strconv.FormatFloat(offer.PercentOff, 'f', -1, 64))
		return
	}
	s.p.println("No offers available yet. Keep collecting points!")
}
