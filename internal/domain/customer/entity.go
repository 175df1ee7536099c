package customer

import "slices"

// Profile is what a customer supplies on their first booking.
type Profile struct {
	Name       string
	Phone      string
	NationalID string
	Address    string
	GuestCount int
	GuestNames []string
}

type Customer struct {
	id            int
	name          string
	phone         string
	nationalID    string
	address       string
	guestCount    int
	guestNames    []string
	loyaltyPoints int
	bookingDate   string
}

func newCustomer(id int, p Profile, points int, bookingDate string) *Customer {
	c := &Customer{
		id:          id,
		name:        p.Name,
		phone:       p.Phone,
		nationalID:  p.NationalID,
		address:     p.Address,
		guestCount:  p.GuestCount,
		guestNames:  slices.Clone(p.GuestNames),
		bookingDate: bookingDate,
	}
	c.addPoints(points)
	return c
}

func (c *Customer) addPoints(points int) {
	if points <= 0 {
		return
	}
	c.loyaltyPoints += points
}

// recordRepeatBooking keeps the stored profile and guest list as they were on
// the first booking.
func (c *Customer) recordRepeatBooking(points int, bookingDate string) {
	c.addPoints(points)
	c.bookingDate = bookingDate
}

func (c *Customer) snapshot() *Customer {
	cp := *c
	cp.guestNames = slices.Clone(c.guestNames)
	return &cp
}

func (c *Customer) ID() int              { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) NationalID() string   { return c.nationalID }
func (c *Customer) Address() string      { return c.address }
func (c *Customer) GuestCount() int      { return c.guestCount }
func (c *Customer) GuestNames() []string { return slices.Clone(c.guestNames) }
func (c *Customer) LoyaltyPoints() int   { return c.loyaltyPoints }
func (c *Customer) BookingDate() string  { return c.bookingDate }
