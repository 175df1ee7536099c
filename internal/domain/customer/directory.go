package customer

import "errors"

var ErrNotFound = errors.New("customer not found")

// Directory keeps customers in registration order and owns the ID sequence.
// It is not safe for concurrent use; callers serialize access.
type Directory struct {
	customers []*Customer
	byID      map[int]*Customer
	lastID    int
}

func NewDirectory() *Directory {
	return &Directory{
		byID: make(map[int]*Customer),
	}
}

// FindByName returns the first customer registered under exactly name.
func (d *Directory) FindByName(name string) (*Customer, error) {
	c := d.findByName(name)
	if c == nil {
		return nil, ErrNotFound
	}
	return c.snapshot(), nil
}

// findByName matches names exactly; "alice" and "Alice" are different customers.
func (d *Directory) findByName(name string) *Customer {
	for _, c := range d.customers {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (d *Directory) FindByID(id int) (*Customer, error) {
	c, ok := d.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c.snapshot(), nil
}

// CreateOrUpdate registers a new customer under the next ID, or credits an
// existing customer with the same name. Repeat bookings only add points and
// move the booking date.
func (d *Directory) CreateOrUpdate(p Profile, pointsEarned int, bookingDate string) (id int, created bool) {
	if c := d.findByName(p.Name); c != nil {
		c.recordRepeatBooking(pointsEarned, bookingDate)
		return c.id, false
	}

	d.lastID++
	c := newCustomer(d.lastID, p, pointsEarned, bookingDate)
	d.customers = append(d.customers, c)
	d.byID[c.id] = c
	return c.id, true
}

// List returns snapshots of all customers in registration order.
func (d *Directory) List() []*Customer {
	out := make([]*Customer, 0, len(d.customers))
	for _, c := range d.customers {
		out = append(out, c.snapshot())
	}
	return out
}
