package room

import "fmt"

const (
	StandardRoomCount = 5
	DeluxeRoomCount   = 5
)

type InsufficientInventoryError struct {
	Class     FareClass
	Requested int
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("not enough %s rooms available: requested %d, only %d available",
		e.Class, e.Requested, e.Available)
}

// Reservation is the outcome of Catalog.Reserve.
type Reservation struct {
	Class       FareClass
	RoomNumbers []int
	Total       Money
}

// Catalog holds the fixed room inventory. It is not safe for concurrent use;
// callers serialize access.
type Catalog struct {
	rooms []*Room
}

// NewCatalog returns the hotel inventory: rooms 0-4 are Standard and rooms
// 5-9 are Deluxe, all available.
func NewCatalog() *Catalog {
	rooms := make([]*Room, 0, StandardRoomCount+DeluxeRoomCount)
	for i := 0; i < StandardRoomCount; i++ {
		rooms = append(rooms, NewRoom(i, FareStandard))
	}
	for i := StandardRoomCount; i < StandardRoomCount+DeluxeRoomCount; i++ {
		rooms = append(rooms, NewRoom(i, FareDeluxe))
	}
	return &Catalog{rooms: rooms}
}

func (c *Catalog) CountAvailable(class FareClass) int {
	count := 0
	for _, r := range c.rooms {
		if r.class == class && r.available {
			count++
		}
	}
	return count
}

// EnsureAvailable returns an *InsufficientInventoryError when fewer than
// roomsNeeded rooms of class are free.
func (c *Catalog) EnsureAvailable(class FareClass, roomsNeeded int) error {
	available := c.CountAvailable(class)
	if available < roomsNeeded {
		return &InsufficientInventoryError{
			Class:     class,
			Requested: roomsNeeded,
			Available: available,
		}
	}
	return nil
}

// Reserve marks the first roomsNeeded available rooms of class, in ascending
// room number order, as unavailable and sums their prices. Availability must
// have been checked beforehand; fewer rooms are reserved if not enough are free.
func (c *Catalog) Reserve(class FareClass, roomsNeeded, nights int) Reservation {
	res := Reservation{Class: class, Total: NewMoney(0)}
	for _, r := range c.rooms {
		if len(res.RoomNumbers) >= roomsNeeded {
			break
		}
		if r.class != class {
			continue
		}
		if err := r.reserve(); err != nil {
			continue
		}
		res.RoomNumbers = append(res.RoomNumbers, r.number)
		res.Total = res.Total.Add(PricePerRoom(class, nights, roomsNeeded))
	}
	return res
}

// Rooms returns copies of all rooms in room number order.
func (c *Catalog) Rooms() []Room {
	out := make([]Room, 0, len(c.rooms))
	for _, r := range c.rooms {
		out = append(out, *r)
	}
	return out
}
