package room

import "errors"

var ErrRoomAlreadyReserved = errors.New("room is already reserved")

type Room struct {
	number    int
	class     FareClass
	rate      Money
	available bool
}

func NewRoom(number int, class FareClass) *Room {
	return &Room{
		number:    number,
		class:     class,
		rate:      class.BaseRate(),
		available: true,
	}
}

func (r *Room) reserve() error {
	if !r.available {
		return ErrRoomAlreadyReserved
	}
	r.available = false
	return nil
}

func (r *Room) Number() int         { return r.number }
func (r *Room) Class() FareClass    { return r.class }
func (r *Room) Rate() Money         { return r.rate }
func (r *Room) IsAvailable() bool   { return r.available }
func (r *Room) Multiplier() float64 { return r.class.Multiplier() }
