package room

import "errors"

var ErrInvalidFareClass = errors.New("invalid fare class: select 0 for Standard or 1 for Deluxe")

// FareClass is the room category. The selector values 0 and 1 are the ones
// customers type at the booking prompt.
type FareClass int

const (
	FareStandard FareClass = iota
	FareDeluxe
)

const (
	standardRateMajor = 10000
	deluxeRateMajor   = 15000

	standardMultiplierPercent = 100
	deluxeMultiplierPercent   = 120
)

func NewFareClass(selector int) (FareClass, error) {
	c := FareClass(selector)
	if !c.IsValid() {
		return 0, ErrInvalidFareClass
	}
	return c, nil
}

func (c FareClass) IsValid() bool {
	switch c {
	case FareStandard, FareDeluxe:
		return true
	default:
		return false
	}
}

func (c FareClass) String() string {
	switch c {
	case FareStandard:
		return "Standard"
	case FareDeluxe:
		return "Deluxe"
	default:
		return "Unknown"
	}
}

func (c FareClass) BaseRate() Money {
	if c == FareDeluxe {
		return MoneyFromMajor(deluxeRateMajor)
	}
	return MoneyFromMajor(standardRateMajor)
}

// MultiplierPercent is the surcharge applied on top of the base rate, 100 = none.
func (c FareClass) MultiplierPercent() int64 {
	if c == FareDeluxe {
		return deluxeMultiplierPercent
	}
	return standardMultiplierPercent
}

func (c FareClass) Multiplier() float64 {
	return float64(c.MultiplierPercent()) / 100.0
}
