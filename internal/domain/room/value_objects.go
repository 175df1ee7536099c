package room

import "strconv"

const minorUnitsPerMajor = 100

// Money is an amount in minor currency units (paise).
type Money struct {
	minor int64
}

func NewMoney(minor int64) Money {
	return Money{minor: minor}
}

func MoneyFromMajor(major int64) Money {
	return Money{minor: major * minorUnitsPerMajor}
}

func (m Money) Minor() int64 {
	return m.minor
}

func (m Money) Major() float64 {
	return float64(m.minor) / minorUnitsPerMajor
}

func (m Money) Add(other Money) Money {
	return Money{minor: m.minor + other.minor}
}

// String renders the major amount without trailing zeros, e.g. "18000" or "12.5".
func (m Money) String() string {
	return strconv.FormatFloat(m.Major(), 'f', -1, 64)
}
