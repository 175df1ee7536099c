package clock

import (
	"fmt"
	"time"
)

// DateLayout is the format booking dates are recorded in.
const DateLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant until moved.
type FixedClock struct {
	currentTime time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{currentTime: t}
}

// ParseFixedClock pins the clock to midnight UTC of a YYYY-MM-DD date.
func ParseFixedClock(date string) (*FixedClock, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid fixed date %q: %w", date, err)
	}
	return NewFixedClock(t), nil
}

func (c *FixedClock) Now() time.Time {
	return c.currentTime
}

func (c *FixedClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *FixedClock) AddDays(days int) {
	c.currentTime = c.currentTime.AddDate(0, 0, days)
}

// Today formats the clock's current date with DateLayout.
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}
