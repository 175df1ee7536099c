package loyalty

const (
	PointsPerNight       = 10
	OfferThresholdPoints = 100
	OfferPercentOff      = 10.0
)

// PointsForStay is the number of loyalty points earned by a booking.
func PointsForStay(nights int) int {
	if nights <= 0 {
		return 0
	}
	return nights * PointsPerNight
}

type Discount struct {
	percentOff float64
}

func (d Discount) PercentOff() float64 {
	return d.percentOff
}

type Offer struct {
	points   int
	eligible bool
	discount Discount
}

// Evaluate decides which offer a point balance unlocks.
func Evaluate(points int) Offer {
	if points < OfferThresholdPoints {
		return Offer{points: points}
	}
	return Offer{
		points:   points,
		eligible: true,
		discount: Discount{percentOff: OfferPercentOff},
	}
}

func (o Offer) Points() int        { return o.points }
func (o Offer) Eligible() bool     { return o.eligible }
func (o Offer) Discount() Discount { return o.discount }

// PointsToGo is how many more points are needed to unlock the discount.
func (o Offer) PointsToGo() int {
	if o.eligible {
		return 0
	}
	return OfferThresholdPoints - o.points
}
