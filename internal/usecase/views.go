package usecase

// Read models handed to the console and HTTP layers. Amounts are in major
// currency units.

type RoomView struct {
	Number     int     `json:"number"`
	FareClass  string  `json:"fare_class"`
	Rate       float64 `json:"rate"`
	Multiplier float64 `json:"multiplier"`
	Available  bool    `json:"available"`
}

type CustomerView struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	NationalID    string   `json:"national_id"`
	Address       string   `json:"address"`
	GuestCount    int      `json:"guest_count"`
	GuestNames    []string `json:"guest_names"`
	LoyaltyPoints int      `json:"loyalty_points"`
	BookingDate   string   `json:"booking_date"`
}

type OfferView struct {
	CustomerID    int     `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	LoyaltyPoints int     `json:"loyalty_points"`
	Eligible      bool    `json:"eligible"`
	PercentOff    float64 `json:"percent_off"`
	PointsToGo    int     `json:"points_to_go"`
}

type BookingResult struct {
	CustomerID   int     `json:"customer_id"`
	Created      bool    `json:"created"`
	CustomerName string  `json:"customer_name"`
	FareClass    string  `json:"fare_class"`
	RoomNumbers  []int   `json:"room_numbers"`
	Nights       int     `json:"nights"`
	TotalBill    float64 `json:"total_bill"`
	PointsEarned int     `json:"points_earned"`
	BookingDate  string  `json:"booking_date"`
}
