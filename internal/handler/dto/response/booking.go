package response

import (
	"hotel-simulator/internal/usecase"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	Number     int     `json:"number"`
	FareClass  string  `json:"fare_class"`
	Rate       float64 `json:"rate"`
	Multiplier float64 `json:"multiplier"`
	Available  bool    `json:"available"`
}

type CustomerResponse struct {
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

type BookingResponse struct {
	CustomerID   int     `json:"customer_id"`
	NewCustomer  bool    `json:"new_customer"`
	CustomerName string  `json:"customer_name"`
	FareClass    string  `json:"fare_class"`
	RoomNumbers  []int   `json:"room_numbers"`
	Nights       int     `json:"nights"`
	TotalBill    float64 `json:"total_bill"`
	PointsEarned int     `json:"points_earned"`
	BookingDate  string  `json:"booking_date"`
}

type OfferResponse struct {
	CustomerID    int     `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	LoyaltyPoints int     `json:"loyalty_points"`
	Eligible      bool    `json:"eligible"`
	PercentOff    float64 `json:"percent_off"`
	PointsToGo    int     `json:"points_to_go"`
}

type InsufficientInventoryDetail struct {
	FareClass string `json:"fare_class"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

func FromRoomViews(views []usecase.RoomView) ([]RoomResponse, error) {
	res := make([]RoomResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

func FromCustomerViews(views []usecase.CustomerView) ([]CustomerResponse, error) {
	res := make([]CustomerResponse, 0, len(views))
	if err := copier.CopyWithOption(&res, &views, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return res, nil
}

func FromBookingResult(r *usecase.BookingResult) *BookingResponse {
	return &BookingResponse{
		CustomerID:   r.CustomerID,
		NewCustomer:  r.Created,
		CustomerName: r.CustomerName,
		FareClass:    r.FareClass,
		RoomNumbers:  r.RoomNumbers,
		Nights:       r.Nights,
		TotalBill:    r.TotalBill,
		PointsEarned: r.PointsEarned,
		BookingDate:  r.BookingDate,
	}
}

func FromOfferView(v *usecase.OfferView) (*OfferResponse, error) {
	var res OfferResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
