package response_test

import (
	"testing"

	"hotel-simulator/internal/handler/dto/response"
	"hotel-simulator/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRoomViews(t *testing.T) {
	views := []usecase.RoomView{
		{Number: 0, FareClass: "Standard", Rate: 10000, Multiplier: 1, Available: false},
		{Number: 5, FareClass: "Deluxe", Rate: 15000, Multiplier: 1.2, Available: true},
	}

	got, err := response.FromRoomViews(views)
	require.NoError(t, err)

	assert.Equal(t, []response.RoomResponse{
		{Number: 0, FareClass: "Standard", Rate: 10000, Multiplier: 1, Available: false},
		{Number: 5, FareClass: "Deluxe", Rate: 15000, Multiplier: 1.2, Available: true},
	}, got)
}

func TestFromCustomerViews(t *testing.T) {
	views := []usecase.CustomerView{{
		ID:            1,
		Name:          "Alice",
		Phone:         "9876543210",
		NationalID:    "1234-5678-9012",
		Address:       "12 MG Road, Pune",
		GuestCount:    2,
		GuestNames:    []string{"Alice", "Bob"},
		LoyaltyPoints: 30,
		BookingDate:   "2024-11-07",
	}}

	got, err := response.FromCustomerViews(views)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, "1234-5678-9012", got[0].NationalID)
	assert.Equal(t, []string{"Alice", "Bob"}, got[0].GuestNames)
	assert.Equal(t, 30, got[0].LoyaltyPoints)

	got[0].GuestNames[0] = "Mallory"
	assert.Equal(t, "Alice", views[0].GuestNames[0], "response must not share the view's slice")
}

func TestFromCustomerViews_Empty(t *testing.T) {
	got, err := response.FromCustomerViews(nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFromOfferView(t *testing.T) {
	got, err := response.FromOfferView(&usecase.OfferView{
		CustomerID:    3,
		CustomerName:  "Long",
		LoyaltyPoints: 100,
		Eligible:      true,
		PercentOff:    10,
	})
	require.NoError(t, err)

	assert.Equal(t, &response.OfferResponse{
		CustomerID:    3,
		CustomerName:  "Long",
		LoyaltyPoints: 100,
		Eligible:      true,
		PercentOff:    10,
	}, got)
}
