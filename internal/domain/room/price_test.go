package room_test

import (
	"testing"

	"hotel-simulator/internal/domain/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFareClass(t *testing.T) {
	testCases := []struct {
		name     string
		selector int
		want     room.FareClass
		errIs    error
	}{
		{name: "standard", selector: 0, want: room.FareStandard},
		{name: "deluxe", selector: 1, want: room.FareDeluxe},
		{name: "negative selector", selector: -1, errIs: room.ErrInvalidFareClass},
		{name: "selector above range", selector: 2, errIs: room.ErrInvalidFareClass},
		{name: "far out of range", selector: 42, errIs: room.ErrInvalidFareClass},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := room.NewFareClass(tc.selector)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPricePerRoom(t *testing.T) {
	assert.Equal(t, "10000", room.PricePerRoom(room.FareStandard, 1, 1).String())
	assert.Equal(t, "18000", room.PricePerRoom(room.FareDeluxe, 1, 1).String())
	assert.Equal(t, "60000", room.PricePerRoom(room.FareStandard, 3, 2).String())
	assert.Equal(t, "108000", room.PricePerRoom(room.FareDeluxe, 3, 2).String())
}

// total = n * (rate * nights * n * multiplier)
func TestReserveTotal(t *testing.T) {
	testCases := []struct {
		class      room.FareClass
		rateMajor  int64
		multiplier int64
	}{
		{room.FareStandard, 10000, 100},
		{room.FareDeluxe, 15000, 120},
	}

	for _, tc := range testCases {
		for n := 1; n <= 5; n++ {
			for k := 1; k <= 4; k++ {
				want := int64(n) * (tc.rateMajor * 100 * int64(k) * int64(n) * tc.multiplier / 100)

				c := room.NewCatalog()
				res := c.Reserve(tc.class, n, k)

				assert.Equal(t, want, res.Total.Minor(), "class=%s n=%d k=%d", tc.class, n, k)
				assert.Len(t, res.RoomNumbers, n)
			}
		}
	}
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "0", room.NewMoney(0).String())
	assert.Equal(t, "12.5", room.NewMoney(1250).String())
	assert.Equal(t, "120000", room.MoneyFromMajor(120000).String())
}
