package request_test

import (
	"testing"

	"hotel-simulator/internal/handler/dto/request"
	"hotel-simulator/internal/usecase"

	"github.com/google/go-cmp/cmp"
)

func TestCreateBookingRequest_ToParams(t *testing.T) {
	deluxe := 1
	two, zero := 2, 0

	tests := []struct {
		name string
		req  request.CreateBookingRequest
		want usecase.BookRoomParams
	}{
		{
			name: "rooms default to one",
			req: request.CreateBookingRequest{
				CustomerName: "  Dev ",
				FareClass:    &deluxe,
				Nights:       2,
				GuestNames:   []string{"Dev", " Mira"},
			},
			want: usecase.BookRoomParams{
				CustomerName: "Dev",
				FareClass:    1,
				Nights:       2,
				RoomsNeeded:  1,
				GuestCount:   2,
				GuestNames:   []string{"Dev", "Mira"},
			},
		},
		{
			name: "explicit rooms and contact details",
			req: request.CreateBookingRequest{
				CustomerName: "Alice",
				FareClass:    &deluxe,
				Nights:       3,
				RoomsNeeded:  &two,
				Phone:        "9876543210",
				NationalID:   "1234-5678-9012",
				Address:      "12 MG Road, Pune",
			},
			want: usecase.BookRoomParams{
				CustomerName: "Alice",
				FareClass:    1,
				Nights:       3,
				RoomsNeeded:  2,
				GuestNames:   []string{},
				Phone:        "9876543210",
				NationalID:   "1234-5678-9012",
				Address:      "12 MG Road, Pune",
			},
		},
		{
			name: "explicit zero rooms and missing nights are left for validation",
			req: request.CreateBookingRequest{
				CustomerName: "Eve",
				FareClass:    &deluxe,
				RoomsNeeded:  &zero,
			},
			want: usecase.BookRoomParams{
				CustomerName: "Eve",
				FareClass:    1,
				GuestNames:   []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.req.ToParams()); diff != "" {
				t.Errorf("ToParams() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
