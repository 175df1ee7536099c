package console_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"hotel-simulator/internal/domain/customer"
	"hotel-simulator/internal/domain/room"
	"hotel-simulator/internal/handler/console"
	"hotel-simulator/internal/pkg/clock"
	"hotel-simulator/internal/pkg/config"
	"hotel-simulator/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScript(t *testing.T, lines ...string) string {
	t.Helper()

	fixed, err := clock.ParseFixedClock("2024-11-07")
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := usecase.NewBookingUseCase(room.NewCatalog(), customer.NewDirectory(), fixed, logger)

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	session := console.NewSession(uc, in, &out, logger, config.NewTestConfig().Hotel)

	require.NoError(t, session.Run(context.Background()))
	return out.String()
}

// aliceBooking books two Standard rooms for three nights for a party of three.
var aliceBooking = []string{
	"2", "Alice", "0", "3", "2", "3", "9876543210", "1234-5678-9012", "12 MG Road, Pune",
	"Alice", "Bob", "Carol",
}

func script(parts ...[]string) []string {
	var lines []string
	for _, p := range parts {
		lines = append(lines, p...)
	}
	return lines
}

func TestSession_DisplayRooms(t *testing.T) {
	out := runScript(t, "1", "5")

	assert.Contains(t, out, "Room details:")
	assert.Contains(t, out, "Room Number: 0, Rate: ₹10000, Available: Yes")
	assert.Contains(t, out, "Deluxe Room Number: 9, Rate: ₹15000, Available: Yes")
	assert.Contains(t, out, "Exiting the system.")
}

func TestSession_DisplayRoomsLabelsOnlyDeluxe(t *testing.T) {
	out := runScript(t, "1", "5")

	for n := 0; n <= 4; n++ {
		assert.Contains(t, out, "\nRoom Number: "+strconv.Itoa(n)+", Rate: ₹10000")
		assert.NotContains(t, out, "Deluxe Room Number: "+strconv.Itoa(n)+",")
	}
	for n := 5; n <= 9; n++ {
		assert.Contains(t, out, "\nDeluxe Room Number: "+strconv.Itoa(n)+", Rate: ₹15000")
	}
}

func TestSession_BookRoom(t *testing.T) {
	out := runScript(t, script(aliceBooking, []string{"1", "5"})...)

	assert.Contains(t, out, "Customer ID assigned: 1")
	assert.Contains(t, out, "Room(s) booked successfully for Alice. Total bill: ₹120000")
	assert.Contains(t, out, "Room Number: 0, Rate: ₹10000, Available: No")
	assert.Contains(t, out, "Room Number: 1, Rate: ₹10000, Available: No")
	assert.Contains(t, out, "Room Number: 2, Rate: ₹10000, Available: Yes")
}

func TestSession_SmallPartySkipsRoomsPrompt(t *testing.T) {
	out := runScript(t,
		"2", "Dev", "1", "2", "2", "555", "ID-1", "Goa", "Dev", "Mira",
		"5",
	)

	assert.NotContains(t, out, "Enter number of rooms you want to book")
	assert.Contains(t, out, "Room(s) booked successfully for Dev. Total bill: ₹36000")
}

func TestSession_RepeatBookingReusesID(t *testing.T) {
	repeat := []string{"2", "Alice", "0", "1", "1", "000", "X", "Elsewhere", "Zed"}
	out := runScript(t, script(aliceBooking, repeat, []string{"3", "5"})...)

	assert.Contains(t, out, "Welcome back! Customer ID: 1")
	assert.Contains(t, out, "Loyalty Points: 40")
	assert.Contains(t, out, "Phone: 9876543210")
	assert.Contains(t, out, "Guests: Alice Bob Carol")
	assert.NotContains(t, out, "Customer ID: 2")
}

func TestSession_InvalidRoomType(t *testing.T) {
	out := runScript(t, "2", "Eve", "7", "1", "1", "1", "2", "3", "Eve", "1", "5")

	assert.Contains(t, out, "Error: Invalid room type. Please select either 0 for Standard or 1 for Deluxe.")
	assert.NotContains(t, out, "Available: No")
}

func TestSession_NotEnoughRooms(t *testing.T) {
	out := runScript(t, "2", "Bulk", "1", "12", "6", "1", "1", "1", "1",
		"g1", "g2", "g3", "g4", "g5", "g6", "g7", "g8", "g9", "g10", "g11", "g12",
		"5")

	assert.Contains(t, out, "Not enough rooms available! Only 5 rooms are available.")
}

func TestSession_StayTooLong(t *testing.T) {
	out := runScript(t, "2", "Nomad", "0", "1", "400", "1", "1", "1", "Nomad", "3", "5")

	assert.Contains(t, out, "Error: nights: book at most 365 nights")
	assert.Contains(t, out, "No customers yet.")
}

func TestSession_CheckOffers(t *testing.T) {
	t.Run("not yet eligible", func(t *testing.T) {
		out := runScript(t, script(aliceBooking, []string{"4", "1", "5"})...)
		assert.Contains(t, out, "Offers for Alice:")
		assert.Contains(t, out, "No offers available yet. Keep collecting points!")
	})

	t.Run("eligible", func(t *testing.T) {
		out := runScript(t, "2", "Long", "0", "1", "10", "1", "1", "1", "Long", "4", "1", "5")
		assert.Contains(t, out, "You are eligible for a 10% discount!")
	})

	t.Run("unknown customer", func(t *testing.T) {
		out := runScript(t, "4", "99", "5")
		assert.Contains(t, out, "Customer not found!")
	})
}

func TestSession_InputHandling(t *testing.T) {
	t.Run("unknown menu choice", func(t *testing.T) {
		out := runScript(t, "9", "5")
		assert.Contains(t, out, "Invalid choice. Please select a valid option.")
	})

	t.Run("non numeric answer is asked again", func(t *testing.T) {
		out := runScript(t, "4", "abc", "1", "5")
		assert.Contains(t, out, "Please enter a whole number.")
		assert.Contains(t, out, "Customer not found!")
	})

	t.Run("end of input exits", func(t *testing.T) {
		out := runScript(t, "1")
		assert.True(t, strings.HasSuffix(out, "Exiting the system.\n"))
	})

	t.Run("end of input mid booking exits", func(t *testing.T) {
		out := runScript(t, "2", "Alice", "0")
		assert.Contains(t, out, "Exiting the system.")
		assert.NotContains(t, out, "booked successfully")
	})
}
