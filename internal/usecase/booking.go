package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"hotel-simulator/internal/domain/customer"
	"hotel-simulator/internal/domain/loyalty"
	"hotel-simulator/internal/domain/room"
	"hotel-simulator/internal/pkg/clock"
	"hotel-simulator/internal/pkg/errs"
)

var (
	ErrInvalidRoomType       = errs.New("invalid room type")
	ErrInsufficientInventory = errs.New("insufficient inventory")
	ErrCustomerNotFound      = errs.New("customer not found")
	ErrInvalidBookingRequest = errs.New("invalid booking request")
)

// MaxNights caps a single stay. It keeps the bill and the loyalty points
// far inside int64 range.
const MaxNights = 365

type BookRoomParams struct {
	CustomerName string
	FareClass    int
	Nights       int
	RoomsNeeded  int
	GuestCount   int
	GuestNames   []string
	Phone        string
	NationalID   string
	Address      string
}

func (p BookRoomParams) validate() error {
	inputErr := newInputError()

	if strings.TrimSpace(p.CustomerName) == "" {
		inputErr.addError("customer_name", "provide a customer name")
	}
	if p.Nights < 1 {
		inputErr.addError("nights", "book at least one night")
	}
	if p.Nights > MaxNights {
		inputErr.addError("nights", fmt.Sprintf("book at most %d nights", MaxNights))
	}
	if p.RoomsNeeded < 1 {
		inputErr.addError("rooms_needed", "book at least one room")
	}
	if p.GuestCount < 0 {
		inputErr.addError("guest_count", "guest count cannot be negative")
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}
	return nil
}

func (p BookRoomParams) profile() customer.Profile {
	return customer.Profile{
		Name:       p.CustomerName,
		Phone:      p.Phone,
		NationalID: p.NationalID,
		Address:    p.Address,
		GuestCount: p.GuestCount,
		GuestNames: p.GuestNames,
	}
}

//go:generate mockgen -source=booking.go -destination=../../tests/mock/usecase/booking.go -package=usecasemock

type BookingUseCase interface {
	BookRoom(ctx context.Context, params BookRoomParams) (*BookingResult, error)
	ListRooms(ctx context.Context) ([]RoomView, error)
	ListCustomers(ctx context.Context) ([]CustomerView, error)
	CheckOffers(ctx context.Context, customerID int) (*OfferView, error)
}

// bookingUseCaseImpl serializes every operation on one mutex, so the console
// and the HTTP API never interleave inside a booking.
type bookingUseCaseImpl struct {
	mu        sync.Mutex
	catalog   *room.Catalog
	customers *customer.Directory
	clock     clock.Clock
	logger    *slog.Logger
}

func NewBookingUseCase(
	catalog *room.Catalog,
	customers *customer.Directory,
	clock clock.Clock,
	logger *slog.Logger,
) BookingUseCase {
	return &bookingUseCaseImpl{
		catalog:   catalog,
		customers: customers,
		clock:     clock,
		logger:    logger,
	}
}

func (u *bookingUseCaseImpl) BookRoom(ctx context.Context, params BookRoomParams) (*BookingResult, error) {
	class, err := room.NewFareClass(params.FareClass)
	if err != nil {
		u.logger.Warn("booking rejected", "reason", "invalid room type", "selector", params.FareClass)
		return nil, errs.Mark(err, ErrInvalidRoomType)
	}

	if err := params.validate(); err != nil {
		u.logger.Warn("booking rejected", "reason", "invalid request", "error", err)
		return nil, errs.Mark(err, ErrInvalidBookingRequest)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "book room")
	}

	if err := u.catalog.EnsureAvailable(class, params.RoomsNeeded); err != nil {
		u.logger.Info("booking rejected",
			"reason", "insufficient inventory",
			"fare_class", class.String(),
			"rooms_needed", params.RoomsNeeded,
			"available", u.catalog.CountAvailable(class))
		return nil, errs.Mark(err, ErrInsufficientInventory)
	}

	reservation := u.catalog.Reserve(class, params.RoomsNeeded, params.Nights)
	points := loyalty.PointsForStay(params.Nights)
	bookingDate := clock.Today(u.clock)
	customerID, created := u.customers.CreateOrUpdate(params.profile(), points, bookingDate)

	u.logger.Info("rooms booked",
		"customer_id", customerID,
		"new_customer", created,
		"fare_class", class.String(),
		"rooms", reservation.RoomNumbers,
		"nights", params.Nights,
		"total_bill", reservation.Total.String(),
		"points_earned", points)

	return &BookingResult{
		CustomerID:   customerID,
		Created:      created,
		CustomerName: params.CustomerName,
		FareClass:    class.String(),
		RoomNumbers:  reservation.RoomNumbers,
		Nights:       params.Nights,
		TotalBill:    reservation.Total.Major(),
		PointsEarned: points,
		BookingDate:  bookingDate,
	}, nil
}

func (u *bookingUseCaseImpl) ListRooms(ctx context.Context) ([]RoomView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "list rooms")
	}

	rooms := u.catalog.Rooms()
	views := make([]RoomView, 0, len(rooms))
	for i := range rooms {
		r := &rooms[i]
		views = append(views, RoomView{
			Number:     r.Number(),
			FareClass:  r.Class().String(),
			Rate:       r.Rate().Major(),
			Multiplier: r.Multiplier(),
			Available:  r.IsAvailable(),
		})
	}
	return views, nil
}

func (u *bookingUseCaseImpl) ListCustomers(ctx context.Context) ([]CustomerView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "list customers")
	}

	customers := u.customers.List()
	views := make([]CustomerView, 0, len(customers))
	for _, c := range customers {
		views = append(views, toCustomerView(c))
	}
	return views, nil
}

func (u *bookingUseCaseImpl) CheckOffers(ctx context.Context, customerID int) (*OfferView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check offers")
	}

	c, err := u.customers.FindByID(customerID)
	if err != nil {
		if errs.Is(err, customer.ErrNotFound) {
			return nil, errs.Mark(err, ErrCustomerNotFound)
		}
		return nil, errs.Wrap(err, "find customer")
	}

	offer := loyalty.Evaluate(c.LoyaltyPoints())
	return &OfferView{
		CustomerID:    c.ID(),
		CustomerName:  c.Name(),
		LoyaltyPoints: offer.Points(),
		Eligible:      offer.Eligible(),
		PercentOff:    offer.Discount().PercentOff(),
		PointsToGo:    offer.PointsToGo(),
	}, nil
}

func toCustomerView(c *customer.Customer) CustomerView {
	return CustomerView{
		ID:            c.ID(),
		Name:          c.Name(),
		Phone:         c.Phone(),
		NationalID:    c.NationalID(),
		Address:       c.Address(),
		GuestCount:    c.GuestCount(),
		GuestNames:    c.GuestNames(),
		LoyaltyPoints: c.LoyaltyPoints(),
		BookingDate:   c.BookingDate(),
	}
}
