package console

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"hotel-simulator/internal/domain/room"
	"hotel-simulator/internal/pkg/config"
	"hotel-simulator/internal/pkg/errs"
	"hotel-simulator/internal/usecase"

	"github.com/google/uuid"
)

const menu = `
1. Display all rooms
2. Book a room
3. Display all customers
4. Check offers for a customer by ID
5. Exit`

// guestsPerRoom is the party size that still fits one room; larger parties
// are asked how many rooms they want.
const guestsPerRoom = 2

// Session drives the interactive menu on top of the booking use case.
type Session struct {
	useCase  usecase.BookingUseCase
	p        *prompter
	logger   *slog.Logger
	currency string
}

func NewSession(
	useCase usecase.BookingUseCase,
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
	cfg config.HotelConfig,
) *Session {
	return &Session{
		useCase:  useCase,
		p:        newPrompter(in, out),
		logger:   logger,
		currency: cfg.CurrencySymbol,
	}
}

// Run shows the menu until the user exits, input ends or ctx is canceled.
func (s *Session) Run(ctx context.Context) error {
	logger := s.logger.With("session_id", uuid.NewString())
	logger.Info("console session started")
	defer logger.Info("console session ended")

	for ctx.Err() == nil {
		s.p.println(menu)
		choice, err := s.p.readLine("Enter your choice: ")
		if err != nil {
			return s.finish(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.displayRooms(ctx)
		case "2":
			err = s.bookRoom(ctx)
		case "3":
			err = s.displayCustomers(ctx)
		case "4":
			err = s.checkOffers(ctx)
		case "5":
			s.p.println("Exiting the system.")
			return nil
		default:
			s.p.println("Invalid choice. Please select a valid option.")
		}

		if err != nil {
			return s.finish(err)
		}
	}
	return nil
}

func (s *Session) finish(err error) error {
	if errs.Is(err, io.EOF) {
		s.p.println("\nExiting the system.")
		return nil
	}
	return errs.Wrap(err, "console session")
}

func (s *Session) displayRooms(ctx context.Context) error {
	rooms, err := s.useCase.ListRooms(ctx)
	if err != nil {
		return err
	}
	s.renderRooms(rooms)
	return nil
}

func (s *Session) displayCustomers(ctx context.Context) error {
	customers, err := s.useCase.ListCustomers(ctx)
	if err != nil {
		return err
	}
	s.renderCustomers(customers)
	return nil
}

func (s *Session) checkOffers(ctx context.Context) error {
	id, err := s.p.readInt("Enter customer ID to check offers: ")
	if err != nil {
		return err
	}

	offer, err := s.useCase.CheckOffers(ctx, id)
	switch {
	case errs.Is(err, usecase.ErrCustomerNotFound):
		s.p.println("Customer not found!")
		return nil
	case err != nil:
		return err
	}
	s.renderOffer(offer)
	return nil
}

func (s *Session) bookRoom(ctx context.Context) error {
	params, err := s.collectBooking()
	if err != nil {
		return err
	}

	result, err := s.useCase.BookRoom(ctx, params)
	if err == nil {
		s.renderBooking(result)
		return nil
	}

	var invErr *room.InsufficientInventoryError
	var inputErr *usecase.InputError
	switch {
	case errs.Is(err, usecase.ErrInvalidRoomType):
		s.p.println("Error: Invalid room type. Please select either 0 for Standard or 1 for Deluxe.")
	case errs.As(err, &invErr):
		s.p.printf("Not enough rooms available! Only %d rooms are available.\n", invErr.Available)
	case errs.As(err, &inputErr):
		s.p.printf("Error: %s\n", inputErr.Error())
	default:
		return err
	}
	return nil
}

func (s *Session) collectBooking() (usecase.BookRoomParams, error) {
	var (
		params usecase.BookRoomParams
		err    error
	)

	if params.CustomerName, err = s.p.readLine("Enter customer name: "); err != nil {
		return params, err
	}
	if params.FareClass, err = s.p.readInt("Enter room type (0 for Standard, 1 for Deluxe): "); err != nil {
		return params, err
	}
	if params.GuestCount, err = s.p.readInt("Enter number of guests: "); err != nil {
		return params, err
	}

	params.RoomsNeeded = 1
	if params.GuestCount > guestsPerRoom {
		if params.RoomsNeeded, err = s.p.readInt("Enter number of rooms you want to book: "); err != nil {
			return params, err
		}
	}

	if params.Nights, err = s.p.readInt("Enter number of nights: "); err != nil {
		return params, err
	}
	if params.Phone, err = s.p.readLine("Enter phone number: "); err != nil {
		return params, err
	}
	if params.NationalID, err = s.p.readLine("Enter national ID (Aadhaar) number: "); err != nil {
		return params, err
	}
	if params.Address, err = s.p.readLine("Enter address: "); err != nil {
		return params, err
	}

	for i := 0; i < params.GuestCount; i++ {
		name, err := s.p.readLine("Enter name of guest " + strconv.Itoa(i+1) + ": ")
		if err != nil {
			return params, err
		}
		params.GuestNames = append(params.GuestNames, name)
	}

	return params, nil
}
