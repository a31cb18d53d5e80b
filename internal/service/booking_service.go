package service

import (
	"context"
	"errors"
	"log"

	"github.com/debaren/debaren-backend/internal/auth"
	"github.com/debaren/debaren-backend/internal/dto"
	"github.com/debaren/debaren-backend/internal/mailer"
	"github.com/debaren/debaren-backend/internal/models"
	"github.com/debaren/debaren-backend/internal/repository"
)

var (
	ErrVenueNotFound    = errors.New("venue not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrMissingStartDate = errors.New("start_date is required")
	ErrInvalidDateRange = errors.New("end_date must be on or after start_date")
	ErrInvalidStatus    = errors.New("invalid booking status")
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error)
	ListVenueBookings(ctx context.Context, venueID uint) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, id uint, req *dto.UpdateBookingRequest) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id uint) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	venueRepo   repository.VenueRepository
	accountRepo repository.AccountRepository
	mail        mailer.Mailer
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	venueRepo repository.VenueRepository,
	accountRepo repository.AccountRepository,
	mail mailer.Mailer,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		accountRepo: accountRepo,
		mail:        mail,
	}
}

// CreateBooking runs the intake workflow: validate, persist the booking
// as pending, resolve or provision the customer account, then send
// exactly one of the two notification variants. Email failures are
// logged but never fail the request; the booking stands once persisted.
func (s *bookingService) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*models.Booking, error) {
	log.Printf("[BookingService] booking request received for venue %d from %s", req.VenueID, req.CustomerEmail)

	venue, err := s.venueRepo.FindByID(ctx, req.VenueID)
	if err != nil {
		return nil, ErrVenueNotFound
	}

	if req.StartDate.IsZero() {
		log.Printf("[BookingService] validation failed: missing start_date")
		return nil, ErrMissingStartDate
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate.Time) {
		log.Printf("[BookingService] validation failed: end_date before start_date")
		return nil, ErrInvalidDateRange
	}

	booking := &models.Booking{
		VenueID:       venue.ID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Notes:         req.Notes,
		Status:        models.StatusPending,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		log.Printf("[BookingService] failed to persist booking: %v", err)
		return nil, err
	}

	email := booking.CustomerEmail
	password := auth.InitialPassword(email)
	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Printf("[BookingService] failed to hash initial password: %v", err)
		return nil, err
	}

	account, created, err := s.accountRepo.GetOrCreate(ctx, email, email, hash)
	if err != nil {
		log.Printf("[BookingService] failed to resolve account for %s: %v", email, err)
		return nil, err
	}

	if err := s.bookingRepo.SetAccount(ctx, booking.ID, account.ID); err != nil {
		// The booking stays valid as a guest booking.
		log.Printf("[BookingService] failed to link booking %d to account %d: %v", booking.ID, account.ID, err)
	} else {
		booking.AccountID = &account.ID
	}

	if s.mail != nil {
		if created {
			if err := s.mail.SendAccountBooking(ctx, booking, venue, password); err != nil {
				log.Printf("[BookingService] account/booking email to %s failed: %v", email, err)
			} else {
				log.Printf("[BookingService] account/booking email sent to %s", email)
			}
		} else {
			if err := s.mail.SendBookingConfirmation(ctx, booking, venue); err != nil {
				log.Printf("[BookingService] confirmation email to %s failed: %v", email, err)
			} else {
				log.Printf("[BookingService] confirmation email sent to %s", email)
			}
		}
	}

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error) {
	return s.bookingRepo.FindAll(ctx, status)
}

func (s *bookingService) ListVenueBookings(ctx context.Context, venueID uint) ([]models.Booking, error) {
	if _, err := s.venueRepo.FindByID(ctx, venueID); err != nil {
		return nil, ErrVenueNotFound
	}
	return s.bookingRepo.FindByVenueID(ctx, venueID)
}

func (s *bookingService) UpdateBooking(ctx context.Context, id uint, req *dto.UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	if req.CustomerName != nil {
		booking.CustomerName = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		booking.CustomerEmail = *req.CustomerEmail
	}
	if req.CustomerPhone != nil {
		booking.CustomerPhone = *req.CustomerPhone
	}
	if req.StartDate != nil {
		booking.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		booking.EndDate = req.EndDate
	}
	if req.Notes != nil {
		booking.Notes = *req.Notes
	}
	if req.Status != nil {
		if !models.ValidBookingStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		booking.Status = *req.Status
	}

	if booking.EndDate != nil && booking.EndDate.Before(booking.StartDate.Time) {
		return nil, ErrInvalidDateRange
	}

	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id uint) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return ErrBookingNotFound
	}
	return nil
}
