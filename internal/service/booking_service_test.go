package service

import (
	"context"
	"errors"
	"testing"

	"github.com/debaren/debaren-backend/internal/dto"
	"github.com/debaren/debaren-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --- Mock VenueRepository ---

type mockVenueRepo struct {
	createFn        func(ctx context.Context, venue *models.Venue) error
	findByIDFn      func(ctx context.Context, id uint) (*models.Venue, error)
	saveFn          func(ctx context.Context, venue *models.Venue) error
	deleteFn        func(ctx context.Context, id uint) error
	addGalleryFn    func(ctx context.Context, images []models.GalleryImage) error
	findGalleryFn   func(ctx context.Context, venueID, imageID uint) (*models.GalleryImage, error)
	deleteGalleryFn func(ctx context.Context, venueID, imageID uint) error
}

func (m *mockVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	if m.createFn != nil {
		return m.createFn(ctx, venue)
	}
	venue.ID = 1
	return nil
}
func (m *mockVenueRepo) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockVenueRepo) FindAll(ctx context.Context) ([]models.Venue, error) { return nil, nil }
func (m *mockVenueRepo) Save(ctx context.Context, venue *models.Venue) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, venue)
	}
	return nil
}
func (m *mockVenueRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}
func (m *mockVenueRepo) AddGalleryImages(ctx context.Context, images []models.GalleryImage) error {
	if m.addGalleryFn != nil {
		return m.addGalleryFn(ctx, images)
	}
	return nil
}
func (m *mockVenueRepo) FindGalleryImage(ctx context.Context, venueID, imageID uint) (*models.GalleryImage, error) {
	if m.findGalleryFn != nil {
		return m.findGalleryFn(ctx, venueID, imageID)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockVenueRepo) DeleteGalleryImage(ctx context.Context, venueID, imageID uint) error {
	if m.deleteGalleryFn != nil {
		return m.deleteGalleryFn(ctx, venueID, imageID)
	}
	return nil
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn      func(ctx context.Context, booking *models.Booking) error
	findByIDFn    func(ctx context.Context, id uint) (*models.Booking, error)
	saveFn        func(ctx context.Context, booking *models.Booking) error
	deleteFn      func(ctx context.Context, id uint) error
	findByVenueFn func(ctx context.Context, venueID uint) ([]models.Booking, error)
	setAccountFn  func(ctx context.Context, bookingID, accountID uint) error
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if m.createFn != nil {
		return m.createFn(ctx, booking)
	}
	booking.ID = 1
	return nil
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) FindAll(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) FindByVenueID(ctx context.Context, venueID uint) ([]models.Booking, error) {
	if m.findByVenueFn != nil {
		return m.findByVenueFn(ctx, venueID)
	}
	return nil, nil
}
func (m *mockBookingRepo) Save(ctx context.Context, booking *models.Booking) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, booking)
	}
	return nil
}
func (m *mockBookingRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}
func (m *mockBookingRepo) SetAccount(ctx context.Context, bookingID, accountID uint) error {
	if m.setAccountFn != nil {
		return m.setAccountFn(ctx, bookingID, accountID)
	}
	return nil
}

// --- Mock AccountRepository ---

type mockAccountRepo struct {
	getOrCreateFn func(ctx context.Context, email, username, passwordHash string) (*models.Account, bool, error)
}

func (m *mockAccountRepo) GetOrCreate(ctx context.Context, email, username, passwordHash string) (*models.Account, bool, error) {
	return m.getOrCreateFn(ctx, email, username, passwordHash)
}
func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockAccountRepo) Delete(ctx context.Context, id uint) error { return nil }

// --- Mock Mailer ---

type mockMailer struct {
	accountBookingFn      func(ctx context.Context, booking *models.Booking, venue *models.Venue, password string) error
	bookingConfirmationFn func(ctx context.Context, booking *models.Booking, venue *models.Venue) error

	accountBookingCalls      int
	bookingConfirmationCalls int
}

func (m *mockMailer) SendAccountBooking(ctx context.Context, booking *models.Booking, venue *models.Venue, password string) error {
	m.accountBookingCalls++
	if m.accountBookingFn != nil {
		return m.accountBookingFn(ctx, booking, venue, password)
	}
	return nil
}
func (m *mockMailer) SendBookingConfirmation(ctx context.Context, booking *models.Booking, venue *models.Venue) error {
	m.bookingConfirmationCalls++
	if m.bookingConfirmationFn != nil {
		return m.bookingConfirmationFn(ctx, booking, venue)
	}
	return nil
}
func (m *mockMailer) SendContactNotification(ctx context.Context, msg *models.ContactMessage) error {
	return nil
}
func (m *mockMailer) SendContactAutoReply(ctx context.Context, msg *models.ContactMessage) error {
	return nil
}

// --- Helpers ---

func testVenue() *models.Venue {
	return &models.Venue{ID: 1, Name: "The Loft", VenueType: models.VenueTypeHall, Address: "1 Main Rd", City: "Cape Town"}
}

func validCreateRequest() *dto.CreateBookingRequest {
	start, _ := models.ParseDate("2026-09-10")
	return &dto.CreateBookingRequest{
		VenueID:       1,
		CustomerName:  "Thandi M",
		CustomerEmail: "thandi@example.com",
		StartDate:     start,
	}
}

func venueRepoFound() *mockVenueRepo {
	return &mockVenueRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Venue, error) {
			return testVenue(), nil
		},
	}
}

// --- Tests ---

func TestCreateBooking_NewCustomer_ProvisionsAccountAndSendsWelcome(t *testing.T) {
	var gotUsername, gotHash string
	accounts := &mockAccountRepo{
		getOrCreateFn: func(ctx context.Context, email, username, passwordHash string) (*models.Account, bool, error) {
			gotUsername = username
			gotHash = passwordHash
			return &models.Account{ID: 7, Email: email}, true, nil
		},
	}
	var linkedAccountID uint
	bookings := &mockBookingRepo{
		setAccountFn: func(ctx context.Context, bookingID, accountID uint) error {
			linkedAccountID = accountID
			return nil
		},
	}
	mail := &mockMailer{}

	svc := NewBookingService(bookings, venueRepoFound(), accounts, mail)
	booking, err := svc.CreateBooking(context.Background(), validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Equal(t, "thandi@example.com", gotUsername)
	assert.NotEmpty(t, gotHash)
	assert.Equal(t, uint(7), linkedAccountID)
	assert.NotNil(t, booking.AccountID)
	assert.Equal(t, uint(7), *booking.AccountID)
	assert.Equal(t, 1, mail.accountBookingCalls)
	assert.Equal(t, 0, mail.bookingConfirmationCalls)
}

func TestCreateBooking_ExistingCustomer_SendsConfirmationOnly(t *testing.T) {
	accounts := &mockAccountRepo{
		getOrCreateFn: func(ctx context.Context, email, username, passwordHash string) (*models.Account, bool, error) {
			return &models.Account{ID: 3, Email: email}, false, nil
		},
	}
	mail := &mockMailer{}

	svc := NewBookingService(&mockBookingRepo{}, venueRepoFound(), accounts, mail)
	booking, err := svc.CreateBooking(context.Background(), validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, 0, mail.accountBookingCalls)
	assert.Equal(t, 1, mail.bookingConfirmationCalls)
	assert.Equal(t, uint(3), *booking.AccountID)
}

func TestCreateBooking_WelcomePasswordMatchesEmail(t *testing.T) {
	accounts := &mockAccountRepo{
		getOrCreateFn: func(ctx context.Context, email, username, passwordHash string) (*models.Account, bool, error) {
			return &models.Account{ID: 1, Email: email}, true, nil
		},
	}
	var sentPassword string
	mail := &mockMailer{
		accountBookingFn: func(ctx context.Context, booking *models.Booking, venue *models.Venue, password string) error {
			sentPassword = password
			return nil
		},
	}

	svc := NewBookingService(&mockBookingRepo{}, venueRepoFound(), accounts, mail)
	_, err := svc.CreateBooking(context.Background(), validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, "thandi@example.com@Debaren2025", sentPassword)
}

func TestCreateBooking_VenueNotFound(t *testing.T) {
	venues := &mockVenueRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Venue, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	created := false
	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *models.Booking) error {
			created = true
			return nil
		},
	}

	svc := NewBookingService(bookings, venues, &mockAccountRepo{}, &mockMailer{})
	_, err := svc.CreateBooking(context.Background(), validCreateRequest())

	assert.ErrorIs(t, err, ErrVenueNotFound)
	assert.False(t, created)
}

func TestCreateBooking_MissingStartDate(t *testing.T) {
	req := validCreateRequest()
	req.StartDate = models.Date{}

	created := false
	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *models.Booking) error {
			created = true
			return nil
		},
	}

	svc := NewBookingService(bookings, venueRepoFound(), &mockAccountRepo{}, &mockMailer{})
	_, err := svc.CreateBooking(context.Background(), req)

	assert.ErrorIs(t, err, ErrMissingStartDate)
	assert.False(t, created)
}

func TestCreateBooking_EndDateBeforeStartDate(t *testing.T) {
	req := validCreateRequest()
	end, _ := models.ParseDate("2026-09-01")
	req.EndDate = &end

	created := false
	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *models.Booking) error {
			created = true
			return nil
		},
	}

	svc := NewBookingService(bookings, venueRepoFound(), &mockAccountRepo{}, &mockMailer{})
	_, err := svc.CreateBooking(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.False(t, created)
}

func TestCreateBooking_SameDayRangeAllowed(t *testing.T) {
	req := validCreateRequest()
	end, _ := models.ParseDate("2026-09-10")
	req.EndDate = &end

	accounts := &mockAccountRepo{
		getOrCreateFn: func(ctx context.Context, email, username, passwordHash string) (*models.Account, bool, error) {
			return &models.Account{ID: 1, Email: email}, false, nil
		},
	}

	svc := NewBookingService(&mockBookingRepo{}, venueRepoFound(), accounts, &mockMailer{})
	_, err := svc.CreateBooking(context.Background(), req)

	assert.NoError(t, err)
}

func TestCreateBooking_EmailFailureDoesNotFailRequest(t *testing.T) {
	accounts := &mockAccountRepo{
		getOrCreateFn: func(ctx context.Context, email, username, passwordHash string) (*models.Account, bool, error) {
			return &models.Account{ID: 1, Email: email}, true, nil
		},
	}
	mail := &mockMailer{
		accountBookingFn: func(ctx context.Context, booking *models.Booking, venue *models.Venue, password string) error {
			return errors.New("smtp relay unreachable")
		},
	}

	svc := NewBookingService(&mockBookingRepo{}, venueRepoFound(), accounts, mail)
	booking, err := svc.CreateBooking(context.Background(), validCreateRequest())

	assert.NoError(t, err)
	assert.NotNil(t, booking)
	assert.Equal(t, models.StatusPending, booking.Status)
}

func TestCreateBooking_AccountResolutionFailure(t *testing.T) {
	accounts := &mockAccountRepo{
		getOrCreateFn: func(ctx context.Context, email, username, passwordHash string) (*models.Account, bool, error) {
			return nil, false, errors.New("database unavailable")
		},
	}
	mail := &mockMailer{}

	svc := NewBookingService(&mockBookingRepo{}, venueRepoFound(), accounts, mail)
	_, err := svc.CreateBooking(context.Background(), validCreateRequest())

	assert.Error(t, err)
	assert.Equal(t, 0, mail.accountBookingCalls)
	assert.Equal(t, 0, mail.bookingConfirmationCalls)
}

func TestCreateBooking_AccountLinkFailureKeepsBooking(t *testing.T) {
	accounts := &mockAccountRepo{
		getOrCreateFn: func(ctx context.Context, email, username, passwordHash string) (*models.Account, bool, error) {
			return &models.Account{ID: 2, Email: email}, false, nil
		},
	}
	bookings := &mockBookingRepo{
		setAccountFn: func(ctx context.Context, bookingID, accountID uint) error {
			return errors.New("update failed")
		},
	}
	mail := &mockMailer{}

	svc := NewBookingService(bookings, venueRepoFound(), accounts, mail)
	booking, err := svc.CreateBooking(context.Background(), validCreateRequest())

	assert.NoError(t, err)
	assert.Nil(t, booking.AccountID)
	assert.Equal(t, 1, mail.bookingConfirmationCalls)
}

func TestCreateBooking_NilMailerSkipsSends(t *testing.T) {
	accounts := &mockAccountRepo{
		getOrCreateFn: func(ctx context.Context, email, username, passwordHash string) (*models.Account, bool, error) {
			return &models.Account{ID: 1, Email: email}, true, nil
		},
	}

	svc := NewBookingService(&mockBookingRepo{}, venueRepoFound(), accounts, nil)
	booking, err := svc.CreateBooking(context.Background(), validCreateRequest())

	assert.NoError(t, err)
	assert.NotNil(t, booking)
}

func TestUpdateBooking_InvalidStatus(t *testing.T) {
	bookings := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Booking, error) {
			start, _ := models.ParseDate("2026-09-10")
			return &models.Booking{ID: id, VenueID: 1, StartDate: start, Status: models.StatusPending}, nil
		},
	}

	bad := models.BookingStatus("archived")
	svc := NewBookingService(bookings, venueRepoFound(), &mockAccountRepo{}, &mockMailer{})
	_, err := svc.UpdateBooking(context.Background(), 1, &dto.UpdateBookingRequest{Status: &bad})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateBooking_StatusTransition(t *testing.T) {
	var saved *models.Booking
	bookings := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Booking, error) {
			start, _ := models.ParseDate("2026-09-10")
			return &models.Booking{ID: id, VenueID: 1, StartDate: start, Status: models.StatusPending}, nil
		},
		saveFn: func(ctx context.Context, booking *models.Booking) error {
			saved = booking
			return nil
		},
	}

	confirmed := models.StatusConfirmed
	svc := NewBookingService(bookings, venueRepoFound(), &mockAccountRepo{}, &mockMailer{})
	booking, err := svc.UpdateBooking(context.Background(), 1, &dto.UpdateBookingRequest{Status: &confirmed})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, booking.Status)
	assert.NotNil(t, saved)
}

func TestUpdateBooking_DateRangeRechecked(t *testing.T) {
	bookings := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Booking, error) {
			start, _ := models.ParseDate("2026-09-10")
			return &models.Booking{ID: id, VenueID: 1, StartDate: start, Status: models.StatusPending}, nil
		},
	}

	end, _ := models.ParseDate("2026-09-01")
	svc := NewBookingService(bookings, venueRepoFound(), &mockAccountRepo{}, &mockMailer{})
	_, err := svc.UpdateBooking(context.Background(), 1, &dto.UpdateBookingRequest{EndDate: &end})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestDeleteBooking_NotFound(t *testing.T) {
	bookings := &mockBookingRepo{
		deleteFn: func(ctx context.Context, id uint) error {
			return gorm.ErrRecordNotFound
		},
	}

	svc := NewBookingService(bookings, venueRepoFound(), &mockAccountRepo{}, &mockMailer{})
	err := svc.DeleteBooking(context.Background(), 42)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetBooking_NotFound(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, venueRepoFound(), &mockAccountRepo{}, &mockMailer{})
	_, err := svc.GetBooking(context.Background(), 99)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListVenueBookings_FiltersByVenue(t *testing.T) {
	var askedVenueID uint
	bookings := &mockBookingRepo{
		findByVenueFn: func(ctx context.Context, venueID uint) ([]models.Booking, error) {
			askedVenueID = venueID
			return []models.Booking{{ID: 1, VenueID: venueID}, {ID: 2, VenueID: venueID}}, nil
		},
	}

	svc := NewBookingService(bookings, venueRepoFound(), &mockAccountRepo{}, &mockMailer{})
	got, err := svc.ListVenueBookings(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, uint(7), askedVenueID)
	assert.Len(t, got, 2)
}

func TestListVenueBookings_VenueNotFound(t *testing.T) {
	venues := &mockVenueRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Venue, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewBookingService(&mockBookingRepo{}, venues, &mockAccountRepo{}, &mockMailer{})
	_, err := svc.ListVenueBookings(context.Background(), 42)

	assert.ErrorIs(t, err, ErrVenueNotFound)
}
