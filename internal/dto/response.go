package dto

import (
	"time"

	"github.com/debaren/debaren-backend/internal/models"
)

type BookingResponse struct {
	ID            uint                 `json:"id"`
	VenueID       uint                 `json:"venue"`
	CustomerName  string               `json:"customer_name"`
	CustomerEmail string               `json:"customer_email"`
	CustomerPhone string               `json:"customer_phone"`
	StartDate     models.Date          `json:"start_date"`
	EndDate       *models.Date         `json:"end_date"`
	Notes         string               `json:"notes"`
	Status        models.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		VenueID:       b.VenueID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		Notes:         b.Notes,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}

// HeroResponse is what GET /hero returns whether or not a row exists.
type HeroResponse struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CtaText  string `json:"cta_text"`
	CtaURL   string `json:"cta_url"`
}

// Fallback hero content served when no HeroSection row exists yet.
const (
	FallbackHeroTitle    = "Discover Beautiful Venues Across South Africa"
	FallbackHeroSubtitle = "From schools to popup spaces and connected WiFi zones — debaren helps you find the perfect place."
	FallbackHeroCtaText  = "Explore Venues"
	FallbackHeroCtaURL   = "/venues"
)

func FallbackHero() HeroResponse {
	return HeroResponse{
		Title:    FallbackHeroTitle,
		Subtitle: FallbackHeroSubtitle,
		CtaText:  FallbackHeroCtaText,
		CtaURL:   FallbackHeroCtaURL,
	}
}

func ToHeroResponse(h *models.HeroSection) HeroResponse {
	return HeroResponse{
		Title:    h.Title,
		Subtitle: h.Subtitle,
		CtaText:  h.CtaText,
		CtaURL:   h.CtaURL,
	}
}

type ContactResponse struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

// FieldErrors maps field names to validation messages, mirroring the
// shape of a 400 response body.
type FieldErrors map[string]string
