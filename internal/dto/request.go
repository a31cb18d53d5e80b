package dto

import "github.com/debaren/debaren-backend/internal/models"

// CreateVenueRequest carries venue fields from either a JSON body or a
// multipart form. Amenities is deliberately untyped: clients submit it
// as an array, a JSON-encoded string or free text, and the amenity
// normalizer sorts it out.
type CreateVenueRequest struct {
	Name         string      `json:"name" validate:"required"`
	VenueType    string      `json:"venue_type" validate:"required"`
	Description  string      `json:"description"`
	Address      string      `json:"address" validate:"required"`
	City         string      `json:"city"`
	Region       string      `json:"region"`
	Country      string      `json:"country"`
	PostalCode   string      `json:"postal_code"`
	Latitude     *float64    `json:"latitude"`
	Longitude    *float64    `json:"longitude"`
	Capacity     uint        `json:"capacity"`
	Amenities    interface{} `json:"amenities"`
	PricePerDay  *float64    `json:"price_per_day"`
	ContactEmail string      `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string      `json:"contact_phone"`
	Website      string      `json:"website"`
	Available    *bool       `json:"available"`
	Rating       *float64    `json:"rating"`
	Tags         string      `json:"tags"`
}

// UpdateVenueRequest is a partial update: nil fields are left untouched.
type UpdateVenueRequest struct {
	Name         *string     `json:"name"`
	VenueType    *string     `json:"venue_type"`
	Description  *string     `json:"description"`
	Address      *string     `json:"address"`
	City         *string     `json:"city"`
	Region       *string     `json:"region"`
	Country      *string     `json:"country"`
	PostalCode   *string     `json:"postal_code"`
	Latitude     *float64    `json:"latitude"`
	Longitude    *float64    `json:"longitude"`
	Capacity     *uint       `json:"capacity"`
	Amenities    interface{} `json:"amenities"`
	PricePerDay  *float64    `json:"price_per_day"`
	ContactEmail *string     `json:"contact_email"`
	ContactPhone *string     `json:"contact_phone"`
	Website      *string     `json:"website"`
	Available    *bool       `json:"available"`
	Rating       *float64    `json:"rating"`
	Tags         *string     `json:"tags"`
}

type CreateBookingRequest struct {
	VenueID       uint         `json:"venue" validate:"required"`
	CustomerName  string       `json:"customer_name" validate:"required"`
	CustomerEmail string       `json:"customer_email" validate:"required,email"`
	CustomerPhone string       `json:"customer_phone"`
	StartDate     models.Date  `json:"start_date"`
	EndDate       *models.Date `json:"end_date"`
	Notes         string       `json:"notes"`
}

// UpdateBookingRequest is the operator surface: status transitions plus
// corrections to the guest details.
type UpdateBookingRequest struct {
	CustomerName  *string               `json:"customer_name"`
	CustomerEmail *string               `json:"customer_email"`
	CustomerPhone *string               `json:"customer_phone"`
	StartDate     *models.Date          `json:"start_date"`
	EndDate       *models.Date          `json:"end_date"`
	Notes         *string               `json:"notes"`
	Status        *models.BookingStatus `json:"status"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}
