package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusRejected  BookingStatus = "rejected"
)

func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

type Booking struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	VenueID       uint          `gorm:"not null;index" json:"venue"`
	AccountID     *uint         `gorm:"index" json:"account_id,omitempty"`
	CustomerName  string        `gorm:"size:120;not null" json:"customer_name"`
	CustomerEmail string        `gorm:"size:254;not null" json:"customer_email"`
	CustomerPhone string        `gorm:"size:30" json:"customer_phone"`
	StartDate     Date          `gorm:"not null" json:"start_date"`
	EndDate       *Date         `json:"end_date"`
	Notes         string        `gorm:"type:text" json:"notes"`
	Status        BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	Venue   *Venue   `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"-"`
	Account *Account `gorm:"foreignKey:AccountID;constraint:OnDelete:SET NULL" json:"-"`
}
