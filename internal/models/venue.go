package models

import "time"

type VenueType string

const (
	VenueTypeCountry    VenueType = "country"
	VenueTypeCity       VenueType = "city"
	VenueTypeTown       VenueType = "town"
	VenueTypeHall       VenueType = "hall"
	VenueTypeConference VenueType = "conference"
	VenueTypeRestaurant VenueType = "restaurant"
	VenueTypeOutdoor    VenueType = "outdoor"
	VenueTypeAuditorium VenueType = "auditorium"
	VenueTypeOther      VenueType = "other"
)

func ValidVenueType(t VenueType) bool {
	switch t {
	case VenueTypeCountry, VenueTypeCity, VenueTypeTown, VenueTypeHall,
		VenueTypeConference, VenueTypeRestaurant, VenueTypeOutdoor,
		VenueTypeAuditorium, VenueTypeOther:
		return true
	}
	return false
}

type Venue struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:200;not null" json:"name"`
	VenueType    VenueType  `gorm:"type:varchar(30);not null" json:"venue_type"`
	Description  string     `gorm:"type:text" json:"description"`
	ImageURL     string     `gorm:"size:500" json:"image"`
	Address      string     `gorm:"size:250;not null" json:"address"`
	City         string     `gorm:"size:120" json:"city"`
	Region       string     `gorm:"size:120" json:"region"`
	Country      string     `gorm:"size:80;default:'South Africa'" json:"country"`
	PostalCode   string     `gorm:"size:20" json:"postal_code"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	Capacity     uint       `gorm:"default:0" json:"capacity"`
	Amenities    StringList `gorm:"type:jsonb;default:'[]'" json:"amenities"`
	PricePerDay  *float64   `gorm:"type:numeric(10,2)" json:"price_per_day"`
	ContactEmail string     `gorm:"size:254" json:"contact_email"`
	ContactPhone string     `gorm:"size:50" json:"contact_phone"`
	Website      string     `gorm:"size:200" json:"website"`
	Available    bool       `gorm:"default:true" json:"available"`
	Rating       float64    `gorm:"default:0" json:"rating"`
	Tags         string     `gorm:"size:200" json:"tags"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Gallery []GalleryImage `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"gallery"`
}

// GalleryImage is an ordered image attached to a venue. Listing order is
// "order" ascending with id as the tiebreaker.
type GalleryImage struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	VenueID  uint   `gorm:"not null;index" json:"venue_id"`
	ImageURL string `gorm:"size:500;not null" json:"image"`
	Caption  string `gorm:"size:200" json:"caption"`
	Order    uint   `gorm:"column:order;default:0" json:"order"`
}
