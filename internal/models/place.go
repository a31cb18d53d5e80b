package models

import "time"

type WifiSpot struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:200;not null" json:"name"`
	Address      string    `gorm:"type:text;not null" json:"address"`
	City         string    `gorm:"size:120" json:"city"`
	Region       string    `gorm:"size:120" json:"region"`
	Country      string    `gorm:"size:80;default:'South Africa'" json:"country"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	Provider     string    `gorm:"size:120" json:"provider"`
	Description  string    `gorm:"type:text" json:"description"`
	Website      string    `gorm:"size:200" json:"website"`
	ContactEmail string    `gorm:"size:254" json:"contact_email"`
	ContactPhone string    `gorm:"size:50" json:"contact_phone"`
	Available    bool      `gorm:"default:true" json:"available"`
	CreatedAt    time.Time `json:"created_at"`
}

type SchoolProgram struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:200;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	ImageURL     string    `gorm:"size:500" json:"image"`
	Address      string    `gorm:"size:250" json:"address"`
	City         string    `gorm:"size:120" json:"city"`
	Region       string    `gorm:"size:120" json:"region"`
	Country      string    `gorm:"size:80;default:'South Africa'" json:"country"`
	ContactEmail string    `gorm:"size:254" json:"contact_email"`
	ContactPhone string    `gorm:"size:50" json:"contact_phone"`
	Website      string    `gorm:"size:200" json:"website"`
	StartDate    *Date     `json:"start_date"`
	EndDate      *Date     `json:"end_date"`
	CreatedAt    time.Time `json:"created_at"`
}

type PopupVenue struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:200;not null" json:"name"`
	Location string `gorm:"size:200;not null" json:"location"`
	ImageURL string `gorm:"size:500" json:"image"`
}
