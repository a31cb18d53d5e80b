package models

import "time"

type About struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Phone       string    `gorm:"size:200" json:"phone"`
	Address     string    `gorm:"size:200" json:"address"`
	Description string    `gorm:"type:text;not null" json:"description"`
	ImageURL    string    `gorm:"size:500" json:"image"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type HeroSection struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Subtitle  string    `gorm:"type:text;not null" json:"subtitle"`
	CtaText   string    `gorm:"size:100;default:'Explore Venues'" json:"cta_text"`
	CtaURL    string    `gorm:"size:200;default:'/venues'" json:"cta_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SocialPlatform string

const (
	PlatformLinkedIn  SocialPlatform = "linkedin"
	PlatformInstagram SocialPlatform = "instagram"
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformPinterest SocialPlatform = "pinterest"
	PlatformTikTok    SocialPlatform = "tiktok"
)

func ValidSocialPlatform(p SocialPlatform) bool {
	switch p {
	case PlatformLinkedIn, PlatformInstagram, PlatformFacebook, PlatformPinterest, PlatformTikTok:
		return true
	}
	return false
}

// FooterSocialLink is listed by "order" ascending, id as tiebreaker.
type FooterSocialLink struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	Platform SocialPlatform `gorm:"type:varchar(20);not null" json:"platform"`
	URL      string         `gorm:"size:200;not null" json:"url"`
	Icon     string         `gorm:"size:50" json:"icon"`
	Order    uint           `gorm:"column:order;default:0" json:"order"`
}

// ContactMessage is append-only from the public contact form.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:254;not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
