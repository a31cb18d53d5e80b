package repository

import (
	"context"

	"github.com/debaren/debaren-backend/internal/models"
	"gorm.io/gorm"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	FindByID(ctx context.Context, id uint) (*models.Venue, error)
	FindAll(ctx context.Context) ([]models.Venue, error)
	Save(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id uint) error
	AddGalleryImages(ctx context.Context, images []models.GalleryImage) error
	FindGalleryImage(ctx context.Context, venueID, imageID uint) (*models.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, venueID, imageID uint) error
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.WithContext(ctx).
		Preload("Gallery", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC, id ASC`)
		}).
		First(&venue, id).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) FindAll(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	err := r.db.WithContext(ctx).
		Preload("Gallery", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC, id ASC`)
		}).
		Order("created_at DESC").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) Save(ctx context.Context, venue *models.Venue) error {
	return r.db.WithContext(ctx).Omit("Gallery").Save(venue).Error
}

// Delete removes the venue; gallery images and bookings cascade.
func (r *venueRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Venue{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *venueRepository) AddGalleryImages(ctx context.Context, images []models.GalleryImage) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&images).Error
}

func (r *venueRepository) FindGalleryImage(ctx context.Context, venueID, imageID uint) (*models.GalleryImage, error) {
	var img models.GalleryImage
	err := r.db.WithContext(ctx).
		Where("venue_id = ? AND id = ?", venueID, imageID).
		First(&img).Error
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *venueRepository) DeleteGalleryImage(ctx context.Context, venueID, imageID uint) error {
	res := r.db.WithContext(ctx).
		Where("venue_id = ? AND id = ?", venueID, imageID).
		Delete(&models.GalleryImage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
