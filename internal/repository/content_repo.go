package repository

import (
	"context"

	"github.com/debaren/debaren-backend/internal/models"
	"gorm.io/gorm"
)

// ContentRepository backs the marketing surfaces: about page, hero
// section and footer social links.
type ContentRepository interface {
	LatestAbout(ctx context.Context) (*models.About, error)
	SaveAbout(ctx context.Context, about *models.About) error

	LatestHero(ctx context.Context) (*models.HeroSection, error)
	SaveHero(ctx context.Context, hero *models.HeroSection) error

	ListFooterLinks(ctx context.Context) ([]models.FooterSocialLink, error)
	FindFooterLink(ctx context.Context, id uint) (*models.FooterSocialLink, error)
	SaveFooterLink(ctx context.Context, link *models.FooterSocialLink) error
	DeleteFooterLink(ctx context.Context, id uint) error
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) LatestAbout(ctx context.Context) (*models.About, error) {
	var about models.About
	err := r.db.WithContext(ctx).Order("updated_at DESC").First(&about).Error
	if err != nil {
		return nil, err
	}
	return &about, nil
}

func (r *contentRepository) SaveAbout(ctx context.Context, about *models.About) error {
	return r.db.WithContext(ctx).Save(about).Error
}

func (r *contentRepository) LatestHero(ctx context.Context) (*models.HeroSection, error) {
	var hero models.HeroSection
	err := r.db.WithContext(ctx).Order("updated_at DESC").First(&hero).Error
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

func (r *contentRepository) SaveHero(ctx context.Context, hero *models.HeroSection) error {
	return r.db.WithContext(ctx).Save(hero).Error
}

func (r *contentRepository) ListFooterLinks(ctx context.Context) ([]models.FooterSocialLink, error) {
	var links []models.FooterSocialLink
	err := r.db.WithContext(ctx).Order(`"order" ASC, id ASC`).Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *contentRepository) FindFooterLink(ctx context.Context, id uint) (*models.FooterSocialLink, error) {
	var link models.FooterSocialLink
	if err := r.db.WithContext(ctx).First(&link, id).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *contentRepository) SaveFooterLink(ctx context.Context, link *models.FooterSocialLink) error {
	return r.db.WithContext(ctx).Save(link).Error
}

func (r *contentRepository) DeleteFooterLink(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.FooterSocialLink{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
