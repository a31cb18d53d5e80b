package repository

import (
	"context"

	"github.com/debaren/debaren-backend/internal/models"
	"gorm.io/gorm"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	FindByID(ctx context.Context, id uint) (*models.ContactMessage, error)
	FindAll(ctx context.Context) ([]models.ContactMessage, error)
	Save(ctx context.Context, msg *models.ContactMessage) error
	Delete(ctx context.Context, id uint) error
}

type contactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *contactMessageRepository) FindByID(ctx context.Context, id uint) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := r.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *contactMessageRepository) FindAll(ctx context.Context) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *contactMessageRepository) Save(ctx context.Context, msg *models.ContactMessage) error {
	return r.db.WithContext(ctx).Save(msg).Error
}

func (r *contactMessageRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.ContactMessage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
