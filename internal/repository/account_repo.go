package repository

import (
	"context"

	"github.com/debaren/debaren-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccountRepository interface {
	// GetOrCreate resolves the account for email, inserting one with the
	// given username and password hash when none exists. The returned
	// bool reports whether the account was created by this call.
	GetOrCreate(ctx context.Context, email, username, passwordHash string) (*models.Account, bool, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	Delete(ctx context.Context, id uint) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// GetOrCreate is a single conflict-safe insert against the unique email
// index, never a check followed by an insert. Concurrent calls for the
// same new email produce exactly one row.
func (r *accountRepository) GetOrCreate(ctx context.Context, email, username, passwordHash string) (*models.Account, bool, error) {
	account := &models.Account{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(account)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return account, true, nil
	}

	existing, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Account{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
