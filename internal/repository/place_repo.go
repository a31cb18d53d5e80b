package repository

import (
	"context"

	"github.com/debaren/debaren-backend/internal/models"
	"gorm.io/gorm"
)

// PlaceRepository covers the flat discovery entities: wifi spots,
// school programs and popup venues. They share a plain CRUD shape with
// no relationships.
type PlaceRepository interface {
	CreateWifiSpot(ctx context.Context, spot *models.WifiSpot) error
	FindWifiSpot(ctx context.Context, id uint) (*models.WifiSpot, error)
	ListWifiSpots(ctx context.Context) ([]models.WifiSpot, error)
	SaveWifiSpot(ctx context.Context, spot *models.WifiSpot) error
	DeleteWifiSpot(ctx context.Context, id uint) error

	CreateSchoolProgram(ctx context.Context, program *models.SchoolProgram) error
	FindSchoolProgram(ctx context.Context, id uint) (*models.SchoolProgram, error)
	ListSchoolPrograms(ctx context.Context) ([]models.SchoolProgram, error)
	SaveSchoolProgram(ctx context.Context, program *models.SchoolProgram) error
	DeleteSchoolProgram(ctx context.Context, id uint) error

	CreatePopupVenue(ctx context.Context, venue *models.PopupVenue) error
	FindPopupVenue(ctx context.Context, id uint) (*models.PopupVenue, error)
	ListPopupVenues(ctx context.Context) ([]models.PopupVenue, error)
	SavePopupVenue(ctx context.Context, venue *models.PopupVenue) error
	DeletePopupVenue(ctx context.Context, id uint) error
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) deleteByID(ctx context.Context, model interface{}, id uint) error {
	res := r.db.WithContext(ctx).Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *placeRepository) CreateWifiSpot(ctx context.Context, spot *models.WifiSpot) error {
	return r.db.WithContext(ctx).Create(spot).Error
}

func (r *placeRepository) FindWifiSpot(ctx context.Context, id uint) (*models.WifiSpot, error) {
	var spot models.WifiSpot
	if err := r.db.WithContext(ctx).First(&spot, id).Error; err != nil {
		return nil, err
	}
	return &spot, nil
}

func (r *placeRepository) ListWifiSpots(ctx context.Context) ([]models.WifiSpot, error) {
	var spots []models.WifiSpot
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

func (r *placeRepository) SaveWifiSpot(ctx context.Context, spot *models.WifiSpot) error {
	return r.db.WithContext(ctx).Save(spot).Error
}

func (r *placeRepository) DeleteWifiSpot(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &models.WifiSpot{}, id)
}

func (r *placeRepository) CreateSchoolProgram(ctx context.Context, program *models.SchoolProgram) error {
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *placeRepository) FindSchoolProgram(ctx context.Context, id uint) (*models.SchoolProgram, error) {
	var program models.SchoolProgram
	if err := r.db.WithContext(ctx).First(&program, id).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *placeRepository) ListSchoolPrograms(ctx context.Context) ([]models.SchoolProgram, error) {
	var programs []models.SchoolProgram
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *placeRepository) SaveSchoolProgram(ctx context.Context, program *models.SchoolProgram) error {
	return r.db.WithContext(ctx).Save(program).Error
}

func (r *placeRepository) DeleteSchoolProgram(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &models.SchoolProgram{}, id)
}

func (r *placeRepository) CreatePopupVenue(ctx context.Context, venue *models.PopupVenue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *placeRepository) FindPopupVenue(ctx context.Context, id uint) (*models.PopupVenue, error) {
	var venue models.PopupVenue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *placeRepository) ListPopupVenues(ctx context.Context) ([]models.PopupVenue, error) {
	var venues []models.PopupVenue
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *placeRepository) SavePopupVenue(ctx context.Context, venue *models.PopupVenue) error {
	return r.db.WithContext(ctx).Save(venue).Error
}

func (r *placeRepository) DeletePopupVenue(ctx context.Context, id uint) error {
	return r.deleteByID(ctx, &models.PopupVenue{}, id)
}
